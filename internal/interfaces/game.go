package interfaces

import "github.com/user/pixel-clicker/internal/types"

// Notifier receives fire-and-forget human-readable messages about
// transitions. Implementations must not block the caller.
type Notifier interface {
	Notify(kind, message string)
}

// GameManager defines the state transitions the presentation layer
// may invoke. Every method that can reject does so with a sentinel
// error and leaves the state unchanged.
type GameManager interface {
	Click() (*types.ClickOutcome, error)
	BuyUpgrade(kind types.UpgradeKind, cost float64, currency types.Currency) error
	BuyBuilding(kind types.BuildingKind, cost float64) error
	Prestige() (int, error)
	Reset() error

	SummonPet() (*types.Pet, error)
	FeedPet(petID string) error
	ActivatePet(petID string) error
	UsePetAbility(petID, abilityID string) error

	ForgeArtifact() (*types.Artifact, error)
	EquipArtifact(artifactID string) error
	UpgradeArtifact(artifactID string) error

	JoinGuild(guildID string) error
	CreateGuild(name, description string) error
	JoinTournament(tournamentID string) error
	SendGift(playerID, giftType string) error

	ClaimBattlePassReward(rewardID string) error
	UpgradeToPremium() error

	ParticipateWorldEvent(eventID string) error
	ClaimWorldEventReward(eventID string, rewardIndex int) error

	State() *types.GameState
}
