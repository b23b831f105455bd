package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/user/pixel-clicker/internal/types"
)

func TestSummonPetFirstBecomesActive(t *testing.T) {
	gm := newTestManager(t)
	gm.SetRoller(&stubRoller{rarity: types.RarityEpic})
	gm.state.Gems = 250

	pet, err := gm.SummonPet()
	assert.NoError(t, err)
	assert.True(t, pet.IsActive)
	assert.Equal(t, types.RarityEpic, pet.Rarity)
	assert.Equal(t, 1, pet.Level)
	assert.Len(t, pet.Abilities, 1)

	second, err := gm.SummonPet()
	assert.NoError(t, err)
	assert.False(t, second.IsActive)

	state := gm.State()
	assert.Equal(t, 50.0, state.Gems)
	assert.Len(t, state.Pets, 2)
}

func TestSummonPetInsufficientGems(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 50

	_, err := gm.SummonPet()
	assert.ErrorIs(t, err, ErrInsufficientGems)

	state := gm.State()
	assert.Equal(t, 50.0, state.Gems)
	assert.Empty(t, state.Pets)
}

func TestFeedPet(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 1500
	gm.state.Pets = []types.Pet{{ID: "pet-1", Name: "Sparky", Level: 1, Happiness: 70}}

	err := gm.FeedPet("pet-1")
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 500.0, state.Coins)
	assert.Equal(t, 90, state.Pets[0].Happiness)
	assert.Equal(t, 50.0, state.Pets[0].Experience)
	assert.Equal(t, 1, state.Pets[0].Level)
	assert.Equal(t, int64(1700000000000), state.Pets[0].LastFed)
}

func TestFeedPetLevelsUp(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 1000
	gm.state.Pets = []types.Pet{{ID: "pet-1", Level: 1, Experience: 50, Happiness: 100}}

	err := gm.FeedPet("pet-1")
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 2, state.Pets[0].Level)
	assert.Equal(t, 100, state.Pets[0].Happiness)
}

func TestFeedPetRejections(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 100
	gm.state.Pets = []types.Pet{{ID: "pet-1"}}

	assert.ErrorIs(t, gm.FeedPet("pet-1"), ErrInsufficientCoins)

	gm.state.Coins = 2000
	assert.ErrorIs(t, gm.FeedPet("pet-9"), ErrNotFound)
}

func TestActivatePetExclusive(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Pets = []types.Pet{
		{ID: "pet-1", IsActive: true},
		{ID: "pet-2"},
		{ID: "pet-3"},
	}

	err := gm.ActivatePet("pet-2")
	assert.NoError(t, err)

	state := gm.State()
	assert.False(t, state.Pets[0].IsActive)
	assert.True(t, state.Pets[1].IsActive)
	assert.False(t, state.Pets[2].IsActive)
}

func TestUsePetAbilityCooldown(t *testing.T) {
	gm := newTestManager(t)

	now := time.UnixMilli(1700000000000)
	gm.clock = func() time.Time { return now }

	gm.state.Pets = []types.Pet{{
		ID: "pet-1",
		Abilities: []types.PetAbility{
			{ID: "ability-1", Name: "Coin Boost", CooldownMs: 300000},
		},
	}}

	assert.NoError(t, gm.UsePetAbility("pet-1", "ability-1"))
	assert.ErrorIs(t, gm.UsePetAbility("pet-1", "ability-1"), ErrCooldownActive)

	now = now.Add(301 * time.Second)
	assert.NoError(t, gm.UsePetAbility("pet-1", "ability-1"))

	assert.ErrorIs(t, gm.UsePetAbility("pet-1", "ability-9"), ErrNotFound)
	assert.ErrorIs(t, gm.UsePetAbility("pet-9", "ability-1"), ErrNotFound)
}

func TestForgeArtifact(t *testing.T) {
	gm := newTestManager(t)
	gm.SetRoller(&stubRoller{rarity: types.RarityLegendary, intn: 0})
	gm.state.Gems = 600

	artifact, err := gm.ForgeArtifact()
	assert.NoError(t, err)
	assert.Equal(t, types.RarityLegendary, artifact.Rarity)
	assert.Equal(t, 1, artifact.Level)
	assert.Len(t, artifact.Stats, 2)
	assert.Equal(t, "clickPower", artifact.Stats[0].Type)
	assert.Equal(t, 10.0, artifact.Stats[0].Value)
	assert.Equal(t, "coinMultiplier", artifact.Stats[1].Type)
	assert.Equal(t, 5.0, artifact.Stats[1].Value)
	assert.True(t, artifact.Stats[1].Percentage)

	state := gm.State()
	assert.Equal(t, 100.0, state.Gems)
	assert.Len(t, state.Artifacts, 1)
}

func TestForgeArtifactInsufficientGems(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 100

	_, err := gm.ForgeArtifact()
	assert.ErrorIs(t, err, ErrInsufficientGems)
	assert.Empty(t, gm.State().Artifacts)
}

func TestEquipArtifactToggle(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Artifacts = []types.Artifact{
		{ID: "artifact-1"},
		{ID: "artifact-2"},
	}

	assert.NoError(t, gm.EquipArtifact("artifact-1"))
	assert.NoError(t, gm.EquipArtifact("artifact-2"))

	// No exclusivity: both stay equipped
	state := gm.State()
	assert.True(t, state.Artifacts[0].IsEquipped)
	assert.True(t, state.Artifacts[1].IsEquipped)

	assert.NoError(t, gm.EquipArtifact("artifact-1"))
	assert.False(t, gm.State().Artifacts[0].IsEquipped)

	assert.ErrorIs(t, gm.EquipArtifact("artifact-9"), ErrNotFound)
}

func TestUpgradeArtifact(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 500
	gm.state.Artifacts = []types.Artifact{{
		ID:    "artifact-1",
		Level: 3,
		Stats: []types.ArtifactStat{{Type: "clickPower", Value: 25}},
	}}

	err := gm.UpgradeArtifact("artifact-1")
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 200.0, state.Gems)
	assert.Equal(t, 4, state.Artifacts[0].Level)
	assert.Equal(t, 27.0, state.Artifacts[0].Stats[0].Value)
}

func TestUpgradeArtifactInsufficientGems(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 100
	gm.state.Artifacts = []types.Artifact{{ID: "artifact-1", Level: 3}}

	assert.ErrorIs(t, gm.UpgradeArtifact("artifact-1"), ErrInsufficientGems)
	assert.Equal(t, 3, gm.State().Artifacts[0].Level)
}

func TestCreateGuild(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 1200

	err := gm.CreateGuild("Pixel Pushers", "We click together")
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 200.0, state.Gems)
	assert.NotNil(t, state.Guild)
	assert.Equal(t, "Pixel Pushers", state.Guild.Name)
	assert.Len(t, state.Guild.Members, 1)
	assert.Equal(t, "leader", state.Guild.Members[0].Role)
	assert.Equal(t, state.Player.ID, state.Guild.Members[0].PlayerID)
}

func TestCreateGuildInsufficientGems(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 500

	assert.ErrorIs(t, gm.CreateGuild("Broke Guild", ""), ErrInsufficientGems)
	assert.Nil(t, gm.State().Guild)
}

func TestJoinGuild(t *testing.T) {
	gm := newTestManager(t)

	err := gm.JoinGuild("guild-42")
	assert.NoError(t, err)

	state := gm.State()
	assert.NotNil(t, state.Guild)
	assert.Equal(t, "guild-42", state.Guild.ID)

	var member bool
	for _, m := range state.Guild.Members {
		if m.PlayerID == state.Player.ID {
			member = true
			assert.Equal(t, "member", m.Role)
		}
	}
	assert.True(t, member)
}

func TestJoinTournament(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 150

	err := gm.JoinTournament("tournament-1")
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 50.0, state.Gems)
	assert.Len(t, state.Tournaments[0].Participants, 1)
	assert.Equal(t, state.Player.ID, state.Tournaments[0].Participants[0].PlayerID)
	assert.Equal(t, 1, state.Tournaments[0].Participants[0].Rank)
}

func TestJoinTournamentRejections(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 50

	assert.ErrorIs(t, gm.JoinTournament("tournament-1"), ErrInsufficientGems)
	assert.ErrorIs(t, gm.JoinTournament("tournament-9"), ErrNotFound)
	assert.Empty(t, gm.State().Tournaments[0].Participants)
}

func TestSendGift(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 5000

	err := gm.SendGift("player-123", "coins")
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 4000.0, state.Coins)
	assert.Equal(t, 1, state.SocialFeatures.GiftsSent)
	assert.Equal(t, 10, state.SocialFeatures.SocialPoints)
}

func TestSendGiftDailyLimit(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 100000
	gm.state.SocialFeatures.GiftsSent = 10

	assert.ErrorIs(t, gm.SendGift("player-123", "gems"), ErrGiftLimitReached)
	assert.Equal(t, 100000.0, gm.State().Coins)
}

func TestSendGiftUnknownType(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 100000

	assert.ErrorIs(t, gm.SendGift("player-123", "rocket"), ErrUnknownGift)
}

func TestClaimBattlePassReward(t *testing.T) {
	gm := newTestManager(t)

	// free-1 pays 100 coins at battle pass level 1
	err := gm.ClaimBattlePassReward("free-1")
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 100.0, state.Coins)
	assert.Contains(t, state.BattlePass.ClaimedRewards, "free-1")

	assert.ErrorIs(t, gm.ClaimBattlePassReward("free-1"), ErrAlreadyClaimed)
}

func TestClaimBattlePassRewardLevelGate(t *testing.T) {
	gm := newTestManager(t)

	assert.ErrorIs(t, gm.ClaimBattlePassReward("free-2"), ErrRewardLocked)

	gm.state.BattlePass.Level = 2
	assert.NoError(t, gm.ClaimBattlePassReward("free-2"))
}

func TestClaimBattlePassRewardPremiumGate(t *testing.T) {
	gm := newTestManager(t)

	assert.ErrorIs(t, gm.ClaimBattlePassReward("premium-1"), ErrPremiumRequired)

	gm.state.BattlePass.IsPremium = true
	assert.NoError(t, gm.ClaimBattlePassReward("premium-1"))
	assert.Equal(t, 20.0, gm.State().Gems)
}

func TestUpgradeToPremium(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 2500

	err := gm.UpgradeToPremium()
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 500.0, state.Gems)
	assert.True(t, state.BattlePass.IsPremium)

	gm.state.Gems = 1000
	gm.state.BattlePass.IsPremium = false
	assert.ErrorIs(t, gm.UpgradeToPremium(), ErrInsufficientGems)
}

func TestParticipateWorldEvent(t *testing.T) {
	gm := newTestManager(t)
	gm.state.ClickPower = 3

	before := gm.State().WorldEvents[0]

	err := gm.ParticipateWorldEvent("world-event-1")
	assert.NoError(t, err)

	after := gm.State().WorldEvents[0]
	assert.Equal(t, before.GlobalProgress+300, after.GlobalProgress)
	assert.Equal(t, before.PlayerProgress+300, after.PlayerProgress)
}

func TestParticipateWorldEventRejections(t *testing.T) {
	gm := newTestManager(t)

	assert.ErrorIs(t, gm.ParticipateWorldEvent("world-event-9"), ErrNotFound)

	gm.state.WorldEvents[0].IsActive = false
	assert.ErrorIs(t, gm.ParticipateWorldEvent("world-event-1"), ErrEventInactive)
}

func TestClaimWorldEventReward(t *testing.T) {
	gm := newTestManager(t)

	// Third threshold is exactly met by the initial global progress
	err := gm.ClaimWorldEventReward("world-event-1", 2)
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 50000.0, state.Coins)
	assert.Equal(t, 200.0, state.Gems)
	assert.True(t, state.WorldEvents[0].Rewards[2].Claimed)

	assert.ErrorIs(t, gm.ClaimWorldEventReward("world-event-1", 2), ErrAlreadyClaimed)
}

func TestClaimWorldEventRewardGates(t *testing.T) {
	gm := newTestManager(t)

	// Final threshold not reached yet
	assert.ErrorIs(t, gm.ClaimWorldEventReward("world-event-1", 3), ErrRewardLocked)

	// Already claimed at initialization
	assert.ErrorIs(t, gm.ClaimWorldEventReward("world-event-1", 0), ErrAlreadyClaimed)

	assert.ErrorIs(t, gm.ClaimWorldEventReward("world-event-9", 0), ErrNotFound)
	assert.ErrorIs(t, gm.ClaimWorldEventReward("world-event-1", 99), ErrNotFound)
}
