package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/user/pixel-clicker/internal/types"
)

var petTypes = []string{"dragon", "phoenix", "unicorn", "wolf", "cat", "robot", "crystal", "ghost"}

var artifactTypes = []string{"weapon", "armor", "accessory", "relic"}

// SummonPet spends gems on a pet of rolled rarity. The first pet ever
// summoned starts active; later summons start inactive.
func (gm *GameManager) SummonPet() (*types.Pet, error) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	cost := gm.config.Game.PetSummonCost

	if s.Gems < cost {
		gm.notify("rejected", fmt.Sprintf("Not enough gems to summon a pet (%g required)", cost))
		return nil, ErrInsufficientGems
	}

	rarity := gm.roller.Rarity()
	petType := petTypes[gm.roller.Intn(len(petTypes))]

	pet := types.Pet{
		ID:     "pet-" + uuid.New().String(),
		Name:   fmt.Sprintf("%s %d", petType, gm.roller.Intn(1000)),
		Type:   petType,
		Level:  1,
		Rarity: rarity,
		Abilities: []types.PetAbility{
			{
				ID:          "ability-1",
				Name:        "Coin Boost",
				Description: "Boosts coin gains by 50% for 30s",
				CooldownMs:  300000,
			},
		},
		IsActive:  len(s.Pets) == 0,
		Happiness: 100,
		LastFed:   gm.clock().UnixMilli(),
	}

	s.Gems -= cost
	s.Statistics.GemsSpent += cost
	s.Pets = append(s.Pets, pet)

	gm.notify("pet", fmt.Sprintf("New pet summoned: %s (%s)", pet.Name, rarity))
	gm.saveState()

	out := pet
	return &out, nil
}

// FeedPet spends coins to raise a pet's happiness and experience,
// leveling it up once the experience threshold is met.
func (gm *GameManager) FeedPet(petID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	cost := gm.config.Game.PetFeedCost

	if s.Coins < cost {
		gm.notify("rejected", fmt.Sprintf("Not enough coins to feed (%g required)", cost))
		return ErrInsufficientCoins
	}

	idx := findPet(s.Pets, petID)
	if idx < 0 {
		return ErrNotFound
	}

	pet := s.Pets[idx]
	pet.Happiness = min(100, pet.Happiness+20)
	pet.Experience += 50
	if pet.Experience >= float64(pet.Level*100) {
		pet.Level++
		gm.notify("pet", fmt.Sprintf("%s leveled up! Level %d", pet.Name, pet.Level))
	}
	pet.LastFed = gm.clock().UnixMilli()

	s.Coins -= cost
	s.Pets[idx] = pet

	gm.notify("pet", "Pet fed! +20 happiness, +50 XP")
	gm.saveState()

	return nil
}

// ActivatePet makes the named pet the single active one, deactivating
// all others in the same transition.
func (gm *GameManager) ActivatePet(petID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	if findPet(s.Pets, petID) < 0 {
		return ErrNotFound
	}

	for i := range s.Pets {
		s.Pets[i].IsActive = s.Pets[i].ID == petID
	}

	gm.notify("pet", "Active pet changed")
	gm.saveState()

	return nil
}

// UsePetAbility fires a pet ability if its cooldown has elapsed.
func (gm *GameManager) UsePetAbility(petID, abilityID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	idx := findPet(s.Pets, petID)
	if idx < 0 {
		return ErrNotFound
	}

	pet := s.Pets[idx]
	abilityIdx := -1
	for i, a := range pet.Abilities {
		if a.ID == abilityID {
			abilityIdx = i
			break
		}
	}
	if abilityIdx < 0 {
		return ErrNotFound
	}

	ability := pet.Abilities[abilityIdx]
	now := gm.clock().UnixMilli()
	if now-ability.LastUsed < ability.CooldownMs {
		gm.notify("rejected", "Ability on cooldown")
		return ErrCooldownActive
	}

	abilities := append([]types.PetAbility(nil), pet.Abilities...)
	abilities[abilityIdx].LastUsed = now
	pet.Abilities = abilities
	s.Pets[idx] = pet

	gm.notify("pet", fmt.Sprintf("Ability used: %s", ability.Name))
	gm.saveState()

	return nil
}

// ForgeArtifact spends gems on an artifact of rolled rarity with two
// randomized stats.
func (gm *GameManager) ForgeArtifact() (*types.Artifact, error) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	cost := gm.config.Game.ArtifactForgeCost

	if s.Gems < cost {
		gm.notify("rejected", fmt.Sprintf("Not enough gems to forge (%g required)", cost))
		return nil, ErrInsufficientGems
	}

	rarity := gm.roller.Rarity()
	artifactType := artifactTypes[gm.roller.Intn(len(artifactTypes))]

	artifact := types.Artifact{
		ID:          "artifact-" + uuid.New().String(),
		Name:        fmt.Sprintf("%s %s", rarity, artifactType),
		Description: "A mysterious artifact with ancient powers",
		Type:        artifactType,
		Rarity:      rarity,
		Level:       1,
		Stats: []types.ArtifactStat{
			{Type: "clickPower", Value: float64(gm.roller.Intn(50) + 10)},
			{Type: "coinMultiplier", Value: float64(gm.roller.Intn(20) + 5), Percentage: true},
		},
	}

	s.Gems -= cost
	s.Statistics.GemsSpent += cost
	s.Artifacts = append(s.Artifacts, artifact)

	gm.notify("artifact", fmt.Sprintf("Artifact forged: %s (%s)", artifact.Name, rarity))
	gm.saveState()

	out := artifact
	return &out, nil
}

// EquipArtifact toggles the equipped flag. No equipped-count cap is
// enforced at this layer.
func (gm *GameManager) EquipArtifact(artifactID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	idx := findArtifact(s.Artifacts, artifactID)
	if idx < 0 {
		return ErrNotFound
	}

	s.Artifacts[idx].IsEquipped = !s.Artifacts[idx].IsEquipped

	verb := "Unequipped"
	if s.Artifacts[idx].IsEquipped {
		verb = "Equipped"
	}
	gm.notify("artifact", fmt.Sprintf("%s: %s", verb, s.Artifacts[idx].Name))
	gm.saveState()

	return nil
}

// UpgradeArtifact spends level*100 gems to raise an artifact's level
// and scale its stats up by 10%.
func (gm *GameManager) UpgradeArtifact(artifactID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	idx := findArtifact(s.Artifacts, artifactID)
	if idx < 0 {
		return ErrNotFound
	}

	artifact := s.Artifacts[idx]
	cost := float64(artifact.Level * 100)
	if s.Gems < cost {
		gm.notify("rejected", fmt.Sprintf("Not enough gems to upgrade (%g required)", cost))
		return ErrInsufficientGems
	}

	stats := append([]types.ArtifactStat(nil), artifact.Stats...)
	for i := range stats {
		stats[i].Value = math.Floor(stats[i].Value * 1.1)
	}
	artifact.Stats = stats
	artifact.Level++

	s.Gems -= cost
	s.Statistics.GemsSpent += cost
	s.Artifacts[idx] = artifact

	gm.notify("artifact", fmt.Sprintf("Artifact upgraded: %s level %d", artifact.Name, artifact.Level))
	gm.saveState()

	return nil
}

// JoinGuild places the player in a simulated guild roster.
func (gm *GameManager) JoinGuild(guildID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	now := gm.clock().UnixMilli()

	s.Guild = &types.Guild{
		ID:          guildID,
		Name:        "The Legendary Clickers",
		Description: "A guild for the finest clickers!",
		Level:       5,
		Members: []types.GuildMember{
			{
				PlayerID:   s.Player.ID,
				Username:   s.Player.Username,
				Role:       "member",
				JoinDate:   now,
				LastActive: now,
			},
			{
				PlayerID:     "leader-1",
				Username:     "GuildMaster",
				Role:         "leader",
				Contribution: 1000000,
				JoinDate:     now - 86400000,
				LastActive:   now,
			},
		},
		MaxMembers: 50,
		TotalPower: 5000000,
		Treasury:   100000,
		CreatedAt:  now - 86400000,
		IsPublic:   true,
	}

	gm.notify("guild", fmt.Sprintf("Joined guild: %s", s.Guild.Name))
	gm.saveState()

	return nil
}

// CreateGuild spends gems to found a guild with the player as leader.
func (gm *GameManager) CreateGuild(name, description string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	cost := gm.config.Game.GuildCreateCost

	if s.Gems < cost {
		gm.notify("rejected", fmt.Sprintf("Not enough gems to create a guild (%g required)", cost))
		return ErrInsufficientGems
	}

	now := gm.clock().UnixMilli()
	s.Gems -= cost
	s.Statistics.GemsSpent += cost
	s.Guild = &types.Guild{
		ID:          "guild-" + uuid.New().String(),
		Name:        name,
		Description: description,
		Level:       1,
		Members: []types.GuildMember{
			{
				PlayerID:   s.Player.ID,
				Username:   s.Player.Username,
				Role:       "leader",
				JoinDate:   now,
				LastActive: now,
			},
		},
		MaxMembers: 20,
		TotalPower: s.Player.TotalPower,
		CreatedAt:  now,
		IsPublic:   true,
	}

	gm.notify("guild", fmt.Sprintf("Guild created: %s", name))
	gm.saveState()

	return nil
}

// JoinTournament pays the entry fee and registers the player in the
// named tournament's participant list.
func (gm *GameManager) JoinTournament(tournamentID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state

	idx := -1
	for i, t := range s.Tournaments {
		if t.ID == tournamentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	tournament := s.Tournaments[idx]
	if s.Gems < tournament.EntryFee {
		gm.notify("rejected", fmt.Sprintf("Not enough gems for entry fee (%g required)", tournament.EntryFee))
		return ErrInsufficientGems
	}

	s.Gems -= tournament.EntryFee
	s.Statistics.GemsSpent += tournament.EntryFee

	participants := append([]types.TournamentParticipant(nil), tournament.Participants...)
	participants = append(participants, types.TournamentParticipant{
		PlayerID: s.Player.ID,
		Username: s.Player.Username,
		Rank:     len(participants) + 1,
	})
	tournament.Participants = participants
	s.Tournaments[idx] = tournament

	gm.notify("tournament", fmt.Sprintf("Joined tournament: %s", tournament.Name))
	gm.saveState()

	return nil
}

// giftCosts maps gift kinds to their coin cost.
var giftCosts = map[string]float64{
	"energy": 100,
	"coins":  1000,
	"gems":   10,
}

// SendGift spends coins on a gift for another player, bounded by the
// daily limit.
func (gm *GameManager) SendGift(playerID, giftType string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state

	if s.SocialFeatures.GiftsSent >= gm.config.Game.DailyGiftLimit {
		gm.notify("rejected", "Daily gift limit reached")
		return ErrGiftLimitReached
	}

	cost, ok := giftCosts[giftType]
	if !ok {
		return ErrUnknownGift
	}

	if s.Coins < cost {
		gm.notify("rejected", fmt.Sprintf("Not enough coins for gift (%g required)", cost))
		return ErrInsufficientCoins
	}

	s.Coins -= cost
	s.SocialFeatures.GiftsSent++
	s.SocialFeatures.SocialPoints += 10

	gm.notify("social", fmt.Sprintf("Gift sent to %s: %s", playerID, giftType))
	gm.saveState()

	return nil
}

// ClaimBattlePassReward claims one reward tier: level-gated, premium-
// gated for premium tiers, and claimable at most once.
func (gm *GameManager) ClaimBattlePassReward(rewardID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state

	idx := -1
	for i, r := range s.BattlePass.Rewards {
		if r.ID == rewardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	reward := s.BattlePass.Rewards[idx]
	if reward.Claimed {
		gm.notify("rejected", "Reward already claimed")
		return ErrAlreadyClaimed
	}
	if s.BattlePass.Level < reward.Level {
		gm.notify("rejected", "Reward not yet unlocked")
		return ErrRewardLocked
	}
	if reward.Type == "premium" && !s.BattlePass.IsPremium {
		gm.notify("rejected", "Premium battle pass required")
		return ErrPremiumRequired
	}

	rewards := append([]types.BattlePassReward(nil), s.BattlePass.Rewards...)
	rewards[idx].Claimed = true
	s.BattlePass.Rewards = rewards
	s.BattlePass.ClaimedRewards = append(s.BattlePass.ClaimedRewards, rewardID)

	switch reward.Kind {
	case "coins":
		s.Coins += reward.Amount
	case "gems":
		s.Gems += reward.Amount
	}

	gm.notify("battlepass", fmt.Sprintf("Reward claimed: %g %s", reward.Amount, reward.Kind))
	gm.saveState()

	return nil
}

// UpgradeToPremium spends gems to unlock the premium reward track.
func (gm *GameManager) UpgradeToPremium() error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	cost := gm.config.Game.PremiumPassCost

	if s.Gems < cost {
		gm.notify("rejected", fmt.Sprintf("Not enough gems for premium pass (%g required)", cost))
		return ErrInsufficientGems
	}

	s.Gems -= cost
	s.Statistics.GemsSpent += cost
	s.BattlePass.IsPremium = true

	gm.notify("battlepass", "Premium battle pass activated!")
	gm.saveState()

	return nil
}

// ParticipateWorldEvent contributes floor(clickPower*100) to both the
// global and the player progress of an active event.
func (gm *GameManager) ParticipateWorldEvent(eventID string) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state

	idx := -1
	for i, e := range s.WorldEvents {
		if e.ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if !s.WorldEvents[idx].IsActive {
		gm.notify("rejected", "Event not active")
		return ErrEventInactive
	}

	contribution := math.Floor(s.ClickPower * 100)
	s.WorldEvents[idx].GlobalProgress += contribution
	s.WorldEvents[idx].PlayerProgress += contribution

	gm.notify("event", fmt.Sprintf("Contributed %g to %s", contribution, s.WorldEvents[idx].Name))
	gm.saveState()

	return nil
}

// ClaimWorldEventReward claims one threshold reward of an event once
// the global progress has reached it; each reward claims at most once.
func (gm *GameManager) ClaimWorldEventReward(eventID string, rewardIndex int) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state

	idx := -1
	for i, e := range s.WorldEvents {
		if e.ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	event := s.WorldEvents[idx]
	if rewardIndex < 0 || rewardIndex >= len(event.Rewards) {
		return ErrNotFound
	}

	reward := event.Rewards[rewardIndex]
	if reward.Claimed {
		gm.notify("rejected", "Reward already claimed")
		return ErrAlreadyClaimed
	}
	if event.GlobalProgress < reward.Threshold {
		gm.notify("rejected", "Reward not yet unlocked")
		return ErrRewardLocked
	}

	rewards := append([]types.WorldEventReward(nil), event.Rewards...)
	rewards[rewardIndex].Claimed = true
	event.Rewards = rewards
	s.WorldEvents[idx] = event

	s.Coins += reward.Coins
	s.Gems += reward.Gems

	gm.notify("event", fmt.Sprintf("Reward claimed: %g coins, %g gems", reward.Coins, reward.Gems))
	gm.saveState()

	return nil
}

func findPet(pets []types.Pet, id string) int {
	for i, p := range pets {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func findArtifact(artifacts []types.Artifact, id string) int {
	for i, a := range artifacts {
		if a.ID == id {
			return i
		}
	}
	return -1
}
