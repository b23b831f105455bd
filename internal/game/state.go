package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/user/pixel-clicker/internal/types"
)

// NewInitialState builds a fresh aggregate: zeroed economy, full
// energy, catalog defaults, generated battle-pass tiers and the
// simulated leaderboard/tournament/world-event collaborator data.
func NewInitialState() *types.GameState {
	now := time.Now().UnixMilli()

	return &types.GameState{
		Coins:            0,
		TotalCoins:       0,
		ClickPower:       1,
		AutoClickers:     0,
		AutoClickerPower: 1,
		Gems:             0,
		TotalGems:        0,
		Energy:           100,
		MaxEnergy:        100,
		EnergyRegenRate:  1,
		Level:            1,
		Experience:       0,
		ExperienceToNext: 100,
		Achievements:     AchievementCatalog(),
		Challenges:       ChallengeCatalog(),
		Prestige: types.Prestige{
			Level:      0,
			Points:     0,
			Multiplier: 1,
			Tokens:     0,
		},
		Settings: types.Settings{
			SoundEnabled:         true,
			MusicEnabled:         true,
			ParticlesEnabled:     true,
			AutoSaveEnabled:      true,
			NotificationsEnabled: true,
			Theme:                "neon",
		},
		Player: types.PlayerProfile{
			ID:         "player-" + uuid.New().String(),
			Username:   fmt.Sprintf("Player%d", rand.Intn(10000)),
			Avatar:     "default",
			Title:      "Novice Clicker",
			Level:      1,
			TotalPower: 0,
			JoinDate:   now,
			LastActive: now,
			Country:    "🌍",
			Badges:     []string{},
			Friends:    []string{},
			Reputation: 100,
			VIPLevel:   0,
		},
		Guild:       nil,
		Leaderboard: generateLeaderboard(),
		SocialFeatures: types.SocialFeatures{
			FriendRequests: generateFriendRequests(now),
			GiftsSent:      0,
			GiftsReceived:  0,
			Referrals:      []string{},
			SocialPoints:   0,
		},
		BattlePass: types.BattlePass{
			Season:           1,
			Level:            1,
			Experience:       0,
			ExperienceToNext: 1000,
			IsPremium:        false,
			Rewards:          GenerateBattlePassRewards(),
			ClaimedRewards:   []string{},
		},
		Tournaments:   generateTournaments(now),
		Pets:          []types.Pet{},
		Artifacts:     []types.Artifact{},
		WorldEvents:   generateWorldEvents(now),
		Notifications: []types.Notification{},
	}
}

// GenerateBattlePassRewards builds the 100 free and 100 premium tiers
// exactly once per season. Free tiers pay gems every tenth level and
// coins otherwise; premium tiers rotate cosmetics, pets and gems.
func GenerateBattlePassRewards() []types.BattlePassReward {
	rewards := make([]types.BattlePassReward, 0, 200)
	for level := 1; level <= 100; level++ {
		free := types.BattlePassReward{
			ID:    fmt.Sprintf("free-%d", level),
			Level: level,
			Type:  "free",
		}
		if level%10 == 0 {
			free.Kind = "gems"
			free.Amount = float64(level * 10)
		} else {
			free.Kind = "coins"
			free.Amount = float64(level * 100)
		}
		rewards = append(rewards, free)

		premium := types.BattlePassReward{
			ID:    fmt.Sprintf("premium-%d", level),
			Level: level,
			Type:  "premium",
		}
		switch {
		case level%15 == 0:
			premium.Kind = "pet"
			premium.ItemID = fmt.Sprintf("pet-%d", level)
		case level%5 == 0:
			premium.Kind = "cosmetic"
			premium.ItemID = fmt.Sprintf("cosmetic-%d", level)
		default:
			premium.Kind = "gems"
			premium.Amount = float64(level * 20)
		}
		rewards = append(rewards, premium)
	}
	return rewards
}

func generateLeaderboard() []types.LeaderboardEntry {
	countries := []string{"🇺🇸", "🇬🇧", "🇫🇷", "🇩🇪", "🇯🇵", "🇰🇷", "🇨🇳", "🇧🇷", "🇷🇺", "🇮🇳"}
	names := []string{"ClickMaster", "CoinHunter", "GemCollector", "PowerClicker", "IdleKing", "PrestigeGod", "AutoClicker", "LuckyPlayer", "CriticalHit", "MegaClicker"}

	entries := make([]types.LeaderboardEntry, 100)
	for i := range entries {
		entry := types.LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: fmt.Sprintf("player-%d", i),
			Username: fmt.Sprintf("%s%d", names[rand.Intn(len(names))], i+1),
			Avatar:   "default",
			Score:    math.Floor(rand.Float64()*1000000000) + 1000000,
			Change:   rand.Intn(21) - 10,
			Country:  countries[rand.Intn(len(countries))],
		}
		if rand.Float64() > 0.5 {
			entry.Guild = fmt.Sprintf("Guild%d", rand.Intn(100))
		}
		entries[i] = entry
	}
	return entries
}

func generateFriendRequests(now int64) []types.FriendRequest {
	return []types.FriendRequest{
		{
			ID:           "req-1",
			FromPlayerID: "player-123",
			FromUsername: "ClickMaster2024",
			Timestamp:    now - 3600000,
			Status:       "pending",
		},
		{
			ID:           "req-2",
			FromPlayerID: "player-456",
			FromUsername: "GemHunter",
			Timestamp:    now - 7200000,
			Status:       "pending",
		},
	}
}

func generateTournaments(now int64) []types.Tournament {
	return []types.Tournament{
		{
			ID:          "tournament-1",
			Name:        "Speed Clicking Championship",
			Description: "Click as fast as you can in 5 minutes!",
			Type:        "clicks",
			StartTime:   now + 3600000,
			EndTime:     now + 7200000,
			Participants: []types.TournamentParticipant{},
			Rewards: []types.TournamentReward{
				{Rank: 1, Coins: 100000, Gems: 500, Items: []string{"legendary_artifact"}},
				{Rank: 2, Coins: 50000, Gems: 250, Items: []string{"epic_artifact"}},
				{Rank: 3, Coins: 25000, Gems: 100, Items: []string{"rare_artifact"}},
			},
			EntryFee:        100,
			MaxParticipants: 1000,
			Status:          "upcoming",
		},
		{
			ID:          "tournament-2",
			Name:        "Coin Accumulation Contest",
			Description: "Earn the most coins in 24 hours!",
			Type:        "coins",
			StartTime:   now - 3600000,
			EndTime:     now + 82800000,
			Participants: []types.TournamentParticipant{},
			Rewards: []types.TournamentReward{
				{Rank: 1, Coins: 1000000, Gems: 1000, Items: []string{"mythic_pet"}},
				{Rank: 2, Coins: 500000, Gems: 500, Items: []string{"legendary_pet"}},
				{Rank: 3, Coins: 250000, Gems: 250, Items: []string{"epic_pet"}},
			},
			EntryFee:        500,
			MaxParticipants: 500,
			Status:          "active",
		},
	}
}

func generateWorldEvents(now int64) []types.WorldEvent {
	return []types.WorldEvent{
		{
			ID:             "world-event-1",
			Name:           "Global Coin Rush",
			Description:    "All players work together to collect 1 trillion coins!",
			Type:           "community_goal",
			StartTime:      now - 86400000,
			EndTime:        now + 6*86400000,
			GlobalProgress: 750000000000,
			GlobalTarget:   1000000000000,
			PlayerProgress: 1000000,
			Rewards: []types.WorldEventReward{
				{Threshold: 250000000000, Coins: 10000, Gems: 50, Items: []string{"boost_pack"}, Claimed: true},
				{Threshold: 500000000000, Coins: 25000, Gems: 100, Items: []string{"rare_pet_egg"}, Claimed: true},
				{Threshold: 750000000000, Coins: 50000, Gems: 200, Items: []string{"epic_artifact"}},
				{Threshold: 1000000000000, Coins: 100000, Gems: 500, Items: []string{"legendary_title"}},
			},
			IsActive: true,
		},
	}
}
