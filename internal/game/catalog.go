package game

import "github.com/user/pixel-clicker/internal/types"

// AchievementCatalog returns the default achievement records. The
// returned slice is freshly allocated; runtime state merges saved
// progress into a copy of it, never into the catalog itself.
func AchievementCatalog() []types.Achievement {
	return []types.Achievement{
		// Clicking
		{ID: "first-click", Name: "First Steps", Description: "Make your first click", Target: 1, Reward: 10, RewardType: "coins", Category: "clicking", Rarity: types.RarityCommon},
		{ID: "hundred-clicks", Name: "Click Enthusiast", Description: "Click 100 times", Target: 100, Reward: 100, RewardType: "coins", Category: "clicking", Rarity: types.RarityCommon},
		{ID: "thousand-clicks", Name: "Click Master", Description: "Click 1,000 times", Target: 1000, Reward: 500, RewardType: "coins", Category: "clicking", Rarity: types.RarityRare},
		{ID: "ten-thousand-clicks", Name: "Click Legend", Description: "Click 10,000 times", Target: 10000, Reward: 50, RewardType: "gems", Category: "clicking", Rarity: types.RarityEpic},
		{ID: "hundred-thousand-clicks", Name: "Click God", Description: "Click 100,000 times", Target: 100000, Reward: 2, RewardType: "multiplier", Category: "clicking", Rarity: types.RarityLegendary},
		{ID: "million-clicks", Name: "Transcendent Clicker", Description: "Click 1,000,000 times", Target: 1000000, Reward: 1000, RewardType: "prestige", Category: "clicking", Rarity: types.RarityMythic},

		// Earning
		{ID: "hundred-coins", Name: "Coin Collector", Description: "Earn 100 coins", Target: 100, Reward: 50, RewardType: "coins", Category: "earning", Rarity: types.RarityCommon},
		{ID: "thousand-coins", Name: "Wealthy", Description: "Earn 1,000 coins", Target: 1000, Reward: 200, RewardType: "coins", Category: "earning", Rarity: types.RarityCommon},
		{ID: "million-coins", Name: "Millionaire", Description: "Earn 1,000,000 coins", Target: 1000000, Reward: 100, RewardType: "gems", Category: "earning", Rarity: types.RarityRare},
		{ID: "billion-coins", Name: "Billionaire", Description: "Earn 1,000,000,000 coins", Target: 1000000000, Reward: 500, RewardType: "gems", Category: "earning", Rarity: types.RarityEpic},
		{ID: "trillion-coins", Name: "Trillionaire", Description: "Earn 1,000,000,000,000 coins", Target: 1000000000000, Reward: 5, RewardType: "multiplier", Category: "earning", Rarity: types.RarityLegendary},

		// Gems
		{ID: "first-gem", Name: "Gem Hunter", Description: "Find your first gem", Target: 1, Reward: 100, RewardType: "coins", Category: "earning", Rarity: types.RarityCommon},
		{ID: "hundred-gems", Name: "Gem Collector", Description: "Collect 100 gems", Target: 100, Reward: 1000, RewardType: "coins", Category: "earning", Rarity: types.RarityRare},
		{ID: "thousand-gems", Name: "Gem Master", Description: "Collect 1,000 gems", Target: 1000, Reward: 3, RewardType: "multiplier", Category: "earning", Rarity: types.RarityEpic},

		// Upgrading
		{ID: "first-upgrade", Name: "Upgrader", Description: "Buy your first upgrade", Target: 1, Reward: 25, RewardType: "coins", Category: "upgrading", Rarity: types.RarityCommon},
		{ID: "ten-upgrades", Name: "Upgrade Enthusiast", Description: "Buy 10 upgrades", Target: 10, Reward: 500, RewardType: "coins", Category: "upgrading", Rarity: types.RarityCommon},
		{ID: "hundred-upgrades", Name: "Upgrade Master", Description: "Buy 100 upgrades", Target: 100, Reward: 100, RewardType: "gems", Category: "upgrading", Rarity: types.RarityRare},

		// Prestige
		{ID: "first-prestige", Name: "Ascension", Description: "Prestige for the first time", Target: 1, Reward: 1000, RewardType: "coins", Category: "prestige", Rarity: types.RarityRare},
		{ID: "ten-prestiges", Name: "Reborn", Description: "Prestige 10 times", Target: 10, Reward: 200, RewardType: "gems", Category: "prestige", Rarity: types.RarityEpic},

		// Special
		{ID: "critical-master", Name: "Critical Master", Description: "Get 100 critical hits", Target: 100, Reward: 50, RewardType: "gems", Category: "special", Rarity: types.RarityRare},
		{ID: "lucky-streak", Name: "Lucky Streak", Description: "Get 50 lucky clicks", Target: 50, Reward: 25, RewardType: "gems", Category: "special", Rarity: types.RarityRare},
		{ID: "energy-efficient", Name: "Energy Efficient", Description: "Spend 10,000 energy", Target: 10000, Reward: 100, RewardType: "gems", Category: "special", Rarity: types.RarityEpic},
		{ID: "speed-demon", Name: "Speed Demon", Description: "Click 100 times in 10 seconds", Target: 100, Reward: 500, RewardType: "coins", Category: "special", Rarity: types.RarityEpic},
		{ID: "idle-master", Name: "Idle Master", Description: "Earn 1M coins without clicking for 1 hour", Target: 1000000, Reward: 200, RewardType: "gems", Category: "special", Rarity: types.RarityLegendary},

		// Hidden
		{ID: "secret-combo", Name: "???", Description: "Discover the secret combination", Target: 1, Reward: 1000, RewardType: "gems", Category: "special", Rarity: types.RarityMythic, Hidden: true},
		{ID: "time-traveler", Name: "Time Traveler", Description: "Play for 24 hours total", Target: 86400000, Reward: 10, RewardType: "multiplier", Category: "special", Rarity: types.RarityLegendary, Hidden: true},
	}
}

// ChallengeCatalog returns the default challenge records. Only the
// clicks and coins kinds carry evaluation predicates; the rest are
// dormant entries the evaluator passes through unchanged.
func ChallengeCatalog() []types.Challenge {
	return []types.Challenge{
		{ID: "sprint-clicks", Name: "Click Sprint", Description: "Reach 500 total clicks", Type: "clicks", Target: 500, Reward: 250, RewardType: "coins", Difficulty: "easy", Active: true},
		{ID: "marathon-clicks", Name: "Click Marathon", Description: "Reach 5,000 total clicks", Type: "clicks", Target: 5000, Reward: 50, RewardType: "gems", Difficulty: "medium", Active: true},
		{ID: "coin-rush", Name: "Coin Rush", Description: "Earn 10,000 lifetime coins", Type: "coins", Target: 10000, Reward: 1000, RewardType: "coins", Difficulty: "easy", Active: true},
		{ID: "coin-hoard", Name: "Coin Hoard", Description: "Earn 10,000,000 lifetime coins", Type: "coins", Target: 10000000, Reward: 200, RewardType: "gems", Difficulty: "hard", Active: true},
		{ID: "timed-frenzy", Name: "Timed Frenzy", Description: "Earn 100,000 coins within the time limit", Type: "time", Target: 100000, TimeLimit: 600000, Reward: 100, RewardType: "gems", Difficulty: "hard", Active: false},
		{ID: "efficiency-run", Name: "Efficiency Run", Description: "Maximize output per click", Type: "efficiency", Target: 1000, Reward: 500, RewardType: "prestige", Difficulty: "extreme", Active: false},
	}
}
