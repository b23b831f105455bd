package game

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/user/pixel-clicker/config"
	"github.com/user/pixel-clicker/internal/types"
)

// stubRoller is a deterministic Roller. Chance pops queued verdicts
// and returns false once the queue is empty.
type stubRoller struct {
	chances []bool
	rarity  types.Rarity
	intn    int
}

func (r *stubRoller) Chance(p float64) bool {
	if len(r.chances) == 0 {
		return false
	}
	v := r.chances[0]
	r.chances = r.chances[1:]
	return v
}

func (r *stubRoller) Rarity() types.Rarity {
	if r.rarity == "" {
		return types.RarityCommon
	}
	return r.rarity
}

func (r *stubRoller) Intn(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

func newTestManager(t *testing.T) *GameManager {
	cfg := config.DefaultConfig()
	cfg.Storage.SavePath = filepath.Join(t.TempDir(), "game_state.json")

	gm := NewGameManager(cfg)
	gm.SetRoller(&stubRoller{})
	gm.clock = func() time.Time { return time.UnixMilli(1700000000000) }

	// Keep test transitions synchronous
	gm.state.Settings.AutoSaveEnabled = false

	return gm
}

func TestClickBaseOutcome(t *testing.T) {
	gm := newTestManager(t)

	outcome, err := gm.Click()
	assert.NoError(t, err)
	assert.Equal(t, 1.0, outcome.CoinsGained)
	assert.Equal(t, 0.0, outcome.GemsGained)
	assert.Equal(t, 1.0, outcome.ExperienceGained)
	assert.False(t, outcome.Critical)
	assert.False(t, outcome.Lucky)
	assert.False(t, outcome.Mega)
	assert.Equal(t, 1, outcome.Streak)

	state := gm.State()
	assert.Equal(t, 1.0, state.Coins)
	assert.Equal(t, 1.0, state.TotalCoins)
	assert.Equal(t, int64(1), state.Statistics.TotalClicks)
	assert.Equal(t, 1.0, state.Experience)
}

func TestClickUnlocksFirstClickAchievement(t *testing.T) {
	gm := newTestManager(t)

	_, err := gm.Click()
	assert.NoError(t, err)

	state := gm.State()
	var found bool
	for _, a := range state.Achievements {
		if a.ID == "first-click" {
			found = true
			assert.True(t, a.Completed)
			assert.Equal(t, 1.0, a.Progress)
		}
	}
	assert.True(t, found)
	assert.Equal(t, int64(1), state.Statistics.AchievementsUnlocked)
}

func TestClickCritical(t *testing.T) {
	gm := newTestManager(t)
	gm.SetRoller(&stubRoller{chances: []bool{true, false}})

	outcome, err := gm.Click()
	assert.NoError(t, err)
	assert.True(t, outcome.Critical)
	assert.False(t, outcome.Lucky)
	assert.Equal(t, 5.0, outcome.CoinsGained)
	assert.Equal(t, 2.0, outcome.ExperienceGained)
	assert.Equal(t, int64(1), gm.State().Statistics.CriticalHits)
}

func TestClickLucky(t *testing.T) {
	gm := newTestManager(t)
	gm.SetRoller(&stubRoller{chances: []bool{false, true}})

	outcome, err := gm.Click()
	assert.NoError(t, err)
	assert.False(t, outcome.Critical)
	assert.True(t, outcome.Lucky)
	assert.Equal(t, 1.0, outcome.GemsGained)

	state := gm.State()
	assert.Equal(t, 1.0, state.Gems)
	assert.Equal(t, int64(1), state.Statistics.LuckyClicks)
}

func TestClickLevelUpRollover(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Experience = 99

	outcome, err := gm.Click()
	assert.NoError(t, err)
	assert.True(t, outcome.LeveledUp)
	assert.Equal(t, 2, outcome.Level)

	state := gm.State()
	assert.Equal(t, 2, state.Level)
	assert.Equal(t, 0.0, state.Experience)
	assert.Equal(t, 150.0, state.ExperienceToNext)
	// 1 click coin + level-up bonus of level*100
	assert.Equal(t, 201.0, state.Coins)
	assert.Equal(t, 2, state.Player.Level)
}

func TestClickMegaOnStreak(t *testing.T) {
	gm := newTestManager(t)

	now := time.UnixMilli(1700000000000)
	gm.clock = func() time.Time { return now }

	var outcome *types.ClickOutcome
	var err error
	for i := 0; i < 10; i++ {
		now = now.Add(100 * time.Millisecond)
		outcome, err = gm.Click()
		assert.NoError(t, err)
	}

	assert.True(t, outcome.Mega)
	assert.Equal(t, 10, outcome.Streak)
	assert.Equal(t, 10.0, outcome.CoinsGained)
	assert.Equal(t, 5.0, outcome.ExperienceGained)

	state := gm.State()
	assert.Equal(t, 90.0, state.Energy)
	assert.Equal(t, 10.0, state.Statistics.EnergySpent)
}

func TestClickStreakResetsAfterGap(t *testing.T) {
	gm := newTestManager(t)

	now := time.UnixMilli(1700000000000)
	gm.clock = func() time.Time { return now }

	outcome, err := gm.Click()
	assert.NoError(t, err)
	assert.Equal(t, 1, outcome.Streak)

	now = now.Add(500 * time.Millisecond)
	outcome, err = gm.Click()
	assert.NoError(t, err)
	assert.Equal(t, 2, outcome.Streak)

	now = now.Add(2 * time.Second)
	outcome, err = gm.Click()
	assert.NoError(t, err)
	assert.Equal(t, 1, outcome.Streak)
}

func TestClickMegaRequiresEnergy(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Energy = 5

	now := time.UnixMilli(1700000000000)
	gm.clock = func() time.Time { return now }

	var outcome *types.ClickOutcome
	var err error
	for i := 0; i < 10; i++ {
		now = now.Add(100 * time.Millisecond)
		outcome, err = gm.Click()
		assert.NoError(t, err)
	}

	assert.False(t, outcome.Mega)
	assert.Equal(t, 5.0, gm.State().Energy)
}

func TestClickScalesWithPrestigeMultiplier(t *testing.T) {
	gm := newTestManager(t)
	gm.state.ClickPower = 4
	gm.state.Prestige.Multiplier = 1.5

	outcome, err := gm.Click()
	assert.NoError(t, err)
	assert.Equal(t, 6.0, outcome.CoinsGained)
}

func TestBuyUpgradeClickPower(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 100

	err := gm.BuyUpgrade(types.UpgradeClickPower, 50, types.CurrencyCoins)
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 50.0, state.Coins)
	assert.Equal(t, 2.0, state.ClickPower)
	assert.Equal(t, 1, state.Upgrades.ClickPowerLevel)
	assert.Equal(t, int64(1), state.Statistics.TotalUpgradesPurchased)
}

func TestBuyUpgradeWithGems(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Gems = 30

	err := gm.BuyUpgrade(types.UpgradeLuckyClick, 20, types.CurrencyGems)
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 10.0, state.Gems)
	assert.Equal(t, 20.0, state.Statistics.GemsSpent)
	assert.Equal(t, 1, state.Upgrades.LuckyClickLevel)
}

func TestBuyUpgradeInsufficientFunds(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 10

	err := gm.BuyUpgrade(types.UpgradeClickPower, 50, types.CurrencyCoins)
	assert.ErrorIs(t, err, ErrInsufficientCoins)

	state := gm.State()
	assert.Equal(t, 10.0, state.Coins)
	assert.Equal(t, 1.0, state.ClickPower)
	assert.Equal(t, int64(0), state.Statistics.TotalUpgradesPurchased)
}

func TestBuyUpgradeUnknownKind(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 100

	err := gm.BuyUpgrade("teleporter", 50, types.CurrencyCoins)
	assert.ErrorIs(t, err, ErrUnknownUpgrade)
	assert.Equal(t, 100.0, gm.State().Coins)
}

func TestBuyBuilding(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 100

	err := gm.BuyBuilding(types.BuildingCoinMine, 50)
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 50.0, state.Coins)
	assert.Equal(t, 1, state.Buildings.CoinMines)
	assert.Equal(t, int64(1), state.Statistics.TotalBuildingsBuilt)
}

func TestBuyBuildingInsufficientCoins(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 10

	err := gm.BuyBuilding(types.BuildingSpaceStation, 50)
	assert.ErrorIs(t, err, ErrInsufficientCoins)

	state := gm.State()
	assert.Equal(t, 10.0, state.Coins)
	assert.Equal(t, 0, state.Buildings.SpaceStations)
}

func TestBuyBuildingUnknownKind(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 100

	err := gm.BuyBuilding("moonBase", 50)
	assert.ErrorIs(t, err, ErrUnknownBuilding)
	assert.Equal(t, 100.0, gm.State().Coins)
}

func TestPrestigeLockedBelowThreshold(t *testing.T) {
	gm := newTestManager(t)
	gm.state.TotalCoins = 999999

	_, err := gm.Prestige()
	assert.ErrorIs(t, err, ErrPrestigeLocked)
	assert.Equal(t, 999999.0, gm.State().TotalCoins)
}

func TestPrestige(t *testing.T) {
	gm := newTestManager(t)
	gm.state.TotalCoins = 4000000
	gm.state.Coins = 12345
	gm.state.Level = 9
	gm.state.Achievements[0].Completed = true

	points, err := gm.Prestige()
	assert.NoError(t, err)
	assert.Equal(t, 2, points)

	state := gm.State()
	assert.Equal(t, 0.0, state.Coins)
	assert.Equal(t, 0.0, state.TotalCoins)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 1, state.Prestige.Level)
	assert.Equal(t, 2, state.Prestige.Points)
	assert.InDelta(t, 1.2, state.Prestige.Multiplier, 1e-9)
	assert.Equal(t, int64(1), state.Statistics.PrestigeCount)
	// Achievements survive the reset
	assert.True(t, state.Achievements[0].Completed)
}

func TestPrestigeResetsChallenges(t *testing.T) {
	gm := newTestManager(t)
	gm.state.TotalCoins = 2000000
	gm.state.Challenges[0].Completed = true
	gm.state.Challenges[0].Progress = 500

	_, err := gm.Prestige()
	assert.NoError(t, err)

	state := gm.State()
	assert.False(t, state.Challenges[0].Completed)
	assert.Equal(t, 0.0, state.Challenges[0].Progress)
	assert.Equal(t, int64(0), state.Statistics.ChallengesCompleted)
}

func TestPrestigeAccumulatesPoints(t *testing.T) {
	gm := newTestManager(t)
	gm.state.TotalCoins = 1000000
	gm.state.Prestige.Points = 3

	points, err := gm.Prestige()
	assert.NoError(t, err)
	assert.Equal(t, 1, points)

	state := gm.State()
	assert.Equal(t, 4, state.Prestige.Points)
	assert.InDelta(t, 1.4, state.Prestige.Multiplier, 1e-9)
}

func TestReset(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Coins = 5000
	gm.state.Level = 7

	err := gm.Reset()
	assert.NoError(t, err)

	state := gm.State()
	assert.Equal(t, 0.0, state.Coins)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, int64(0), state.Statistics.TotalClicks)
}

func TestRegenerateEnergy(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Energy = 50

	gm.RegenerateEnergy()
	assert.Equal(t, 51.0, gm.State().Energy)
}

func TestRegenerateEnergyClampsAtMax(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Energy = 99.5

	gm.RegenerateEnergy()
	assert.Equal(t, 100.0, gm.State().Energy)

	gm.RegenerateEnergy()
	assert.Equal(t, 100.0, gm.State().Energy)
}

func TestAccruePlayTime(t *testing.T) {
	gm := newTestManager(t)

	gm.AccruePlayTime(1000)
	gm.AccruePlayTime(1000)

	state := gm.State()
	assert.Equal(t, int64(2000), state.Statistics.TotalTimePlayedMs)
	assert.Equal(t, int64(1700000000000), state.Player.LastActive)
}

func TestAdvanceProductionCoinMines(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Buildings.CoinMines = 10

	gm.AdvanceProduction()

	state := gm.State()
	assert.Equal(t, 10.0, state.Coins)
	assert.Equal(t, 10.0, state.TotalCoins)
	assert.Equal(t, 10.0, state.Statistics.HighestCoinsPerSecond)
}

func TestAdvanceProductionAutoClickers(t *testing.T) {
	gm := newTestManager(t)
	gm.state.AutoClickers = 5
	gm.state.AutoClickerPower = 2
	gm.state.Prestige.Multiplier = 2

	gm.AdvanceProduction()
	assert.Equal(t, 20.0, gm.State().Coins)
}

func TestAdvanceProductionMultipliers(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Buildings.CoinMines = 10
	gm.state.Buildings.ResearchLabs = 5

	gm.AdvanceProduction()
	// 10 base coins scaled by 1 + 5*0.1
	assert.InDelta(t, 15.0, gm.State().Coins, 1e-9)
}

func TestAdvanceProductionActivePetBonus(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Buildings.CoinMines = 10
	gm.state.Pets = []types.Pet{{ID: "pet-1", Level: 5, IsActive: true}}

	gm.AdvanceProduction()
	// 10 base coins scaled by 1 + 5*0.1
	assert.InDelta(t, 15.0, gm.State().Coins, 1e-9)
}

func TestAdvanceProductionGemsAndEnergy(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Energy = 10
	gm.state.Buildings.GemFactories = 10
	gm.state.Buildings.EnergyPlants = 3

	gm.AdvanceProduction()

	state := gm.State()
	assert.InDelta(t, 1.0, state.Gems, 1e-9)
	assert.Equal(t, 16.0, state.Energy)
}

func TestClickFeedsBattlePassExperience(t *testing.T) {
	gm := newTestManager(t)
	gm.state.ClickPower = 250

	_, err := gm.Click()
	assert.NoError(t, err)

	// floor(250 coins / 100)
	assert.Equal(t, int64(2), gm.State().BattlePass.Experience)
}

func TestAdvanceProductionFeedsBattlePassExperience(t *testing.T) {
	gm := newTestManager(t)
	gm.state.Buildings.TimeMachines = 5

	gm.AdvanceProduction()

	// floor(5000 coins / 1000)
	assert.Equal(t, int64(5), gm.State().BattlePass.Experience)
}

func TestStaleSnapshotNeverOverwritesNewer(t *testing.T) {
	gm := newTestManager(t)

	older := gm.State()
	older.Coins = 1
	newer := gm.State()
	newer.Coins = 2

	gm.persistSnapshot(newer, 2)
	gm.persistSnapshot(older, 1)

	loaded, err := gm.storage.LoadGameState()
	assert.NoError(t, err)
	assert.Equal(t, 2.0, loaded.Coins)
}

func TestGrantBattlePassExperienceRollover(t *testing.T) {
	bp := types.BattlePass{Level: 1, Experience: 0, ExperienceToNext: 1000}

	grantBattlePassExperience(&bp, 1500)

	assert.Equal(t, 2, bp.Level)
	assert.Equal(t, int64(500), bp.Experience)
	assert.Equal(t, int64(1210), bp.ExperienceToNext)
}

func TestGrantBattlePassExperienceZero(t *testing.T) {
	bp := types.BattlePass{Level: 1, Experience: 100, ExperienceToNext: 1000}

	grantBattlePassExperience(&bp, 0)

	assert.Equal(t, 1, bp.Level)
	assert.Equal(t, int64(100), bp.Experience)
}

func TestStateReturnsDeepCopy(t *testing.T) {
	gm := newTestManager(t)

	copy1 := gm.State()
	copy1.Coins = 9999
	copy1.Achievements[0].Completed = true

	state := gm.State()
	assert.Equal(t, 0.0, state.Coins)
	assert.False(t, state.Achievements[0].Completed)
}
