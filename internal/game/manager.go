package game

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/user/pixel-clicker/config"
	"github.com/user/pixel-clicker/internal/interfaces"
	"github.com/user/pixel-clicker/internal/types"
	"go.uber.org/zap"
)

// Rejection errors. A handler returning one of these has left the
// state untouched; rejections are expected control flow, not faults.
var (
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrInsufficientGems  = errors.New("insufficient gems")
	ErrUnknownUpgrade    = errors.New("unknown upgrade kind")
	ErrUnknownBuilding   = errors.New("unknown building kind")
	ErrUnknownGift       = errors.New("unknown gift type")
	ErrPrestigeLocked    = errors.New("prestige requires 1,000,000 lifetime coins")
	ErrNotFound          = errors.New("target not found")
	ErrCooldownActive    = errors.New("ability cooldown active")
	ErrRewardLocked      = errors.New("reward not yet unlocked")
	ErrAlreadyClaimed    = errors.New("reward already claimed")
	ErrPremiumRequired   = errors.New("premium battle pass required")
	ErrGiftLimitReached  = errors.New("daily gift limit reached")
	ErrEventInactive     = errors.New("event not active")
)

// GameManager owns the aggregate and serializes every transition,
// user actions and periodic ticks alike, through its state lock.
type GameManager struct {
	state     *types.GameState
	stateLock sync.RWMutex
	storage   *GameStateStorage
	config    config.Config
	Logger    *zap.Logger
	roller    Roller
	notifier  interfaces.Notifier
	clock     func() time.Time

	// Click-streak bookkeeping lives outside the aggregate and is
	// never persisted.
	lastClickAt time.Time
	clickStreak int

	// saveSeq is guarded by stateLock, savedSeq by saveLock.
	saveLock sync.Mutex
	saveSeq  int64
	savedSeq int64
}

// Ensure GameManager satisfies the interfaces.GameManager interface
var _ interfaces.GameManager = (*GameManager)(nil)

// NewGameManager creates a manager from the persisted snapshot, or a
// fresh initial state when none exists or the snapshot is corrupt.
func NewGameManager(cfg config.Config) *GameManager {
	storage := NewGameStateStorage(cfg.Storage.SavePath)

	state, err := storage.LoadGameState()
	if err != nil {
		state = NewInitialState()
	}

	return &GameManager{
		state:   state,
		storage: storage,
		config:  cfg,
		Logger:  zap.NewNop(), // Will be set by the server
		roller:  NewDiceRoller(),
		clock:   time.Now,
	}
}

// SetLogger sets the logger used for persistence and tick reporting.
func (gm *GameManager) SetLogger(logger *zap.Logger) {
	gm.Logger = logger
}

// SetNotifier sets the sink for user-facing transition messages.
func (gm *GameManager) SetNotifier(notifier interfaces.Notifier) {
	gm.notifier = notifier
}

// SetRoller replaces the random outcome resolver.
func (gm *GameManager) SetRoller(roller Roller) {
	gm.roller = roller
}

// State returns a deep copy of the current aggregate.
func (gm *GameManager) State() *types.GameState {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	return gm.state.Clone()
}

// LastSaved reports the persisted snapshot timestamp in epoch ms.
func (gm *GameManager) LastSaved() int64 {
	return gm.storage.LastSaved()
}

// notify forwards a fire-and-forget message to the notification sink.
func (gm *GameManager) notify(kind, message string) {
	if gm.notifier == nil || !gm.state.Settings.NotificationsEnabled {
		return
	}
	gm.notifier.Notify(kind, message)
}

// saveState persists the current state when auto-save is enabled. The
// snapshot is taken under the caller's lock; the write happens off
// the transition's critical path and failures are logged, never
// propagated.
func (gm *GameManager) saveState() {
	if !gm.state.Settings.AutoSaveEnabled {
		return
	}

	gm.saveSeq++
	seq := gm.saveSeq
	snapshot := gm.state.Clone()
	go gm.persistSnapshot(snapshot, seq)
}

// persistSnapshot writes one sequenced snapshot. Writers serialize on
// saveLock and a snapshot older than the last one written is dropped,
// so racing save goroutines can never regress the on-disk state.
func (gm *GameManager) persistSnapshot(snapshot *types.GameState, seq int64) {
	gm.saveLock.Lock()
	defer gm.saveLock.Unlock()

	if seq <= gm.savedSeq {
		return
	}

	if err := gm.storage.SaveGameState(snapshot); err != nil {
		gm.Logger.Error("Failed to save game state", zap.Error(err))
		return
	}
	gm.savedSeq = seq
}

// progressContext assembles the evaluator input from current totals.
func progressContext(s *types.GameState, streak int, critical, lucky bool) ProgressContext {
	return ProgressContext{
		TotalClicks:       s.Statistics.TotalClicks,
		TotalCoins:        s.TotalCoins,
		TotalGems:         s.TotalGems,
		CriticalHits:      s.Statistics.CriticalHits,
		LuckyClicks:       s.Statistics.LuckyClicks,
		UpgradesPurchased: s.Statistics.TotalUpgradesPurchased,
		PrestigeCount:     s.Statistics.PrestigeCount,
		EnergySpent:       s.Statistics.EnergySpent,
		PlayTimeMs:        s.Statistics.TotalTimePlayedMs,
		ClickStreak:       streak,
		IsCritical:        critical,
		IsLucky:           lucky,
	}
}

// evaluateProgress reruns the achievement and challenge predicate
// tables and keeps the unlocked counters consistent.
func (gm *GameManager) evaluateProgress(ctx ProgressContext) {
	s := gm.state
	s.Achievements = EvaluateAchievements(s.Achievements, ctx)
	s.Challenges = EvaluateChallenges(s.Challenges, ctx)
	s.Statistics.AchievementsUnlocked = CountCompleted(s.Achievements)

	var completed int64
	for _, c := range s.Challenges {
		if c.Completed {
			completed++
		}
	}
	s.Statistics.ChallengesCompleted = completed
}

// grantBattlePassExperience adds battle-pass experience and rolls the
// level over as many times as the threshold allows.
func grantBattlePassExperience(bp *types.BattlePass, xp int64) {
	if xp <= 0 {
		return
	}

	bp.Experience += xp
	for bp.Experience >= bp.ExperienceToNext {
		bp.Experience -= bp.ExperienceToNext
		bp.Level++
		bp.ExperienceToNext = int64(math.Floor(1000 * math.Pow(1.1, float64(bp.Level))))
	}
}

// Click applies one click: base gain scaled by prestige, independent
// critical and lucky rolls, the mega-click streak bonus, experience
// and level rollover, battle-pass feed and progress evaluation.
func (gm *GameManager) Click() (*types.ClickOutcome, error) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	now := gm.clock()

	if !gm.lastClickAt.IsZero() && now.Sub(gm.lastClickAt) <= time.Duration(gm.config.Game.ComboWindowMs)*time.Millisecond {
		gm.clickStreak++
	} else {
		gm.clickStreak = 1
	}
	gm.lastClickAt = now

	clickPower := s.ClickPower * s.Prestige.Multiplier
	coinsGained := clickPower
	gemsGained := 0.0
	experienceGained := 1.0

	criticalChance := 0.05 + float64(s.Upgrades.CriticalHitLevel)*0.02
	isCritical := gm.roller.Chance(criticalChance)
	if isCritical {
		coinsGained *= 5
		experienceGained *= 2
	}

	luckyChance := 0.02 + float64(s.Upgrades.LuckyClickLevel)*0.01
	isLucky := gm.roller.Chance(luckyChance)
	if isLucky {
		gemsGained += 1
	}

	isMega := false
	if gm.clickStreak >= gm.config.Game.MegaClickStreak && s.Energy >= gm.config.Game.MegaClickEnergyCost {
		coinsGained *= 10
		experienceGained *= 5
		isMega = true
	}

	leveledUp := false
	s.Experience += experienceGained
	for s.Experience >= s.ExperienceToNext {
		s.Experience -= s.ExperienceToNext
		s.Level++
		s.ExperienceToNext = math.Floor(100 * math.Pow(1.5, float64(s.Level-1)))
		coinsGained += float64(s.Level) * 100
		gemsGained += math.Floor(float64(s.Level) / 5)
		leveledUp = true
	}

	if isMega {
		s.Energy = math.Max(0, s.Energy-gm.config.Game.MegaClickEnergyCost)
		s.Statistics.EnergySpent += gm.config.Game.MegaClickEnergyCost
	}

	s.Coins += coinsGained
	s.TotalCoins += coinsGained
	s.Gems += gemsGained
	s.TotalGems += gemsGained

	grantBattlePassExperience(&s.BattlePass, int64(math.Floor(coinsGained/100)))

	s.Statistics.TotalClicks++
	if isCritical {
		s.Statistics.CriticalHits++
	}
	if isLucky {
		s.Statistics.LuckyClicks++
	}
	s.Statistics.HighestClickPower = math.Max(s.Statistics.HighestClickPower, clickPower)

	s.Player.Level = s.Level
	s.Player.TotalPower = s.TotalCoins + s.TotalGems*100

	gm.evaluateProgress(progressContext(s, gm.clickStreak, isCritical, isLucky))

	if leveledUp {
		gm.notify("level", fmt.Sprintf("Level up! Now level %d", s.Level))
	}

	gm.saveState()

	return &types.ClickOutcome{
		CoinsGained:      coinsGained,
		GemsGained:       gemsGained,
		ExperienceGained: experienceGained,
		Critical:         isCritical,
		Lucky:            isLucky,
		Mega:             isMega,
		LeveledUp:        leveledUp,
		Level:            s.Level,
		Streak:           gm.clickStreak,
	}, nil
}

// upgradeEffects is the closed kind-keyed effect table. Kinds without
// an immediate numeric effect only bump their counted level; their
// effects are read where the level matters.
var upgradeEffects = map[types.UpgradeKind]func(s *types.GameState){
	types.UpgradeClickPower: func(s *types.GameState) {
		s.ClickPower *= 2
		s.Upgrades.ClickPowerLevel++
	},
	types.UpgradeAutoClicker: func(s *types.GameState) {
		s.AutoClickers++
		s.Upgrades.AutoClickerLevel++
	},
	types.UpgradeMultiplier: func(s *types.GameState) {
		s.Prestige.Multiplier += 0.5
		s.Upgrades.MultiplierLevel++
	},
	types.UpgradeEnergy: func(s *types.GameState) {
		s.MaxEnergy += 50
		s.EnergyRegenRate += 0.5
		s.Upgrades.EnergyLevel++
	},
	types.UpgradeGemMiner:         func(s *types.GameState) { s.Upgrades.GemMinerLevel++ },
	types.UpgradeLuckyClick:       func(s *types.GameState) { s.Upgrades.LuckyClickLevel++ },
	types.UpgradeCriticalHit:      func(s *types.GameState) { s.Upgrades.CriticalHitLevel++ },
	types.UpgradeEnergyEfficiency: func(s *types.GameState) { s.Upgrades.EnergyEfficiencyLevel++ },
	types.UpgradeMegaClick:        func(s *types.GameState) { s.Upgrades.MegaClickLevel++ },
	types.UpgradeQuantumBoost:     func(s *types.GameState) { s.Upgrades.QuantumBoostLevel++ },
}

// BuyUpgrade purchases one level of the named upgrade track, paid in
// coins or gems.
func (gm *GameManager) BuyUpgrade(kind types.UpgradeKind, cost float64, currency types.Currency) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state

	effect, ok := upgradeEffects[kind]
	if !ok {
		return ErrUnknownUpgrade
	}

	switch currency {
	case types.CurrencyGems:
		if s.Gems < cost {
			gm.notify("rejected", fmt.Sprintf("Not enough gems for %s (%g required)", kind, cost))
			return ErrInsufficientGems
		}
		s.Gems -= cost
		s.Statistics.GemsSpent += cost
	default:
		if s.Coins < cost {
			gm.notify("rejected", fmt.Sprintf("Not enough coins for %s (%g required)", kind, cost))
			return ErrInsufficientCoins
		}
		s.Coins -= cost
	}

	effect(s)
	s.Statistics.TotalUpgradesPurchased++
	s.Statistics.HighestClickPower = math.Max(s.Statistics.HighestClickPower, s.ClickPower*s.Prestige.Multiplier)

	gm.evaluateProgress(progressContext(s, gm.clickStreak, false, false))
	gm.notify("purchase", fmt.Sprintf("Upgrade purchased: %s", kind))
	gm.saveState()

	return nil
}

// buildingCounters selects the owned-count slot for each kind.
var buildingCounters = map[types.BuildingKind]func(b *types.Buildings) *int{
	types.BuildingCoinMine:        func(b *types.Buildings) *int { return &b.CoinMines },
	types.BuildingGemFactory:      func(b *types.Buildings) *int { return &b.GemFactories },
	types.BuildingEnergyPlant:     func(b *types.Buildings) *int { return &b.EnergyPlants },
	types.BuildingResearchLab:     func(b *types.Buildings) *int { return &b.ResearchLabs },
	types.BuildingQuantumComputer: func(b *types.Buildings) *int { return &b.QuantumComputers },
	types.BuildingSpaceStation:    func(b *types.Buildings) *int { return &b.SpaceStations },
	types.BuildingTimeMachine:     func(b *types.Buildings) *int { return &b.TimeMachines },
	types.BuildingDimensionalRift: func(b *types.Buildings) *int { return &b.DimensionalRifts },
}

// BuyBuilding purchases one building of the named kind, paid in coins.
func (gm *GameManager) BuyBuilding(kind types.BuildingKind, cost float64) error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state

	counter, ok := buildingCounters[kind]
	if !ok {
		return ErrUnknownBuilding
	}

	if s.Coins < cost {
		gm.notify("rejected", fmt.Sprintf("Not enough coins for %s (%g required)", kind, cost))
		return ErrInsufficientCoins
	}

	s.Coins -= cost
	slot := counter(&s.Buildings)
	*slot++
	s.Statistics.TotalBuildingsBuilt++

	gm.notify("purchase", fmt.Sprintf("Building constructed: %s", kind))
	gm.saveState()

	return nil
}

// Prestige converts lifetime coins into permanent prestige points and
// replaces the aggregate with a fresh initial state, carrying over
// the cross-cutting collaborator fields verbatim.
func (gm *GameManager) Prestige() (int, error) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	prev := gm.state
	if prev.TotalCoins < gm.config.Game.PrestigeThreshold {
		gm.notify("rejected", "Prestige locked: 1,000,000 lifetime coins required")
		return 0, ErrPrestigeLocked
	}

	points := int(math.Floor(math.Sqrt(prev.TotalCoins / 1_000_000)))
	totalPoints := prev.Prestige.Points + points

	next := NewInitialState()
	next.Prestige = types.Prestige{
		Level:      prev.Prestige.Level + 1,
		Points:     totalPoints,
		Multiplier: 1 + float64(totalPoints)*0.1,
		Tokens:     prev.Prestige.Tokens + points/10,
	}
	next.Achievements = prev.Achievements
	next.Player = prev.Player
	next.Guild = prev.Guild
	next.Leaderboard = prev.Leaderboard
	next.SocialFeatures = prev.SocialFeatures
	next.BattlePass = prev.BattlePass
	next.Tournaments = prev.Tournaments
	next.Pets = prev.Pets
	next.Artifacts = prev.Artifacts
	next.WorldEvents = prev.WorldEvents
	next.Settings = prev.Settings
	next.Notifications = prev.Notifications
	next.Statistics = prev.Statistics
	next.Statistics.PrestigeCount++

	gm.state = next
	gm.clickStreak = 0
	gm.lastClickAt = time.Time{}

	gm.evaluateProgress(progressContext(next, 0, false, false))
	gm.notify("prestige", fmt.Sprintf("Prestige complete! +%d prestige points", points))
	gm.saveState()

	return points, nil
}

// Reset unconditionally replaces the aggregate with the initial state
// and erases the persisted snapshot.
func (gm *GameManager) Reset() error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	gm.state = NewInitialState()
	gm.clickStreak = 0
	gm.lastClickAt = time.Time{}

	if err := gm.storage.Clear(); err != nil {
		gm.Logger.Error("Failed to clear saved game state", zap.Error(err))
	}

	gm.notify("reset", "Game reset")
	return nil
}

// AccruePlayTime is the play-time tick: it advances the played-time
// counter and refreshes the last-active stamp.
func (gm *GameManager) AccruePlayTime(intervalMs int64) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	gm.state.Statistics.TotalTimePlayedMs += intervalMs
	gm.state.Player.LastActive = gm.clock().UnixMilli()

	gm.saveState()
}

// RegenerateEnergy is the energy tick: clamped regeneration, a no-op
// once at cap.
func (gm *GameManager) RegenerateEnergy() {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state
	if s.Energy >= s.MaxEnergy {
		return
	}

	s.Energy = math.Min(s.MaxEnergy, s.Energy+s.EnergyRegenRate)
	gm.saveState()
}

// AdvanceProduction is the passive-production tick: auto-clickers and
// buildings scaled by prestige, research and quantum multipliers, the
// active-pet bonus, the battle-pass feed and the running maxima.
func (gm *GameManager) AdvanceProduction() {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	s := gm.state

	coinsGained := 0.0
	gemsGained := 0.0
	energyGained := 0.0

	if s.AutoClickers > 0 {
		coinsGained += float64(s.AutoClickers) * s.AutoClickerPower * s.Prestige.Multiplier
	}

	coinsGained += float64(s.Buildings.CoinMines) * 1 * s.Prestige.Multiplier
	gemsGained += float64(s.Buildings.GemFactories) * 0.1
	energyGained += float64(s.Buildings.EnergyPlants) * 2
	coinsGained += float64(s.Buildings.SpaceStations) * 100 * s.Prestige.Multiplier
	coinsGained += float64(s.Buildings.TimeMachines) * 1000 * s.Prestige.Multiplier
	coinsGained += float64(s.Buildings.DimensionalRifts) * 10000 * s.Prestige.Multiplier

	if s.Buildings.ResearchLabs > 0 {
		researchBonus := 1 + float64(s.Buildings.ResearchLabs)*0.1
		coinsGained *= researchBonus
		gemsGained *= researchBonus
	}

	if s.Buildings.QuantumComputers > 0 {
		quantumBonus := math.Pow(1.05, float64(s.Buildings.QuantumComputers))
		coinsGained *= quantumBonus
		gemsGained *= quantumBonus
	}

	for _, pet := range s.Pets {
		if pet.IsActive {
			coinsGained *= 1 + float64(pet.Level)*0.1
		}
	}

	s.Statistics.HighestCoinsPerSecond = math.Max(s.Statistics.HighestCoinsPerSecond, coinsGained)

	s.Coins += coinsGained
	s.TotalCoins += coinsGained
	s.Gems += gemsGained
	s.TotalGems += gemsGained
	s.Energy = math.Min(s.MaxEnergy, s.Energy+energyGained)

	grantBattlePassExperience(&s.BattlePass, int64(math.Floor(coinsGained/1000)))

	s.Player.TotalPower = s.TotalCoins + s.TotalGems*100

	gm.saveState()
}
