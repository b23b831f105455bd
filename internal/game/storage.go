package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/user/pixel-clicker/internal/types"
)

// GameStateStorage persists the aggregate to a durable JSON slot plus
// a last-save timestamp sidecar.
type GameStateStorage struct {
	savePath     string
	lastSavePath string
	fileLock     sync.Mutex
}

// NewGameStateStorage creates a storage adapter rooted at savePath.
func NewGameStateStorage(savePath string) *GameStateStorage {
	dir := filepath.Dir(savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		savePath = "./data/game_state.json"
		dir = filepath.Dir(savePath)
	}

	return &GameStateStorage{
		savePath:     savePath,
		lastSavePath: filepath.Join(dir, "last_save.json"),
	}
}

// SaveGameState writes the serialized aggregate and the last-save
// timestamp (epoch milliseconds, informational only).
func (gss *GameStateStorage) SaveGameState(state *types.GameState) error {
	gss.fileLock.Lock()
	defer gss.fileLock.Unlock()

	dir := filepath.Dir(gss.savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	if err := os.WriteFile(gss.savePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write game state: %w", err)
	}

	stamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := os.WriteFile(gss.lastSavePath, []byte(stamp), 0644); err != nil {
		return fmt.Errorf("failed to write save timestamp: %w", err)
	}

	return nil
}

// LoadGameState reads the stored snapshot and merges it against
// current defaults. A missing file yields a fresh initial state; a
// corrupt file yields an error so the caller can fall back.
func (gss *GameStateStorage) LoadGameState() (*types.GameState, error) {
	gss.fileLock.Lock()
	defer gss.fileLock.Unlock()

	if _, err := os.Stat(gss.savePath); os.IsNotExist(err) {
		return NewInitialState(), nil
	}

	data, err := os.ReadFile(gss.savePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game state file: %w", err)
	}

	return MergeSnapshot(data)
}

// Clear erases the persisted snapshot and its timestamp.
func (gss *GameStateStorage) Clear() error {
	gss.fileLock.Lock()
	defer gss.fileLock.Unlock()

	if err := os.Remove(gss.savePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove game state: %w", err)
	}
	if err := os.Remove(gss.lastSavePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove save timestamp: %w", err)
	}
	return nil
}

// LastSaved returns the stored save timestamp in epoch milliseconds,
// or zero when none exists.
func (gss *GameStateStorage) LastSaved() int64 {
	data, err := os.ReadFile(gss.lastSavePath)
	if err != nil {
		return 0
	}
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0
	}
	return ms
}

// MergeSnapshot merges a stored snapshot field-by-field against the
// current defaults. Scalars and flat-object fields shallow-merge
// (stored values override, missing keys keep defaults); achievements
// and challenges merge by id against the content catalogs so saves
// survive catalog additions and silently drop obsolete entries;
// unknown keys are ignored.
func MergeSnapshot(data []byte) (*types.GameState, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse game state: %w", err)
	}

	state := NewInitialState()

	// Scalars override defaults when present.
	mergeField(raw, "coins", &state.Coins)
	mergeField(raw, "total_coins", &state.TotalCoins)
	mergeField(raw, "click_power", &state.ClickPower)
	mergeField(raw, "auto_clickers", &state.AutoClickers)
	mergeField(raw, "auto_clicker_power", &state.AutoClickerPower)
	mergeField(raw, "gems", &state.Gems)
	mergeField(raw, "total_gems", &state.TotalGems)
	mergeField(raw, "energy", &state.Energy)
	mergeField(raw, "max_energy", &state.MaxEnergy)
	mergeField(raw, "energy_regen_rate", &state.EnergyRegenRate)
	mergeField(raw, "level", &state.Level)
	mergeField(raw, "experience", &state.Experience)
	mergeField(raw, "experience_to_next", &state.ExperienceToNext)

	// Flat-object fields shallow-merge onto their defaults so fields
	// added after the save was written keep their default values.
	mergeField(raw, "upgrades", &state.Upgrades)
	mergeField(raw, "buildings", &state.Buildings)
	mergeField(raw, "prestige", &state.Prestige)
	mergeField(raw, "statistics", &state.Statistics)
	mergeField(raw, "settings", &state.Settings)
	mergeField(raw, "player", &state.Player)
	mergeField(raw, "social_features", &state.SocialFeatures)
	mergeField(raw, "battle_pass", &state.BattlePass)

	// Catalog-backed sequences merge by identity.
	if fragment, ok := raw["achievements"]; ok {
		var saved []types.Achievement
		if err := json.Unmarshal(fragment, &saved); err == nil {
			state.Achievements = mergeAchievements(saved, AchievementCatalog())
		}
	}
	if fragment, ok := raw["challenges"]; ok {
		var saved []types.Challenge
		if err := json.Unmarshal(fragment, &saved); err == nil {
			state.Challenges = mergeChallenges(saved, ChallengeCatalog())
		}
	}

	// Collection fields replace the defaults wholesale when present.
	mergeField(raw, "guild", &state.Guild)
	mergeField(raw, "leaderboard", &state.Leaderboard)
	mergeField(raw, "tournaments", &state.Tournaments)
	mergeField(raw, "pets", &state.Pets)
	mergeField(raw, "artifacts", &state.Artifacts)
	mergeField(raw, "world_events", &state.WorldEvents)
	mergeField(raw, "notifications", &state.Notifications)

	if state.Pets == nil {
		state.Pets = []types.Pet{}
	}
	if state.Artifacts == nil {
		state.Artifacts = []types.Artifact{}
	}
	if state.Notifications == nil {
		state.Notifications = []types.Notification{}
	}

	// An explicit null for the simulated collections falls back to
	// freshly generated defaults.
	now := time.Now().UnixMilli()
	if state.Leaderboard == nil {
		state.Leaderboard = generateLeaderboard()
	}
	if state.Tournaments == nil {
		state.Tournaments = generateTournaments(now)
	}
	if state.WorldEvents == nil {
		state.WorldEvents = generateWorldEvents(now)
	}

	return state, nil
}

// mergeField overwrites dst with the stored fragment when the key is
// present and parseable; otherwise dst keeps its default.
func mergeField(raw map[string]json.RawMessage, key string, dst any) {
	fragment, ok := raw[key]
	if !ok {
		return
	}
	// A bad fragment keeps the default rather than failing the load.
	_ = json.Unmarshal(fragment, dst)
}

// mergeAchievements keeps the stored record for every catalog id that
// has one and falls back to the catalog default otherwise. Ids absent
// from the catalog are dropped.
func mergeAchievements(saved []types.Achievement, defaults []types.Achievement) []types.Achievement {
	byID := make(map[string]types.Achievement, len(saved))
	for _, a := range saved {
		byID[a.ID] = a
	}

	merged := make([]types.Achievement, len(defaults))
	for i, def := range defaults {
		if stored, ok := byID[def.ID]; ok {
			merged[i] = stored
		} else {
			merged[i] = def
		}
	}
	return merged
}

// mergeChallenges is the challenge analogue of mergeAchievements.
func mergeChallenges(saved []types.Challenge, defaults []types.Challenge) []types.Challenge {
	byID := make(map[string]types.Challenge, len(saved))
	for _, c := range saved {
		byID[c.ID] = c
	}

	merged := make([]types.Challenge, len(defaults))
	for i, def := range defaults {
		if stored, ok := byID[def.ID]; ok {
			merged[i] = stored
		} else {
			merged[i] = def
		}
	}
	return merged
}
