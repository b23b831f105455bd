package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	Game GameConfig `json:"game"`

	// Storage configuration
	Storage StorageConfig `json:"storage"`

	// Server configuration
	Server ServerConfig `json:"server"`
}

// GameConfig holds game specific configuration
type GameConfig struct {
	// Tick interval for the periodic systems, in milliseconds
	TickIntervalMs int `json:"tick_interval_ms"`

	// Combo window for click streaks, in milliseconds
	ComboWindowMs int64 `json:"combo_window_ms"`

	// Click streak length required for a mega click
	MegaClickStreak int `json:"mega_click_streak"`

	// Energy consumed by a mega click
	MegaClickEnergyCost float64 `json:"mega_click_energy_cost"`

	// Lifetime coins required before prestige unlocks
	PrestigeThreshold float64 `json:"prestige_threshold"`

	// Gem cost of summoning a pet
	PetSummonCost float64 `json:"pet_summon_cost"`

	// Coin cost of feeding a pet
	PetFeedCost float64 `json:"pet_feed_cost"`

	// Gem cost of forging an artifact
	ArtifactForgeCost float64 `json:"artifact_forge_cost"`

	// Gem cost of creating a guild
	GuildCreateCost float64 `json:"guild_create_cost"`

	// Gem cost of the premium battle pass
	PremiumPassCost float64 `json:"premium_pass_cost"`

	// Maximum gifts sendable per day
	DailyGiftLimit int `json:"daily_gift_limit"`
}

// StorageConfig holds persistence specific configuration
type StorageConfig struct {
	// Path of the serialized game state snapshot
	SavePath string `json:"save_path"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			TickIntervalMs:      1000,
			ComboWindowMs:       1000,
			MegaClickStreak:     10,
			MegaClickEnergyCost: 10,
			PrestigeThreshold:   1_000_000,
			PetSummonCost:       100,
			PetFeedCost:         1000,
			ArtifactForgeCost:   500,
			GuildCreateCost:     1000,
			PremiumPassCost:     2000,
			DailyGiftLimit:      10,
		},
		Storage: StorageConfig{
			SavePath: "./data/game_state.json",
		},
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		file, err := os.Create(path)
		if err != nil {
			return config, err
		}
		defer file.Close()

		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(config); err != nil {
			return config, err
		}

		return config, nil
	}

	// Read config file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write config to file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}
