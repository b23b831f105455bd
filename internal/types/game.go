package types

// Rarity is the ordered tier set used for pet summoning, artifact
// forging and cosmetic display.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// UpgradeKind identifies one of the fixed upgrade tracks.
type UpgradeKind string

const (
	UpgradeClickPower       UpgradeKind = "clickPower"
	UpgradeAutoClicker      UpgradeKind = "autoClicker"
	UpgradeMultiplier       UpgradeKind = "multiplier"
	UpgradeEnergy           UpgradeKind = "energy"
	UpgradeGemMiner         UpgradeKind = "gemMiner"
	UpgradeLuckyClick       UpgradeKind = "luckyClick"
	UpgradeCriticalHit      UpgradeKind = "criticalHit"
	UpgradeEnergyEfficiency UpgradeKind = "energyEfficiency"
	UpgradeMegaClick        UpgradeKind = "megaClick"
	UpgradeQuantumBoost     UpgradeKind = "quantumBoost"
)

// BuildingKind identifies one of the fixed building types.
type BuildingKind string

const (
	BuildingCoinMine        BuildingKind = "coinMine"
	BuildingGemFactory      BuildingKind = "gemFactory"
	BuildingEnergyPlant     BuildingKind = "energyPlant"
	BuildingResearchLab     BuildingKind = "researchLab"
	BuildingQuantumComputer BuildingKind = "quantumComputer"
	BuildingSpaceStation    BuildingKind = "spaceStation"
	BuildingTimeMachine     BuildingKind = "timeMachine"
	BuildingDimensionalRift BuildingKind = "dimensionalRift"
)

// Currency selects which balance a purchase is paid from.
type Currency string

const (
	CurrencyCoins Currency = "coins"
	CurrencyGems  Currency = "gems"
)

// GameState is the single aggregate root. It is the only unit of
// persistence and the only mutation target; every transition rewrites
// it under the manager's lock.
type GameState struct {
	Coins            float64 `json:"coins"`
	TotalCoins       float64 `json:"total_coins"`
	ClickPower       float64 `json:"click_power"`
	AutoClickers     int     `json:"auto_clickers"`
	AutoClickerPower float64 `json:"auto_clicker_power"`
	Gems             float64 `json:"gems"`
	TotalGems        float64 `json:"total_gems"`
	Energy           float64 `json:"energy"`
	MaxEnergy        float64 `json:"max_energy"`
	EnergyRegenRate  float64 `json:"energy_regen_rate"`
	Level            int     `json:"level"`
	Experience       float64 `json:"experience"`
	ExperienceToNext float64 `json:"experience_to_next"`

	Upgrades  Upgrades  `json:"upgrades"`
	Buildings Buildings `json:"buildings"`

	Achievements []Achievement `json:"achievements"`
	Challenges   []Challenge   `json:"challenges"`

	Prestige   Prestige   `json:"prestige"`
	Statistics Statistics `json:"statistics"`
	Settings   Settings   `json:"settings"`

	Player         PlayerProfile      `json:"player"`
	Guild          *Guild             `json:"guild"`
	Leaderboard    []LeaderboardEntry `json:"leaderboard"`
	SocialFeatures SocialFeatures     `json:"social_features"`
	BattlePass     BattlePass         `json:"battle_pass"`
	Tournaments    []Tournament       `json:"tournaments"`
	Pets           []Pet              `json:"pets"`
	Artifacts      []Artifact         `json:"artifacts"`
	WorldEvents    []WorldEvent       `json:"world_events"`
	Notifications  []Notification     `json:"notifications"`
}

// Upgrades holds the purchased level of every upgrade track.
type Upgrades struct {
	ClickPowerLevel       int `json:"click_power_level"`
	AutoClickerLevel      int `json:"auto_clicker_level"`
	MultiplierLevel       int `json:"multiplier_level"`
	EnergyLevel           int `json:"energy_level"`
	GemMinerLevel         int `json:"gem_miner_level"`
	LuckyClickLevel       int `json:"lucky_click_level"`
	CriticalHitLevel      int `json:"critical_hit_level"`
	EnergyEfficiencyLevel int `json:"energy_efficiency_level"`
	MegaClickLevel        int `json:"mega_click_level"`
	QuantumBoostLevel     int `json:"quantum_boost_level"`
}

// Buildings holds the owned count of every building type.
type Buildings struct {
	CoinMines        int `json:"coin_mines"`
	GemFactories     int `json:"gem_factories"`
	EnergyPlants     int `json:"energy_plants"`
	ResearchLabs     int `json:"research_labs"`
	QuantumComputers int `json:"quantum_computers"`
	SpaceStations    int `json:"space_stations"`
	TimeMachines     int `json:"time_machines"`
	DimensionalRifts int `json:"dimensional_rifts"`
}

// Achievement is one catalog record plus its mutable progress fields.
// Once Completed flips true it never reverts.
type Achievement struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Target      float64 `json:"target"`
	Completed   bool    `json:"completed"`
	Reward      float64 `json:"reward"`
	RewardType  string  `json:"reward_type"`
	Category    string  `json:"category"`
	Rarity      Rarity  `json:"rarity"`
	Hidden      bool    `json:"hidden"`
	Progress    float64 `json:"progress"`
}

// Challenge is analogous to Achievement with an activation window.
type Challenge struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Target      float64 `json:"target"`
	TimeLimit   int64   `json:"time_limit,omitempty"`
	Reward      float64 `json:"reward"`
	RewardType  string  `json:"reward_type"`
	Difficulty  string  `json:"difficulty"`
	Active      bool    `json:"active"`
	Completed   bool    `json:"completed"`
	Progress    float64 `json:"progress"`
	StartTime   int64   `json:"start_time,omitempty"`
}

// Prestige tracks the permanent reset-earned bonus.
// Multiplier is always 1 + Points*0.1.
type Prestige struct {
	Level      int     `json:"level"`
	Points     int     `json:"points"`
	Multiplier float64 `json:"multiplier"`
	Tokens     int     `json:"tokens"`
}

// Statistics are monotonic lifetime counters; HighestCoinsPerSecond
// and HighestClickPower are running maxima.
type Statistics struct {
	TotalClicks            int64   `json:"total_clicks"`
	TotalTimePlayedMs      int64   `json:"total_time_played_ms"`
	HighestCoinsPerSecond  float64 `json:"highest_coins_per_second"`
	HighestClickPower      float64 `json:"highest_click_power"`
	TotalUpgradesPurchased int64   `json:"total_upgrades_purchased"`
	TotalBuildingsBuilt    int64   `json:"total_buildings_built"`
	PrestigeCount          int64   `json:"prestige_count"`
	AchievementsUnlocked   int64   `json:"achievements_unlocked"`
	ChallengesCompleted    int64   `json:"challenges_completed"`
	CriticalHits           int64   `json:"critical_hits"`
	LuckyClicks            int64   `json:"lucky_clicks"`
	EnergySpent            float64 `json:"energy_spent"`
	GemsSpent              float64 `json:"gems_spent"`
}

// Settings are player preferences; AutoSaveEnabled gates persistence.
type Settings struct {
	SoundEnabled         bool   `json:"sound_enabled"`
	MusicEnabled         bool   `json:"music_enabled"`
	ParticlesEnabled     bool   `json:"particles_enabled"`
	AutoSaveEnabled      bool   `json:"auto_save_enabled"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	Theme                string `json:"theme"`
}

// PlayerProfile is the local player identity and derived power score.
type PlayerProfile struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Avatar     string   `json:"avatar"`
	Title      string   `json:"title"`
	Level      int      `json:"level"`
	TotalPower float64  `json:"total_power"`
	JoinDate   int64    `json:"join_date"`
	LastActive int64    `json:"last_active"`
	Country    string   `json:"country"`
	Badges     []string `json:"badges"`
	Friends    []string `json:"friends"`
	Reputation int      `json:"reputation"`
	VIPLevel   int      `json:"vip_level"`
}

// Guild is locally-simulated collaborator data.
type Guild struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Level       int           `json:"level"`
	Members     []GuildMember `json:"members"`
	MaxMembers  int           `json:"max_members"`
	TotalPower  float64       `json:"total_power"`
	Treasury    float64       `json:"treasury"`
	CreatedAt   int64         `json:"created_at"`
	IsPublic    bool          `json:"is_public"`
}

// GuildMember is one simulated roster entry.
type GuildMember struct {
	PlayerID     string  `json:"player_id"`
	Username     string  `json:"username"`
	Role         string  `json:"role"`
	Contribution float64 `json:"contribution"`
	JoinDate     int64   `json:"join_date"`
	LastActive   int64   `json:"last_active"`
}

// LeaderboardEntry is one simulated ranking row.
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Username string  `json:"username"`
	Avatar   string  `json:"avatar"`
	Score    float64 `json:"score"`
	Change   int     `json:"change"`
	Country  string  `json:"country"`
	Guild    string  `json:"guild,omitempty"`
}

// SocialFeatures holds gifting counters and simulated friend traffic.
type SocialFeatures struct {
	FriendRequests []FriendRequest `json:"friend_requests"`
	GiftsSent      int             `json:"gifts_sent"`
	GiftsReceived  int             `json:"gifts_received"`
	Referrals      []string        `json:"referrals"`
	SocialPoints   int             `json:"social_points"`
}

// FriendRequest is one simulated pending request.
type FriendRequest struct {
	ID           string `json:"id"`
	FromPlayerID string `json:"from_player_id"`
	FromUsername string `json:"from_username"`
	Timestamp    int64  `json:"timestamp"`
	Status       string `json:"status"`
}

// BattlePass is the seasonal leveling track. Rewards are generated
// once at initialization (100 free + 100 premium tiers).
type BattlePass struct {
	Season           int                `json:"season"`
	Level            int                `json:"level"`
	Experience       int64              `json:"experience"`
	ExperienceToNext int64              `json:"experience_to_next"`
	IsPremium        bool               `json:"is_premium"`
	Rewards          []BattlePassReward `json:"rewards"`
	ClaimedRewards   []string           `json:"claimed_rewards"`
}

// BattlePassReward is one claimable tier. Claimed only moves
// false to true.
type BattlePassReward struct {
	ID      string  `json:"id"`
	Level   int     `json:"level"`
	Type    string  `json:"type"` // "free" or "premium"
	Kind    string  `json:"kind"` // coins, gems, cosmetic, pet
	Amount  float64 `json:"amount,omitempty"`
	ItemID  string  `json:"item_id,omitempty"`
	Claimed bool    `json:"claimed"`
}

// Tournament is a locally-simulated contest entry.
type Tournament struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	Type            string                  `json:"type"`
	StartTime       int64                   `json:"start_time"`
	EndTime         int64                   `json:"end_time"`
	Participants    []TournamentParticipant `json:"participants"`
	Rewards         []TournamentReward      `json:"rewards"`
	EntryFee        float64                 `json:"entry_fee"`
	MaxParticipants int                     `json:"max_participants"`
	Status          string                  `json:"status"`
}

type TournamentParticipant struct {
	PlayerID string  `json:"player_id"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
	Rank     int     `json:"rank"`
}

type TournamentReward struct {
	Rank  int      `json:"rank"`
	Coins float64  `json:"coins"`
	Gems  float64  `json:"gems"`
	Items []string `json:"items"`
}

// Pet is a summoned companion. At most one pet may be active at any
// time; the activation handler enforces this.
type Pet struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Level      int          `json:"level"`
	Experience float64      `json:"experience"`
	Rarity     Rarity       `json:"rarity"`
	Abilities  []PetAbility `json:"abilities"`
	IsActive   bool         `json:"is_active"`
	Happiness  int          `json:"happiness"`
	LastFed    int64        `json:"last_fed"`
}

// PetAbility is a cooldown-gated action owned by a pet.
type PetAbility struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CooldownMs  int64  `json:"cooldown_ms"`
	LastUsed    int64  `json:"last_used"`
}

// Artifact is forged equipment. Level only moves upward; equipping
// carries no exclusivity constraint at this layer.
type Artifact struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Rarity      Rarity         `json:"rarity"`
	Level       int            `json:"level"`
	Stats       []ArtifactStat `json:"stats"`
	IsEquipped  bool           `json:"is_equipped"`
}

type ArtifactStat struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Percentage bool    `json:"percentage"`
}

// WorldEvent is a time-boxed shared objective with threshold-gated
// rewards, simulated locally.
type WorldEvent struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Type           string             `json:"type"`
	StartTime      int64              `json:"start_time"`
	EndTime        int64              `json:"end_time"`
	GlobalProgress float64            `json:"global_progress"`
	GlobalTarget   float64            `json:"global_target"`
	PlayerProgress float64            `json:"player_progress"`
	Rewards        []WorldEventReward `json:"rewards"`
	IsActive       bool               `json:"is_active"`
}

// WorldEventReward unlocks when global progress reaches Threshold;
// each is claimable at most once.
type WorldEventReward struct {
	Threshold float64  `json:"threshold"`
	Coins     float64  `json:"coins"`
	Gems      float64  `json:"gems"`
	Items     []string `json:"items"`
	Claimed   bool     `json:"claimed"`
}

// Notification is an informational record surfaced to the player.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	Read      bool   `json:"read"`
}

// ClickOutcome reports what a single click produced.
type ClickOutcome struct {
	CoinsGained      float64 `json:"coins_gained"`
	GemsGained       float64 `json:"gems_gained"`
	ExperienceGained float64 `json:"experience_gained"`
	Critical         bool    `json:"critical"`
	Lucky            bool    `json:"lucky"`
	Mega             bool    `json:"mega"`
	LeveledUp        bool    `json:"leveled_up"`
	Level            int     `json:"level"`
	Streak           int     `json:"streak"`
}

// Clone returns a deep copy of the state so callers outside the
// mutation channel never observe later writes.
func (s *GameState) Clone() *GameState {
	cp := *s

	cp.Achievements = append([]Achievement(nil), s.Achievements...)
	cp.Challenges = append([]Challenge(nil), s.Challenges...)
	cp.Leaderboard = append([]LeaderboardEntry(nil), s.Leaderboard...)
	cp.Notifications = append([]Notification(nil), s.Notifications...)

	cp.Player.Badges = append([]string(nil), s.Player.Badges...)
	cp.Player.Friends = append([]string(nil), s.Player.Friends...)

	if s.Guild != nil {
		g := *s.Guild
		g.Members = append([]GuildMember(nil), s.Guild.Members...)
		cp.Guild = &g
	}

	cp.SocialFeatures.FriendRequests = append([]FriendRequest(nil), s.SocialFeatures.FriendRequests...)
	cp.SocialFeatures.Referrals = append([]string(nil), s.SocialFeatures.Referrals...)

	cp.BattlePass.Rewards = append([]BattlePassReward(nil), s.BattlePass.Rewards...)
	cp.BattlePass.ClaimedRewards = append([]string(nil), s.BattlePass.ClaimedRewards...)

	cp.Tournaments = make([]Tournament, len(s.Tournaments))
	for i, t := range s.Tournaments {
		t.Participants = append([]TournamentParticipant(nil), t.Participants...)
		t.Rewards = append([]TournamentReward(nil), t.Rewards...)
		cp.Tournaments[i] = t
	}

	cp.Pets = make([]Pet, len(s.Pets))
	for i, p := range s.Pets {
		p.Abilities = append([]PetAbility(nil), p.Abilities...)
		cp.Pets[i] = p
	}

	cp.Artifacts = make([]Artifact, len(s.Artifacts))
	for i, a := range s.Artifacts {
		a.Stats = append([]ArtifactStat(nil), a.Stats...)
		cp.Artifacts[i] = a
	}

	cp.WorldEvents = make([]WorldEvent, len(s.WorldEvents))
	for i, e := range s.WorldEvents {
		e.Rewards = append([]WorldEventReward(nil), e.Rewards...)
		cp.WorldEvents[i] = e
	}

	return &cp
}
