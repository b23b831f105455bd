package game

import "github.com/user/pixel-clicker/internal/types"

// ProgressContext carries the cumulative totals and per-click flags a
// transition exposes to the evaluator.
type ProgressContext struct {
	TotalClicks       int64
	TotalCoins        float64
	TotalGems         float64
	CriticalHits      int64
	LuckyClicks       int64
	UpgradesPurchased int64
	PrestigeCount     int64
	EnergySpent       float64
	PlayTimeMs        int64
	ClickStreak       int
	IsCritical        bool
	IsLucky           bool
}

// achievementPredicate maps one context to a progress value and a
// completion verdict.
type achievementPredicate func(ctx ProgressContext) (progress float64, done bool)

func thresholdOn(value func(ProgressContext) float64, target float64) achievementPredicate {
	return func(ctx ProgressContext) (float64, bool) {
		v := value(ctx)
		return v, v >= target
	}
}

func clicks(ctx ProgressContext) float64    { return float64(ctx.TotalClicks) }
func coins(ctx ProgressContext) float64     { return ctx.TotalCoins }
func gems(ctx ProgressContext) float64      { return ctx.TotalGems }
func criticals(ctx ProgressContext) float64 { return float64(ctx.CriticalHits) }
func luckies(ctx ProgressContext) float64   { return float64(ctx.LuckyClicks) }
func upgrades(ctx ProgressContext) float64  { return float64(ctx.UpgradesPurchased) }
func prestiges(ctx ProgressContext) float64 { return float64(ctx.PrestigeCount) }
func energy(ctx ProgressContext) float64    { return ctx.EnergySpent }
func playTime(ctx ProgressContext) float64  { return float64(ctx.PlayTimeMs) }

// achievementPredicates is the closed id-keyed predicate table.
// Catalog entries without a row here pass through unchanged.
var achievementPredicates = map[string]achievementPredicate{
	"first-click":             thresholdOn(clicks, 1),
	"hundred-clicks":          thresholdOn(clicks, 100),
	"thousand-clicks":         thresholdOn(clicks, 1000),
	"ten-thousand-clicks":     thresholdOn(clicks, 10000),
	"hundred-thousand-clicks": thresholdOn(clicks, 100000),
	"million-clicks":          thresholdOn(clicks, 1000000),

	"hundred-coins":  thresholdOn(coins, 100),
	"thousand-coins": thresholdOn(coins, 1000),
	"million-coins":  thresholdOn(coins, 1000000),
	"billion-coins":  thresholdOn(coins, 1000000000),
	"trillion-coins": thresholdOn(coins, 1000000000000),

	"first-gem":     thresholdOn(gems, 1),
	"hundred-gems":  thresholdOn(gems, 100),
	"thousand-gems": thresholdOn(gems, 1000),

	"first-upgrade":    thresholdOn(upgrades, 1),
	"ten-upgrades":     thresholdOn(upgrades, 10),
	"hundred-upgrades": thresholdOn(upgrades, 100),

	"first-prestige": thresholdOn(prestiges, 1),
	"ten-prestiges":  thresholdOn(prestiges, 10),

	"critical-master":  thresholdOn(criticals, 100),
	"lucky-streak":     thresholdOn(luckies, 50),
	"energy-efficient": thresholdOn(energy, 10000),
	"time-traveler":    thresholdOn(playTime, 86400000),

	"speed-demon": func(ctx ProgressContext) (float64, bool) {
		return float64(ctx.ClickStreak), ctx.ClickStreak >= 100
	},
}

// EvaluateAchievements recomputes progress and completion for every
// non-completed achievement with a known predicate. Completed records
// are terminal and never re-evaluated; records without a predicate
// pass through unchanged.
func EvaluateAchievements(achievements []types.Achievement, ctx ProgressContext) []types.Achievement {
	out := make([]types.Achievement, len(achievements))
	for i, a := range achievements {
		if a.Completed {
			out[i] = a
			continue
		}

		predicate, ok := achievementPredicates[a.ID]
		if !ok {
			out[i] = a
			continue
		}

		progress, done := predicate(ctx)
		a.Progress = progress
		a.Completed = done
		out[i] = a
	}
	return out
}

// EvaluateChallenges applies the same id-keyed-threshold pattern to
// active challenges. Only the clicks and coins kinds have predicates;
// other kinds are dormant and pass through unchanged.
func EvaluateChallenges(challenges []types.Challenge, ctx ProgressContext) []types.Challenge {
	out := make([]types.Challenge, len(challenges))
	for i, c := range challenges {
		if c.Completed || !c.Active {
			out[i] = c
			continue
		}

		switch c.Type {
		case "clicks":
			c.Progress = float64(ctx.TotalClicks)
			c.Completed = c.Progress >= c.Target
		case "coins":
			c.Progress = ctx.TotalCoins
			c.Completed = c.Progress >= c.Target
		}
		out[i] = c
	}
	return out
}

// CountCompleted reports how many achievements are completed, used to
// keep the unlocked-counter statistic consistent after evaluation.
func CountCompleted(achievements []types.Achievement) int64 {
	var n int64
	for _, a := range achievements {
		if a.Completed {
			n++
		}
	}
	return n
}
