package engine

import (
	"fmt"
	"sort"
)

// EntitlementRule gates a setting behind a minimum level OR an achievement.
// Either condition satisfies the unlock.
type EntitlementRule struct {
	MinLevel      int
	AchievementID string
}

// Gated setting keys.
const (
	SettingAnimatedBar   = "animated-progress-bar"
	SettingHardcoreMode  = "hardcore-mode"
	SettingStreakFreeze  = "streak-freeze"
	SettingCompactLayout = "compact-layout"
)

// settingRules is the declarative gate table. Affordability of shop items is
// the purchase flow's concern, never evaluated here.
var settingRules = map[string]EntitlementRule{
	SettingAnimatedBar:   {MinLevel: 10, AchievementID: "xp-master"},
	SettingHardcoreMode:  {MinLevel: 15, AchievementID: "transformation"},
	SettingStreakFreeze:  {MinLevel: 5, AchievementID: "getting-warm"},
	SettingCompactLayout: {MinLevel: 2},
}

// Entitlement is the lock state of one gated key.
type Entitlement struct {
	Key    string
	Locked bool
	Reason string
}

// EvaluateEntitlement answers whether a gated setting is locked for the
// given level and unlocked-achievement set. Pure; safe to call on every
// render.
func EvaluateEntitlement(key string, level int, unlocked map[string]bool) (Entitlement, error) {
	rule, ok := settingRules[key]
	if !ok {
		return Entitlement{}, ErrNotFound("setting", key)
	}
	return evaluateRule(key, rule, level, unlocked), nil
}

// Entitlements evaluates every gated setting, sorted by key.
func Entitlements(level int, unlocked map[string]bool) []Entitlement {
	keys := make([]string, 0, len(settingRules))
	for k := range settingRules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Entitlement, 0, len(keys))
	for _, k := range keys {
		out = append(out, evaluateRule(k, settingRules[k], level, unlocked))
	}
	return out
}

func evaluateRule(key string, rule EntitlementRule, level int, unlocked map[string]bool) Entitlement {
	if rule.MinLevel > 0 && level >= rule.MinLevel {
		return Entitlement{Key: key}
	}
	if rule.AchievementID != "" && unlocked[rule.AchievementID] {
		return Entitlement{Key: key}
	}

	reason := fmt.Sprintf("requires level %d", rule.MinLevel)
	if rule.AchievementID != "" {
		reason = fmt.Sprintf("requires level %d or achievement %q", rule.MinLevel, rule.AchievementID)
	}
	return Entitlement{Key: key, Locked: true, Reason: reason}
}
