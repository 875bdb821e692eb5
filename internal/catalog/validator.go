package catalog

import "fmt"

// validate checks the business rules on catalog definitions. Catalogs load
// fail-fast at startup; an invalid definition prevents the app from running
// rather than surfacing as a broken unlock later.
func validate(achievements []*Achievement, items []*ShopItem) error {
	achIDs := make(map[string]bool, len(achievements))
	for i, a := range achievements {
		if a.ID == "" {
			return fmt.Errorf("achievement[%d]: id is required", i)
		}
		if achIDs[a.ID] {
			return fmt.Errorf("achievement %q: duplicate id", a.ID)
		}
		achIDs[a.ID] = true
		if a.Title == "" {
			return fmt.Errorf("achievement %q: title is required", a.ID)
		}
		if !a.Rarity.IsValid() {
			return fmt.Errorf("achievement %q: invalid rarity %q", a.ID, a.Rarity)
		}
		if !a.Category.IsValid() {
			return fmt.Errorf("achievement %q: invalid category %q", a.ID, a.Category)
		}
		if !a.Trigger.IsValid() {
			return fmt.Errorf("achievement %q: invalid trigger %q", a.ID, a.Trigger)
		}
		if a.CoinReward < 0 {
			return fmt.Errorf("achievement %q: negative coin reward", a.ID)
		}
		if a.MaxProgress < 0 {
			return fmt.Errorf("achievement %q: negative max progress", a.ID)
		}
		switch a.Trigger {
		case TriggerFirstCompletion:
			if a.TaskKind == "" {
				return fmt.Errorf("achievement %q: first-completion trigger requires task_kind", a.ID)
			}
		case TriggerLevel:
			if a.Level < 1 || a.Level > 100 {
				return fmt.Errorf("achievement %q: level threshold %d out of range", a.ID, a.Level)
			}
		case TriggerTaskCount, TriggerPurchase:
			if a.MaxProgress == 0 && a.Trigger == TriggerTaskCount {
				return fmt.Errorf("achievement %q: task-count trigger requires max_progress", a.ID)
			}
		}
	}

	itemIDs := make(map[string]bool, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("shop item[%d]: id is required", i)
		}
		if itemIDs[it.ID] {
			return fmt.Errorf("shop item %q: duplicate id", it.ID)
		}
		itemIDs[it.ID] = true
		if it.Name == "" {
			return fmt.Errorf("shop item %q: name is required", it.ID)
		}
		if !it.Category.IsValid() {
			return fmt.Errorf("shop item %q: invalid category %q", it.ID, it.Category)
		}
		if !it.Rarity.IsValid() {
			return fmt.Errorf("shop item %q: invalid rarity %q", it.ID, it.Rarity)
		}
		if it.Price < 0 {
			return fmt.Errorf("shop item %q: negative price", it.ID)
		}
		if it.XPRequirement < 0 {
			return fmt.Errorf("shop item %q: negative xp requirement", it.ID)
		}
		if it.RequiredAchievement != "" && !achIDs[it.RequiredAchievement] {
			return fmt.Errorf("shop item %q: unknown required achievement %q", it.ID, it.RequiredAchievement)
		}
	}
	return nil
}
