package catalog

// builtinAchievements is the default achievement catalog. Keep ids stable:
// entitlement rules, shop items and saved unlock state reference them.
func builtinAchievements() []*Achievement {
	return []*Achievement{
		{ID: "first-habit", Title: "Creature of Habit", Description: "Complete a habit for the first time", Icon: "🔁", Rarity: RarityCommon, Category: CategoryMain, CoinReward: 5, Trigger: TriggerFirstCompletion, TaskKind: "habit"},
		{ID: "first-daily", Title: "Day One", Description: "Complete a daily for the first time", Icon: "📅", Rarity: RarityCommon, Category: CategoryMain, CoinReward: 5, Trigger: TriggerFirstCompletion, TaskKind: "daily"},
		{ID: "first-todo", Title: "Checked Off", Description: "Complete a to-do for the first time", Icon: "✅", Rarity: RarityCommon, Category: CategoryMain, CoinReward: 5, Trigger: TriggerFirstCompletion, TaskKind: "todo"},

		{ID: "habit-former", Title: "Habit Former", Description: "Create your first habit", Icon: "🌱", Rarity: RarityCommon, Category: CategorySide, Trigger: TriggerHabitCreated},

		{ID: "getting-warm", Title: "Getting Warm", Description: "Reach level 5", Icon: "🌿", Rarity: RarityCommon, Category: CategoryMain, CoinReward: 10, Trigger: TriggerLevel, Level: 5},
		{ID: "xp-master", Title: "XP Master", Description: "Reach level 10", Icon: "⭐", Rarity: RarityUncommon, Category: CategoryMain, CoinReward: 25, Trigger: TriggerLevel, Level: 10},
		{ID: "transformation", Title: "Transformation", Description: "Reach level 15", Icon: "🦋", Rarity: RarityRare, Category: CategoryMain, CoinReward: 50, Trigger: TriggerLevel, Level: 15},
		{ID: "quarter-century", Title: "Quarter Century", Description: "Reach level 25", Icon: "🌟", Rarity: RarityEpic, Category: CategoryMain, CoinReward: 100, Trigger: TriggerLevel, Level: 25},
		{ID: "halfway-there", Title: "Halfway There", Description: "Reach level 50", Icon: "💫", Rarity: RarityEpic, Category: CategoryMain, CoinReward: 250, Trigger: TriggerLevel, Level: 50},
		{ID: "centurion", Title: "Centurion", Description: "Reach level 100", Icon: "🏆", Rarity: RarityLegendary, Category: CategorySpecial, CoinReward: 1000, Trigger: TriggerLevel, Level: 100},

		{ID: "productive", Title: "Productive", Description: "Complete 10 tasks", Icon: "📋", Rarity: RarityCommon, Category: CategorySide, CoinReward: 10, Trigger: TriggerTaskCount, MaxProgress: 10},
		{ID: "achiever", Title: "Achiever", Description: "Complete 50 tasks", Icon: "🏅", Rarity: RarityUncommon, Category: CategorySide, CoinReward: 30, Trigger: TriggerTaskCount, MaxProgress: 50},
		{ID: "powerhouse", Title: "Powerhouse", Description: "Complete 100 tasks", Icon: "💪", Rarity: RarityRare, Category: CategorySide, CoinReward: 75, Trigger: TriggerTaskCount, MaxProgress: 100},
		{ID: "no-pain-no-gain", Title: "No Pain No Gain", Description: "Complete 5 hard tasks", Icon: "🔥", Rarity: RarityUncommon, Category: CategorySide, CoinReward: 20, Trigger: TriggerTaskCount, Difficulty: "hard", MaxProgress: 5},

		{ID: "first-purchase", Title: "Window Shopper", Description: "Buy your first shop item", Icon: "🛒", Rarity: RarityCommon, Category: CategorySide, Trigger: TriggerPurchase},
		{ID: "collector", Title: "Collector", Description: "Own 5 shop items", Icon: "📦", Rarity: RarityRare, Category: CategorySide, CoinReward: 40, Trigger: TriggerPurchase, MaxProgress: 5},
	}
}

// builtinItems is the default shop catalog.
func builtinItems() []*ShopItem {
	return []*ShopItem{
		{ID: "frame-bronze", Name: "Bronze Frame", Category: ItemFrame, Price: 25, Rarity: RarityCommon},
		{ID: "frame-silver", Name: "Silver Frame", Category: ItemFrame, Price: 75, XPRequirement: 2500, Rarity: RarityUncommon},
		{ID: "frame-gold", Name: "Gold Frame", Category: ItemFrame, Price: 200, XPRequirement: 10000, Rarity: RarityRare},
		{ID: "frame-mythic", Name: "Mythic Frame", Category: ItemFrame, Price: 500, RequiredAchievement: "transformation", Rarity: RarityLegendary},

		{ID: "color-ember", Name: "Ember Name Color", Category: ItemColor, Price: 50, Rarity: RarityCommon},
		{ID: "color-ocean", Name: "Ocean Name Color", Category: ItemColor, Price: 50, Rarity: RarityCommon},
		{ID: "color-aurora", Name: "Aurora Name Color", Category: ItemColor, Price: 150, RequiredAchievement: "xp-master", Rarity: RarityEpic},

		{ID: "bg-forest", Name: "Forest Background", Category: ItemBackground, Price: 100, Rarity: RarityUncommon},
		{ID: "bg-nebula", Name: "Nebula Background", Category: ItemBackground, Price: 300, XPRequirement: 22500, Rarity: RarityEpic},

		{ID: "avatar-fox", Name: "Fox Avatar", Category: ItemAvatar, Price: 40, Rarity: RarityCommon},
		{ID: "avatar-owl", Name: "Owl Avatar", Category: ItemAvatar, Price: 40, Rarity: RarityCommon},
		{ID: "avatar-dragon", Name: "Dragon Avatar", Category: ItemAvatar, Price: 250, RequiredAchievement: "powerhouse", Rarity: RarityLegendary},
	}
}

// Builtin returns the default catalog. The definitions are static, so the
// validator only guards against editing mistakes.
func Builtin() *Catalog {
	c, err := New(builtinAchievements(), builtinItems())
	if err != nil {
		panic("builtin catalog invalid: " + err.Error())
	}
	return c
}
