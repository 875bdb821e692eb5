// Package catalog holds the predefined achievement and shop-item catalogs.
// Catalogs are immutable after construction; runtime unlock/ownership state
// lives in storage, keyed by catalog id.
package catalog

import "fmt"

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

type AchievementCategory string

const (
	CategoryMain    AchievementCategory = "main"
	CategorySide    AchievementCategory = "side"
	CategorySpecial AchievementCategory = "special"
)

func (c AchievementCategory) IsValid() bool {
	switch c {
	case CategoryMain, CategorySide, CategorySpecial:
		return true
	default:
		return false
	}
}

// Trigger defines which semantic event family advances an achievement.
type Trigger string

const (
	// TriggerFirstCompletion unlocks on the first ever completion of the
	// task kind named in TaskKind.
	TriggerFirstCompletion Trigger = "first-completion"
	// TriggerLevel unlocks when a level crossing reaches Level.
	TriggerLevel Trigger = "level"
	// TriggerTaskCount counts task completions (optionally filtered by
	// Difficulty) against MaxProgress.
	TriggerTaskCount Trigger = "task-count"
	// TriggerPurchase counts successful shop purchases against MaxProgress,
	// or unlocks on the first purchase when MaxProgress is zero.
	TriggerPurchase Trigger = "purchase"
	// TriggerHabitCreated unlocks when a habit is created.
	TriggerHabitCreated Trigger = "habit-created"
)

func (t Trigger) IsValid() bool {
	switch t {
	case TriggerFirstCompletion, TriggerLevel, TriggerTaskCount, TriggerPurchase, TriggerHabitCreated:
		return true
	default:
		return false
	}
}

// Achievement is a predefined milestone. Only unlock state and progress are
// mutable at runtime, and they are stored elsewhere.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Rarity      Rarity              `json:"rarity"`
	Category    AchievementCategory `json:"category"`
	CoinReward  int                 `json:"coin_reward,omitempty"`

	Trigger    Trigger `json:"trigger"`
	TaskKind   string  `json:"task_kind,omitempty"`
	Difficulty string  `json:"difficulty,omitempty"`
	Level      int     `json:"level,omitempty"`
	// MaxProgress > 0 makes this a counter achievement that unlocks exactly
	// when its progress reaches the threshold.
	MaxProgress int `json:"max_progress,omitempty"`
}

type ItemCategory string

const (
	ItemFrame      ItemCategory = "frame"
	ItemColor      ItemCategory = "color"
	ItemBackground ItemCategory = "background"
	ItemAvatar     ItemCategory = "avatar"
)

func (c ItemCategory) IsValid() bool {
	switch c {
	case ItemFrame, ItemColor, ItemBackground, ItemAvatar:
		return true
	default:
		return false
	}
}

// ShopItem is a predefined cosmetic. Only the owned flag mutates at runtime,
// monotonically false to true, and it is stored elsewhere.
type ShopItem struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Category            ItemCategory `json:"category"`
	Price               int          `json:"price"`
	XPRequirement       int          `json:"xp_requirement,omitempty"`
	RequiredAchievement string       `json:"required_achievement,omitempty"`
	Rarity              Rarity       `json:"rarity"`
}

// Catalog provides ordered iteration and O(1) id lookups over the
// achievement and shop-item definitions. Immutable after construction.
type Catalog struct {
	achievements     []*Achievement
	achievementsByID map[string]*Achievement
	items            []*ShopItem
	itemsByID        map[string]*ShopItem
}

// New builds a validated catalog. Definition order is preserved; it decides
// unlock ordering when one event satisfies several achievements.
func New(achievements []*Achievement, items []*ShopItem) (*Catalog, error) {
	if err := validate(achievements, items); err != nil {
		return nil, err
	}
	c := &Catalog{
		achievements:     achievements,
		achievementsByID: make(map[string]*Achievement, len(achievements)),
		items:            items,
		itemsByID:        make(map[string]*ShopItem, len(items)),
	}
	for _, a := range achievements {
		c.achievementsByID[a.ID] = a
	}
	for _, it := range items {
		c.itemsByID[it.ID] = it
	}
	return c, nil
}

// Achievements returns the definitions in catalog order.
func (c *Catalog) Achievements() []*Achievement { return c.achievements }

func (c *Catalog) AchievementByID(id string) (*Achievement, bool) {
	a, ok := c.achievementsByID[id]
	return a, ok
}

// Items returns the shop items in catalog order.
func (c *Catalog) Items() []*ShopItem { return c.items }

func (c *Catalog) ItemByID(id string) (*ShopItem, bool) {
	it, ok := c.itemsByID[id]
	return it, ok
}

func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(%d achievements, %d items)", len(c.achievements), len(c.items))
}
