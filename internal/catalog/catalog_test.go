package catalog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuiltinCatalogValid(t *testing.T) {
	c := Builtin()
	assert.NotEmpty(t, c.Achievements())
	assert.NotEmpty(t, c.Items())

	// Every item gate points at a real achievement.
	for _, it := range c.Items() {
		if it.RequiredAchievement != "" {
			_, ok := c.AchievementByID(it.RequiredAchievement)
			assert.True(t, ok, "item %s references %s", it.ID, it.RequiredAchievement)
		}
	}
}

func TestCatalogOrderAndLookup(t *testing.T) {
	c := Builtin()

	a, ok := c.AchievementByID("xp-master")
	require.True(t, ok)
	assert.Equal(t, TriggerLevel, a.Trigger)
	assert.Equal(t, 10, a.Level)

	_, ok = c.AchievementByID("nope")
	assert.False(t, ok)

	it, ok := c.ItemByID("frame-bronze")
	require.True(t, ok)
	assert.Equal(t, ItemFrame, it.Category)

	// Definition order is preserved.
	require.GreaterOrEqual(t, len(c.Achievements()), 2)
	assert.Equal(t, "first-habit", c.Achievements()[0].ID)
}

func TestValidateRejections(t *testing.T) {
	valid := func() []*Achievement {
		return []*Achievement{{
			ID: "a", Title: "A", Rarity: RarityCommon, Category: CategorySide,
			Trigger: TriggerHabitCreated,
		}}
	}

	cases := []struct {
		name         string
		achievements []*Achievement
		items        []*ShopItem
		wantErr      string
	}{
		{
			name:         "duplicate achievement id",
			achievements: append(valid(), valid()...),
			wantErr:      "duplicate id",
		},
		{
			name: "missing task kind",
			achievements: []*Achievement{{
				ID: "a", Title: "A", Rarity: RarityCommon, Category: CategorySide,
				Trigger: TriggerFirstCompletion,
			}},
			wantErr: "requires task_kind",
		},
		{
			name: "level out of range",
			achievements: []*Achievement{{
				ID: "a", Title: "A", Rarity: RarityCommon, Category: CategorySide,
				Trigger: TriggerLevel, Level: 101,
			}},
			wantErr: "out of range",
		},
		{
			name: "task count needs progress",
			achievements: []*Achievement{{
				ID: "a", Title: "A", Rarity: RarityCommon, Category: CategorySide,
				Trigger: TriggerTaskCount,
			}},
			wantErr: "requires max_progress",
		},
		{
			name:         "unknown required achievement",
			achievements: valid(),
			items: []*ShopItem{{
				ID: "i", Name: "I", Category: ItemFrame, Rarity: RarityCommon,
				RequiredAchievement: "ghost",
			}},
			wantErr: "unknown required achievement",
		},
		{
			name:         "bad item category",
			achievements: valid(),
			items: []*ShopItem{{
				ID: "i", Name: "I", Category: "hat", Rarity: RarityCommon,
			}},
			wantErr: "invalid category",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.achievements, c.items)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.wantErr)
		})
	}
}

func TestLoaderLoadsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"achievements": [
			{"id": "custom", "title": "Custom", "trigger": "habit-created"}
		],
		"items": [
			{"id": "hat-red", "name": "Red Hat", "category": "avatar", "price": 10}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := NewLoader(path, discardLogger()).Load()
	require.NoError(t, err)

	a, ok := c.AchievementByID("custom")
	require.True(t, ok)
	// Omitted fields get the builtin defaults.
	assert.Equal(t, RarityCommon, a.Rarity)
	assert.Equal(t, CategorySide, a.Category)

	it, ok := c.ItemByID("hat-red")
	require.True(t, ok)
	assert.Equal(t, RarityCommon, it.Rarity)
}

func TestLoaderFailFast(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(dir, "nope.json"), discardLogger()).Load()
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := NewLoader(path, discardLogger()).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse catalog JSON")
	})

	t.Run("invalid definitions", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"achievements":[{"id":"","title":"X","trigger":"level"}]}`), 0o644))
		_, err := NewLoader(path, discardLogger()).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validate catalog")
	})
}

func TestLoadOrBuiltin(t *testing.T) {
	c, err := LoadOrBuiltin("", discardLogger())
	require.NoError(t, err)
	assert.Equal(t, len(Builtin().Achievements()), len(c.Achievements()))
}
