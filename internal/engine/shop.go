package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"lifequest/internal/catalog"
	"lifequest/internal/storage"
)

// PurchaseResult describes a shop transaction.
type PurchaseResult struct {
	Item           *catalog.ShopItem
	AlreadyOwned   bool
	CoinsRemaining int
	Unlocked       []*catalog.Achievement
	Notifications  []Notification
}

// BuyShopItem purchases a catalog item. Affordability, XP requirement and
// achievement requirement are re-validated at transaction time; on failure
// every unmet requirement is reported and nothing is mutated. Buying an
// already-owned item is a no-op.
func (s *Service) BuyShopItem(ctx context.Context, itemID string) (*PurchaseResult, error) {
	item, ok := s.catalog.ItemByID(itemID)
	if !ok {
		return nil, ErrNotFound("shop item", itemID)
	}

	var res *PurchaseResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		shop := s.shop.InTx(tx)
		owned, err := shop.IsOwned(ctx, itemID)
		if err != nil {
			return err
		}
		if owned {
			res = &PurchaseResult{Item: item, AlreadyOwned: true}
			return nil
		}

		state := s.state.InTx(tx)
		gs, err := s.getState(ctx, state)
		if err != nil {
			return err
		}
		achRepo := s.achState.InTx(tx)
		unlockedSet, err := s.unlockedSet(ctx, achRepo)
		if err != nil {
			return err
		}

		var missing []string
		if gs.Coins < item.Price {
			missing = append(missing, fmt.Sprintf("%d coins (have %d)", item.Price, gs.Coins))
		}
		if item.XPRequirement > 0 && gs.TotalXP < item.XPRequirement {
			missing = append(missing, fmt.Sprintf("%d total XP (have %d)", item.XPRequirement, gs.TotalXP))
		}
		if item.RequiredAchievement != "" && !unlockedSet[item.RequiredAchievement] {
			missing = append(missing, fmt.Sprintf("achievement %q", item.RequiredAchievement))
		}
		if len(missing) > 0 {
			return ErrRequirementsNotMet(fmt.Sprintf("purchase of %q", item.ID), missing)
		}

		now := time.Now().UTC()
		gs.Coins -= item.Price
		if err := shop.MarkOwned(ctx, itemID, now); err != nil {
			return err
		}

		unlocked, err := s.evaluateEvents(ctx, achRepo, gs,
			[]Event{{Kind: EventItemPurchased, ItemID: itemID}}, now)
		if err != nil {
			return err
		}
		if err := state.Update(ctx, gs); err != nil {
			return err
		}

		res = &PurchaseResult{
			Item:           item,
			CoinsRemaining: gs.Coins,
			Unlocked:       unlocked,
		}
		res.Notifications = append([]Notification{{
			Category: NotifyCoins, Severity: SeverityInfo,
			Title:  item.Name,
			Detail: fmt.Sprintf("-%d coins", item.Price),
		}}, unlockNotifications(unlocked)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ProfileInput is the full replacement profile. Cosmetic fields name shop
// item ids; empty means the default look.
type ProfileInput struct {
	DisplayName string
	Avatar      string
	Frame       string
	NameColor   string
	Background  string
}

// UpdateProfile replaces the profile. Every selected cosmetic must be an
// owned shop item of the right category; unowned selections are rejected
// with the full list of gaps and nothing is written.
func (s *Service) UpdateProfile(ctx context.Context, in ProfileInput) error {
	ownedItems, err := s.shop.Owned(ctx)
	if err != nil {
		return err
	}

	var missing []string
	check := func(field, itemID string, want catalog.ItemCategory) {
		if itemID == "" {
			return
		}
		item, ok := s.catalog.ItemByID(itemID)
		if !ok || item.Category != want {
			missing = append(missing, fmt.Sprintf("%s: unknown %s %q", field, want, itemID))
			return
		}
		if _, owned := ownedItems[itemID]; !owned {
			missing = append(missing, fmt.Sprintf("%s: %q is not owned", field, itemID))
		}
	}
	check("avatar", in.Avatar, catalog.ItemAvatar)
	check("frame", in.Frame, catalog.ItemFrame)
	check("name color", in.NameColor, catalog.ItemColor)
	check("background", in.Background, catalog.ItemBackground)
	if len(missing) > 0 {
		return ErrRequirementsNotMet("profile update", missing)
	}

	p, err := s.profile.GetOrCreate(ctx, s.userKey)
	if err != nil {
		return err
	}
	p.DisplayName = strings.TrimSpace(in.DisplayName)
	p.Avatar = in.Avatar
	p.Frame = in.Frame
	p.NameColor = in.NameColor
	p.Background = in.Background
	return s.profile.Replace(ctx, p)
}

// ToggleSetting flips a gated setting after checking its entitlement gate.
func (s *Service) ToggleSetting(ctx context.Context, key string, enabled bool) error {
	gs, err := s.getState(ctx, s.state)
	if err != nil {
		return err
	}
	unlocked, err := s.unlockedSet(ctx, s.achState)
	if err != nil {
		return err
	}

	ent, err := EvaluateEntitlement(key, gs.Level, unlocked)
	if err != nil {
		return err
	}
	if ent.Locked && enabled {
		return ErrRequirementsNotMet(fmt.Sprintf("setting %q", key), []string{ent.Reason})
	}
	return s.settings.Set(ctx, key, enabled)
}
