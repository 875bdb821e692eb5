package engine

import "testing"

func TestEntitlementLevelThreshold(t *testing.T) {
	none := map[string]bool{}

	ent, err := EvaluateEntitlement(SettingHardcoreMode, 14, none)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ent.Locked {
		t.Fatalf("level 14: expected locked")
	}
	if ent.Reason == "" {
		t.Fatalf("locked entitlement has no reason")
	}

	ent, err = EvaluateEntitlement(SettingHardcoreMode, 15, none)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ent.Locked {
		t.Fatalf("level 15: expected unlocked, reason=%q", ent.Reason)
	}
}

func TestEntitlementAchievementPath(t *testing.T) {
	// The achievement alone satisfies the gate, even far below the level.
	ent, err := EvaluateEntitlement(SettingHardcoreMode, 1, map[string]bool{"transformation": true})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ent.Locked {
		t.Fatalf("achievement path: expected unlocked, reason=%q", ent.Reason)
	}
}

func TestEntitlementUnknownKey(t *testing.T) {
	_, err := EvaluateEntitlement("turbo-mode", 99, nil)
	if !IsCode(err, CodeNotFound) {
		t.Fatalf("unknown key: got %v, want NOT_FOUND", err)
	}
}

func TestEntitlementsSorted(t *testing.T) {
	ents := Entitlements(1, nil)
	if len(ents) != len(settingRules) {
		t.Fatalf("got %d entitlements, want %d", len(ents), len(settingRules))
	}
	for i := 1; i < len(ents); i++ {
		if ents[i-1].Key >= ents[i].Key {
			t.Fatalf("entitlements not sorted: %q before %q", ents[i-1].Key, ents[i].Key)
		}
	}
}
