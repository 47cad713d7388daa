package kpi

import (
	"reflect"
	"testing"
)

func TestResolveCanonicalAndAlias(t *testing.T) {
	r := NewRegistry()

	canonical := r.Resolve("specific_energy_kwh_per_t")
	if canonical.Synthetic {
		t.Fatal("registered metric resolved as synthetic")
	}
	if canonical.DefaultGoal.Type != GoalLowerIsBetter {
		t.Errorf("unexpected default goal %s", canonical.DefaultGoal.Type)
	}

	// Aliases collapse onto the canonical metric.
	for _, alias := range []string{"specific_energy_kwhpt", "kwh_per_tonne"} {
		m := r.Resolve(alias)
		if m.Key != canonical.Key {
			t.Errorf("alias %s resolved to %s, want %s", alias, m.Key, canonical.Key)
		}
	}
}

func TestResolveUnknownKey(t *testing.T) {
	var seen []string
	r := NewRegistry(WithUnknownKeyHook(func(rawKey string) {
		seen = append(seen, rawKey)
	}))

	m := r.Resolve("liner_wear_index")
	if !m.Synthetic {
		t.Error("unknown key should resolve to a synthetic metric")
	}
	if m.Key != "liner_wear_index" || m.Label != "liner_wear_index" {
		t.Errorf("synthetic metric should carry the raw key, got %+v", m)
	}
	if m.DefaultGoal.IsSet() {
		t.Error("synthetic metric must not carry a scoring goal")
	}
	if !reflect.DeepEqual(seen, []string{"liner_wear_index"}) {
		t.Errorf("unknown key hook calls = %v", seen)
	}
}

func TestValueKeys(t *testing.T) {
	r := NewRegistry()
	m := r.Resolve("specific_energy_kwh_per_t")

	keys := r.ValueKeys(m)
	want := []string{"specific_energy_kwh_per_t", "specific_energy_kwhpt", "kwh_per_tonne"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("ValueKeys = %v, want %v", keys, want)
	}
}

func TestMergeObservedKeys(t *testing.T) {
	r := NewRegistry()
	builtin := r.Metrics()

	merged := r.MergeObservedKeys([]string{
		"liner_wear_index",        // new
		"specific_energy_kwhpt",   // alias of a builtin, must not duplicate
		"throughput_tph",          // builtin, must not duplicate
		"media_consumption_kg_pt", // new
		"liner_wear_index",        // repeated observation
	})

	if len(merged) != len(builtin)+2 {
		t.Fatalf("expected %d metrics, got %d", len(builtin)+2, len(merged))
	}
	// Declaration order first, then first-observed order.
	for i, m := range builtin {
		if merged[i].Key != m.Key {
			t.Fatalf("builtin order broken at %d: %s", i, merged[i].Key)
		}
	}
	if merged[len(builtin)].Key != "liner_wear_index" {
		t.Errorf("first observed key out of order: %s", merged[len(builtin)].Key)
	}
	if merged[len(builtin)+1].Key != "media_consumption_kg_pt" {
		t.Errorf("second observed key out of order: %s", merged[len(builtin)+1].Key)
	}
}

func TestBuiltinMetricsAreWellFormed(t *testing.T) {
	r := NewRegistry()

	seen := make(map[string]bool)
	for _, m := range r.Metrics() {
		if m.Key == "" || m.Label == "" {
			t.Errorf("metric %+v missing key or label", m)
		}
		if seen[m.Key] {
			t.Errorf("duplicate metric key %s", m.Key)
		}
		seen[m.Key] = true
		if m.Synthetic {
			t.Errorf("builtin metric %s marked synthetic", m.Key)
		}
		if err := ValidateRangeGoal(m.DefaultGoal); err != nil {
			t.Errorf("metric %s has malformed default goal: %v", m.Key, err)
		}
		for _, alias := range m.AliasKeys {
			if seen[alias] {
				t.Errorf("alias %s collides with another key", alias)
			}
			seen[alias] = true
		}
	}
}
