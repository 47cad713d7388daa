package catalog

import (
	"testing"
)

func TestBuiltinRegistryIsValid(t *testing.T) {
	r := Builtin()
	if r.Len() == 0 {
		t.Fatal("builtin registry is empty")
	}

	for _, et := range r.All() {
		if et.Label == "" {
			t.Errorf("type %s has no label", et.Type)
		}
		for _, ps := range et.Parameters {
			if ps.Default == nil {
				t.Errorf("type %s parameter %s has no default", et.Type, ps.Name)
				continue
			}
			if err := ps.Check(ps.Default); err != nil {
				t.Errorf("type %s parameter %s default out of domain: %v", et.Type, ps.Name, err)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	r := Builtin()

	et, ok := r.Lookup("ball_mill")
	if !ok {
		t.Fatal("ball_mill not found")
	}
	if et.Category != CategorySizeReduction {
		t.Errorf("expected size_reduction, got %s", et.Category)
	}

	if _, ok := r.Lookup("flux_capacitor"); ok {
		t.Error("expected lookup of unknown type to fail")
	}
}

func TestByCategory(t *testing.T) {
	r := Builtin()

	feeds := r.ByCategory(CategoryFeed)
	if len(feeds) != 2 {
		t.Fatalf("expected 2 feed types, got %d", len(feeds))
	}
	// Sorted by identifier
	if feeds[0].Type != "ore_feed" || feeds[1].Type != "water_feed" {
		t.Errorf("unexpected feed ordering: %s, %s", feeds[0].Type, feeds[1].Type)
	}

	for _, et := range r.ByCategory(CategoryProduct) {
		if len(et.OutputPorts()) != 0 {
			t.Errorf("product type %s has output ports", et.Type)
		}
	}
}

func TestRegisterRejectsInvalidTypes(t *testing.T) {
	tests := []struct {
		name string
		et   EquipmentType
	}{
		{"empty identifier", EquipmentType{Category: CategoryFeed}},
		{"unknown category", EquipmentType{Type: "x", Category: "magic"}},
		{
			"duplicate port",
			EquipmentType{Type: "x", Category: CategoryAuxiliary, Ports: []Port{
				{ID: "a", Direction: DirectionInput, Phase: PhaseSolid},
				{ID: "a", Direction: DirectionOutput, Phase: PhaseSolid},
			}},
		},
		{
			"feed with input port",
			EquipmentType{Type: "x", Category: CategoryFeed, Ports: []Port{
				{ID: "in", Direction: DirectionInput, Phase: PhaseSolid},
			}},
		},
		{
			"product with output port",
			EquipmentType{Type: "x", Category: CategoryProduct, Ports: []Port{
				{ID: "out", Direction: DirectionOutput, Phase: PhaseSolid},
			}},
		},
		{
			"inverted parameter bounds",
			EquipmentType{Type: "x", Category: CategoryAuxiliary, Parameters: []ParameterSpec{
				{Name: "p", ValueType: TypeFloat, Min: fptr(10), Max: fptr(1), Default: 5.0},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.Register(tt.et); err == nil {
				t.Errorf("expected registration to fail")
			}
		})
	}
}

func TestParameterSpecCheck(t *testing.T) {
	tests := []struct {
		name    string
		spec    ParameterSpec
		value   any
		wantErr bool
	}{
		{"float in range", ParameterSpec{Name: "p", ValueType: TypeFloat, Min: fptr(0), Max: fptr(10)}, 5.0, false},
		{"float below min", ParameterSpec{Name: "p", ValueType: TypeFloat, Min: fptr(0)}, -1.0, true},
		{"float above max", ParameterSpec{Name: "p", ValueType: TypeFloat, Max: fptr(10)}, 11.0, true},
		{"float accepts int", ParameterSpec{Name: "p", ValueType: TypeFloat}, 3, false},
		{"float rejects string", ParameterSpec{Name: "p", ValueType: TypeFloat}, "3", true},
		{"int accepts whole float", ParameterSpec{Name: "p", ValueType: TypeInt}, 3.0, false},
		{"int rejects fractional", ParameterSpec{Name: "p", ValueType: TypeInt}, 3.5, true},
		{"bool", ParameterSpec{Name: "p", ValueType: TypeBool}, true, false},
		{"bool rejects int", ParameterSpec{Name: "p", ValueType: TypeBool}, 1, true},
		{"enum allowed", ParameterSpec{Name: "p", ValueType: TypeEnum, EnumValues: []string{"a", "b"}}, "a", false},
		{"enum rejected", ParameterSpec{Name: "p", ValueType: TypeEnum, EnumValues: []string{"a", "b"}}, "c", true},
		{"string", ParameterSpec{Name: "p", ValueType: TypeString}, "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Check(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Check(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestPhasesCompatible(t *testing.T) {
	tests := []struct {
		out, in Phase
		want    bool
	}{
		{PhaseSolid, PhaseSolid, true},
		{PhaseSlurry, PhaseSlurry, true},
		{PhaseSolid, PhaseSlurry, true},
		{PhaseLiquid, PhaseSlurry, true},
		{PhaseSlurry, PhaseGas, false},
		{PhaseSlurry, PhaseSolid, false},
		{PhaseGas, PhaseSlurry, false},
		{PhaseLiquid, PhaseSolid, false},
	}
	for _, tt := range tests {
		if got := PhasesCompatible(tt.out, tt.in); got != tt.want {
			t.Errorf("PhasesCompatible(%s, %s) = %v, want %v", tt.out, tt.in, got, tt.want)
		}
	}
}
