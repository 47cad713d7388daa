package catalog

// Builtin returns the registry of standard grinding-circuit equipment.
// Site-specific catalogs extend this set via LoadYAML.
func Builtin() *Registry {
	r := NewRegistry()
	for _, et := range builtinTypes() {
		// Builtin definitions are validated by the catalog tests; a failed
		// registration here is a programming error.
		if err := r.Register(et); err != nil {
			panic(err)
		}
	}
	return r
}

func fptr(v float64) *float64 { return &v }

func builtinTypes() []EquipmentType {
	return []EquipmentType{
		{
			Type:     "ore_feed",
			Label:    "Ore Feed",
			Category: CategoryFeed,
			Ports: []Port{
				{ID: "out", Direction: DirectionOutput, Phase: PhaseSolid, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "feed_rate_tph", Unit: "t/h", ValueType: TypeFloat, Min: fptr(0), Max: fptr(10000), Default: 250.0},
				{Name: "moisture_pct", Unit: "%", ValueType: TypeFloat, Min: fptr(0), Max: fptr(30), Default: 3.0},
				{Name: "work_index_kwh_per_t", Unit: "kWh/t", ValueType: TypeFloat, Min: fptr(4), Max: fptr(30), Default: 14.0},
			},
		},
		{
			Type:     "water_feed",
			Label:    "Process Water",
			Category: CategoryFeed,
			Ports: []Port{
				{ID: "out", Direction: DirectionOutput, Phase: PhaseLiquid, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "flow_m3ph", Unit: "m3/h", ValueType: TypeFloat, Min: fptr(0), Max: fptr(5000), Default: 100.0},
			},
		},
		{
			Type:     "jaw_crusher",
			Label:    "Jaw Crusher",
			Category: CategorySizeReduction,
			Ports: []Port{
				{ID: "feed", Direction: DirectionInput, Phase: PhaseSolid, Required: true},
				{ID: "product", Direction: DirectionOutput, Phase: PhaseSolid, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "css_mm", Unit: "mm", ValueType: TypeFloat, Min: fptr(50), Max: fptr(300), Default: 120.0},
				{Name: "drive_power_kw", Unit: "kW", ValueType: TypeFloat, Min: fptr(10), Max: fptr(1000), Default: 200.0},
			},
		},
		{
			Type:     "cone_crusher",
			Label:    "Cone Crusher",
			Category: CategorySizeReduction,
			Ports: []Port{
				{ID: "feed", Direction: DirectionInput, Phase: PhaseSolid, Required: true},
				{ID: "product", Direction: DirectionOutput, Phase: PhaseSolid, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "css_mm", Unit: "mm", ValueType: TypeFloat, Min: fptr(5), Max: fptr(60), Default: 15.0},
				{Name: "eccentric_speed_rpm", Unit: "rpm", ValueType: TypeFloat, Min: fptr(200), Max: fptr(500), Default: 330.0},
				{Name: "drive_power_kw", Unit: "kW", ValueType: TypeFloat, Min: fptr(50), Max: fptr(1500), Default: 400.0},
			},
		},
		{
			Type:     "sag_mill",
			Label:    "SAG Mill",
			Category: CategorySizeReduction,
			Ports: []Port{
				{ID: "feed", Direction: DirectionInput, Phase: PhaseSlurry, Required: true},
				{ID: "discharge", Direction: DirectionOutput, Phase: PhaseSlurry, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "diameter_m", Unit: "m", ValueType: TypeFloat, Min: fptr(3), Max: fptr(13), Default: 9.6},
				{Name: "length_m", Unit: "m", ValueType: TypeFloat, Min: fptr(2), Max: fptr(9), Default: 4.8},
				{Name: "ball_charge_pct", Unit: "%", ValueType: TypeFloat, Min: fptr(0), Max: fptr(20), Default: 12.0},
				{Name: "speed_pct_critical", Unit: "%", ValueType: TypeFloat, Min: fptr(60), Max: fptr(85), Default: 75.0},
				{Name: "grate_aperture_mm", Unit: "mm", ValueType: TypeFloat, Min: fptr(10), Max: fptr(90), Default: 60.0},
			},
		},
		{
			Type:     "ball_mill",
			Label:    "Ball Mill",
			Category: CategorySizeReduction,
			Ports: []Port{
				{ID: "feed", Direction: DirectionInput, Phase: PhaseSlurry, Required: true},
				{ID: "discharge", Direction: DirectionOutput, Phase: PhaseSlurry, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "diameter_m", Unit: "m", ValueType: TypeFloat, Min: fptr(1.5), Max: fptr(8), Default: 5.5},
				{Name: "length_m", Unit: "m", ValueType: TypeFloat, Min: fptr(2), Max: fptr(12), Default: 8.5},
				{Name: "ball_charge_pct", Unit: "%", ValueType: TypeFloat, Min: fptr(20), Max: fptr(45), Default: 32.0},
				{Name: "speed_pct_critical", Unit: "%", ValueType: TypeFloat, Min: fptr(60), Max: fptr(80), Default: 72.0},
				{Name: "discharge_type", ValueType: TypeEnum, EnumValues: []string{"overflow", "grate"}, Default: "overflow"},
			},
		},
		{
			Type:     "rod_mill",
			Label:    "Rod Mill",
			Category: CategorySizeReduction,
			Ports: []Port{
				{ID: "feed", Direction: DirectionInput, Phase: PhaseSlurry, Required: true},
				{ID: "discharge", Direction: DirectionOutput, Phase: PhaseSlurry, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "diameter_m", Unit: "m", ValueType: TypeFloat, Min: fptr(1.5), Max: fptr(4.5), Default: 3.2},
				{Name: "length_m", Unit: "m", ValueType: TypeFloat, Min: fptr(3), Max: fptr(7), Default: 4.8},
				{Name: "rod_charge_pct", Unit: "%", ValueType: TypeFloat, Min: fptr(25), Max: fptr(45), Default: 38.0},
			},
		},
		{
			Type:     "hydrocyclone",
			Label:    "Hydrocyclone Cluster",
			Category: CategoryClassification,
			Ports: []Port{
				{ID: "feed", Direction: DirectionInput, Phase: PhaseSlurry, Required: true},
				{ID: "overflow", Direction: DirectionOutput, Phase: PhaseSlurry, Required: true},
				{ID: "underflow", Direction: DirectionOutput, Phase: PhaseSlurry, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "cut_size_um", Unit: "um", ValueType: TypeFloat, Min: fptr(20), Max: fptr(500), Default: 150.0},
				{Name: "vortex_finder_mm", Unit: "mm", ValueType: TypeFloat, Min: fptr(50), Max: fptr(400), Default: 160.0},
				{Name: "operating_pressure_kpa", Unit: "kPa", ValueType: TypeFloat, Min: fptr(30), Max: fptr(250), Default: 90.0},
				{Name: "active_cyclones", ValueType: TypeInt, Min: fptr(1), Max: fptr(20), Default: 8},
			},
		},
		{
			Type:     "vibrating_screen",
			Label:    "Vibrating Screen",
			Category: CategoryClassification,
			Ports: []Port{
				{ID: "feed", Direction: DirectionInput, Phase: PhaseSolid, Required: true},
				{ID: "oversize", Direction: DirectionOutput, Phase: PhaseSolid, Required: true},
				{ID: "undersize", Direction: DirectionOutput, Phase: PhaseSolid, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "aperture_mm", Unit: "mm", ValueType: TypeFloat, Min: fptr(0.5), Max: fptr(150), Default: 12.0},
				{Name: "deck_count", ValueType: TypeInt, Min: fptr(1), Max: fptr(3), Default: 1},
				{Name: "incline_deg", Unit: "deg", ValueType: TypeFloat, Min: fptr(0), Max: fptr(35), Default: 18.0},
			},
		},
		{
			Type:     "sump_pump",
			Label:    "Sump & Pump",
			Category: CategoryAuxiliary,
			Ports: []Port{
				{ID: "solids", Direction: DirectionInput, Phase: PhaseSlurry, Required: true},
				{ID: "water", Direction: DirectionInput, Phase: PhaseLiquid, Required: false},
				{ID: "discharge", Direction: DirectionOutput, Phase: PhaseSlurry, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "sump_volume_m3", Unit: "m3", ValueType: TypeFloat, Min: fptr(1), Max: fptr(200), Default: 40.0},
				{Name: "pump_speed_rpm", Unit: "rpm", ValueType: TypeFloat, Min: fptr(100), Max: fptr(1500), Default: 600.0},
				{Name: "variable_speed", ValueType: TypeBool, Default: true},
			},
		},
		{
			Type:     "conveyor",
			Label:    "Belt Conveyor",
			Category: CategoryAuxiliary,
			Ports: []Port{
				{ID: "in", Direction: DirectionInput, Phase: PhaseSolid, Required: true},
				{ID: "out", Direction: DirectionOutput, Phase: PhaseSolid, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "belt_speed_mps", Unit: "m/s", ValueType: TypeFloat, Min: fptr(0.5), Max: fptr(6), Default: 2.5},
				{Name: "length_m", Unit: "m", ValueType: TypeFloat, Min: fptr(5), Max: fptr(2000), Default: 120.0},
			},
		},
		{
			Type:     "final_product",
			Label:    "Final Product",
			Category: CategoryProduct,
			Ports: []Port{
				{ID: "in", Direction: DirectionInput, Phase: PhaseSlurry, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "target_p80_um", Unit: "um", ValueType: TypeFloat, Min: fptr(20), Max: fptr(500), Default: 106.0},
			},
		},
		{
			Type:     "stockpile",
			Label:    "Stockpile",
			Category: CategoryProduct,
			Ports: []Port{
				{ID: "in", Direction: DirectionInput, Phase: PhaseSolid, Required: true},
			},
			Parameters: []ParameterSpec{
				{Name: "capacity_t", Unit: "t", ValueType: TypeFloat, Min: fptr(100), Max: fptr(500000), Default: 20000.0},
			},
		},
	}
}
