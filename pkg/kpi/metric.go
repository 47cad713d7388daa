package kpi

// Metric describes one KPI the dashboard knows how to label, format and
// score. AliasKeys are the other names the simulation service may emit the
// same value under.
type Metric struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Unit        string   `json:"unit,omitempty"`
	Precision   int      `json:"precision"`
	AliasKeys   []string `json:"aliasKeys,omitempty"`
	DefaultGoal Goal     `json:"defaultGoal"`

	// Synthetic marks metrics fabricated for raw keys the registry has
	// never seen; they render but carry no goal.
	Synthetic bool `json:"synthetic,omitempty"`
}

// builtinMetrics is the declaration-order metric table. Declaration order is
// the default presentation order for comparisons.
func builtinMetrics() []Metric {
	return []Metric{
		{
			Key:         "throughput_tph",
			Label:       "Throughput",
			Unit:        "t/h",
			Precision:   1,
			AliasKeys:   []string{"tonnage_tph", "feed_rate_tph"},
			DefaultGoal: HigherIsBetter(),
		},
		{
			Key:         "specific_energy_kwh_per_t",
			Label:       "Specific Energy",
			Unit:        "kWh/t",
			Precision:   2,
			AliasKeys:   []string{"specific_energy_kwhpt", "kwh_per_tonne"},
			DefaultGoal: LowerIsBetter(),
		},
		{
			Key:         "p80_product_um",
			Label:       "Product P80",
			Unit:        "um",
			Precision:   0,
			AliasKeys:   []string{"product_p80_um", "p80_um"},
			DefaultGoal: TargetRange(90, 120),
		},
		{
			Key:         "p50_product_um",
			Label:       "Product P50",
			Unit:        "um",
			Precision:   0,
			AliasKeys:   []string{"product_p50_um"},
			DefaultGoal: UnknownGoal(),
		},
		{
			Key:         "circulating_load_pct",
			Label:       "Circulating Load",
			Unit:        "%",
			Precision:   0,
			AliasKeys:   []string{"circ_load_pct"},
			DefaultGoal: TargetRange(200, 350),
		},
		{
			Key:         "mill_power_kw",
			Label:       "Mill Power Draw",
			Unit:        "kW",
			Precision:   0,
			AliasKeys:   []string{"power_draw_kw"},
			DefaultGoal: LowerIsBetter(),
		},
		{
			Key:         "recovery_pct",
			Label:       "Recovery",
			Unit:        "%",
			Precision:   1,
			DefaultGoal: HigherIsBetter(),
		},
		{
			Key:         "water_usage_m3ph",
			Label:       "Water Usage",
			Unit:        "m3/h",
			Precision:   1,
			AliasKeys:   []string{"process_water_m3ph"},
			DefaultGoal: LowerIsBetter(),
		},
		{
			Key:         "cyclone_pressure_kpa",
			Label:       "Cyclone Feed Pressure",
			Unit:        "kPa",
			Precision:   0,
			DefaultGoal: TargetRange(60, 120),
		},
		{
			Key:         "screen_efficiency_pct",
			Label:       "Screen Efficiency",
			Unit:        "%",
			Precision:   1,
			DefaultGoal: HigherIsBetter(),
		},
		{
			Key:         "fines_generation_pct",
			Label:       "Fines Generation",
			Unit:        "%",
			Precision:   1,
			AliasKeys:   []string{"fines_pct"},
			DefaultGoal: LowerIsBetter(),
		},
	}
}
