// Package catalog defines the static equipment catalog: every equipment type
// the flowsheet editor can instantiate, with its typed ports and the legal
// value domain of its editable parameters. The catalog is loaded once at
// process start and is read-only afterwards.
package catalog

// Category groups equipment types by their role in the circuit.
type Category string

const (
	CategoryFeed           Category = "feed"
	CategorySizeReduction  Category = "size_reduction"
	CategoryClassification Category = "classification"
	CategoryAuxiliary      Category = "auxiliary"
	CategoryProduct        Category = "product"
)

// Direction indicates whether a port accepts or emits a stream.
type Direction string

const (
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)

// Phase is the material phase carried by a port.
type Phase string

const (
	PhaseSolid  Phase = "solid"
	PhaseLiquid Phase = "liquid"
	PhaseSlurry Phase = "slurry"
	PhaseGas    Phase = "gas"
)

// ValueType is the type of an editable parameter value.
type ValueType string

const (
	TypeFloat  ValueType = "float"
	TypeInt    ValueType = "int"
	TypeBool   ValueType = "bool"
	TypeString ValueType = "string"
	TypeEnum   ValueType = "enum"
)

// Port is a typed connection point on an equipment type.
type Port struct {
	ID        string    `yaml:"id" json:"id"`
	Direction Direction `yaml:"direction" json:"direction"`
	Phase     Phase     `yaml:"phase" json:"phase"`
	Required  bool      `yaml:"required" json:"required"`
}

// ParameterSpec defines the legal value domain for one editable parameter.
// Min/Max apply to float and int parameters only; EnumValues to enum only.
type ParameterSpec struct {
	Name       string    `yaml:"name" json:"name"`
	Unit       string    `yaml:"unit,omitempty" json:"unit,omitempty"`
	ValueType  ValueType `yaml:"value_type" json:"valueType"`
	Min        *float64  `yaml:"min,omitempty" json:"min,omitempty"`
	Max        *float64  `yaml:"max,omitempty" json:"max,omitempty"`
	Default    any       `yaml:"default" json:"default"`
	EnumValues []string  `yaml:"enum_values,omitempty" json:"enumValues,omitempty"`
}

// EquipmentType is one catalog entry. Immutable after registration.
type EquipmentType struct {
	Type       string          `yaml:"type" json:"type"`
	Label      string          `yaml:"label" json:"label"`
	Category   Category        `yaml:"category" json:"category"`
	Ports      []Port          `yaml:"ports" json:"ports"`
	Parameters []ParameterSpec `yaml:"parameters" json:"parameters"`
}

// Port returns the port with the given id.
func (et EquipmentType) Port(id string) (Port, bool) {
	for _, p := range et.Ports {
		if p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}

// Parameter returns the parameter spec with the given name.
func (et EquipmentType) Parameter(name string) (ParameterSpec, bool) {
	for _, ps := range et.Parameters {
		if ps.Name == name {
			return ps, true
		}
	}
	return ParameterSpec{}, false
}

// InputPorts returns the input ports of the type, in declaration order.
func (et EquipmentType) InputPorts() []Port {
	ports := make([]Port, 0, len(et.Ports))
	for _, p := range et.Ports {
		if p.Direction == DirectionInput {
			ports = append(ports, p)
		}
	}
	return ports
}

// OutputPorts returns the output ports of the type, in declaration order.
func (et EquipmentType) OutputPorts() []Port {
	ports := make([]Port, 0, len(et.Ports))
	for _, p := range et.Ports {
		if p.Direction == DirectionOutput {
			ports = append(ports, p)
		}
	}
	return ports
}

// DefaultParameters builds the initial parameter map for a new node.
func (et EquipmentType) DefaultParameters() map[string]any {
	params := make(map[string]any, len(et.Parameters))
	for _, ps := range et.Parameters {
		params[ps.Name] = ps.Default
	}
	return params
}

// PhasesCompatible reports whether a stream emitted at phase `out` may enter
// a port expecting phase `in`. Identical phases always match. A slurry input
// additionally accepts dry solids or water, since slurrying happens at the
// receiving unit (e.g. a mill or sump fed by dry ore plus process water).
func PhasesCompatible(out, in Phase) bool {
	if out == in {
		return true
	}
	if in == PhaseSlurry && (out == PhaseSolid || out == PhaseLiquid) {
		return true
	}
	return false
}
