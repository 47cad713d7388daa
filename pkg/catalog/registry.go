package catalog

import (
	"fmt"
	"sort"
)

// Registry holds the equipment catalog. Entries are registered during startup
// and the registry is treated as read-only afterwards; it is not safe for
// concurrent registration.
type Registry struct {
	types map[string]EquipmentType
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]EquipmentType),
	}
}

// Register adds an equipment type to the registry. Registering a type that
// already exists replaces it without changing its position in the catalog
// ordering.
func (r *Registry) Register(et EquipmentType) error {
	if err := validateType(et); err != nil {
		return fmt.Errorf("invalid equipment type %q: %w", et.Type, err)
	}
	if _, exists := r.types[et.Type]; !exists {
		r.order = append(r.order, et.Type)
	}
	r.types[et.Type] = et
	return nil
}

// Lookup returns the equipment type registered under the given identifier.
func (r *Registry) Lookup(typeName string) (EquipmentType, bool) {
	et, ok := r.types[typeName]
	return et, ok
}

// All returns every registered type in registration order.
func (r *Registry) All() []EquipmentType {
	all := make([]EquipmentType, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.types[name])
	}
	return all
}

// ByCategory returns the types in the given category, sorted by identifier.
func (r *Registry) ByCategory(cat Category) []EquipmentType {
	matched := make([]EquipmentType, 0)
	for _, et := range r.types {
		if et.Category == cat {
			matched = append(matched, et)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Type < matched[j].Type })
	return matched
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

func validateType(et EquipmentType) error {
	if et.Type == "" {
		return fmt.Errorf("type identifier is empty")
	}
	switch et.Category {
	case CategoryFeed, CategorySizeReduction, CategoryClassification, CategoryAuxiliary, CategoryProduct:
	default:
		return fmt.Errorf("unknown category %q", et.Category)
	}

	seen := make(map[string]bool, len(et.Ports))
	for _, p := range et.Ports {
		if p.ID == "" {
			return fmt.Errorf("port with empty id")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate port id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Direction != DirectionInput && p.Direction != DirectionOutput {
			return fmt.Errorf("port %q has unknown direction %q", p.ID, p.Direction)
		}
		switch p.Phase {
		case PhaseSolid, PhaseLiquid, PhaseSlurry, PhaseGas:
		default:
			return fmt.Errorf("port %q has unknown phase %q", p.ID, p.Phase)
		}
	}

	// Feed sources only emit, products only receive.
	if et.Category == CategoryFeed && len(et.InputPorts()) > 0 {
		return fmt.Errorf("feed type declares input ports")
	}
	if et.Category == CategoryProduct && len(et.OutputPorts()) > 0 {
		return fmt.Errorf("product type declares output ports")
	}

	names := make(map[string]bool, len(et.Parameters))
	for _, ps := range et.Parameters {
		if ps.Name == "" {
			return fmt.Errorf("parameter with empty name")
		}
		if names[ps.Name] {
			return fmt.Errorf("duplicate parameter %q", ps.Name)
		}
		names[ps.Name] = true
		if ps.Min != nil && ps.Max != nil && *ps.Min > *ps.Max {
			return fmt.Errorf("parameter %q has min %v above max %v", ps.Name, *ps.Min, *ps.Max)
		}
		if ps.Default != nil {
			if err := ps.Check(ps.Default); err != nil {
				return fmt.Errorf("default out of domain: %w", err)
			}
		}
	}
	return nil
}
