package kpi

import (
	"github.com/mineworks/grindflow/pkg/logging"
)

// Registry resolves raw KPI keys emitted by the simulation service to
// canonical metrics. Read-only after construction.
type Registry struct {
	metrics []Metric
	byKey   map[string]int
	byAlias map[string]string
	logger  logging.Logger

	// unknownKeyHook is called once per Resolve of an unregistered key, so
	// unknown-but-frequently-seen keys are observable instead of silently
	// passed through.
	unknownKeyHook func(rawKey string)
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used when unknown keys are resolved.
func WithLogger(l logging.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// WithUnknownKeyHook installs a callback fired for every unregistered raw
// key, typically wired to a metrics counter.
func WithUnknownKeyHook(hook func(rawKey string)) RegistryOption {
	return func(r *Registry) { r.unknownKeyHook = hook }
}

// NewRegistry builds the registry from the built-in metric table.
func NewRegistry(opts ...RegistryOption) *Registry {
	return NewRegistryWith(builtinMetrics(), opts...)
}

// NewRegistryWith builds a registry from an explicit metric table.
func NewRegistryWith(metrics []Metric, opts ...RegistryOption) *Registry {
	r := &Registry{
		metrics: metrics,
		byKey:   make(map[string]int, len(metrics)),
		byAlias: make(map[string]string),
		logger:  logging.NewNopLogger(),
	}
	for i, m := range metrics {
		r.byKey[m.Key] = i
		for _, alias := range m.AliasKeys {
			r.byAlias[alias] = m.Key
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Metrics returns all registered metrics in declaration order.
func (r *Registry) Metrics() []Metric {
	out := make([]Metric, len(r.metrics))
	copy(out, r.metrics)
	return out
}

// Resolve maps a raw key to its canonical metric: first as an alias, then as
// a canonical key, then as a synthetic unknown metric. The fallback keeps
// unrecognized service output displayable as an unscored row rather than an
// error.
func (r *Registry) Resolve(rawKey string) Metric {
	if canonical, ok := r.byAlias[rawKey]; ok {
		return r.metrics[r.byKey[canonical]]
	}
	if i, ok := r.byKey[rawKey]; ok {
		return r.metrics[i]
	}

	r.logger.Warn("unregistered KPI key in run payload", logging.MetricKey(rawKey))
	if r.unknownKeyHook != nil {
		r.unknownKeyHook(rawKey)
	}
	return Metric{
		Key:         rawKey,
		Label:       rawKey,
		Precision:   2,
		DefaultGoal: UnknownGoal(),
		Synthetic:   true,
	}
}

// ValueKeys returns every raw key that may carry the metric's value in a run
// payload: the canonical key followed by its aliases.
func (r *Registry) ValueKeys(m Metric) []string {
	keys := make([]string, 0, 1+len(m.AliasKeys))
	keys = append(keys, m.Key)
	keys = append(keys, m.AliasKeys...)
	return keys
}

// MergeObservedKeys unions the built-in metrics with any raw keys newly
// observed in run payloads, preserving declaration order for registered
// metrics and first-observed order for the rest. Aliases collapse onto their
// canonical metric rather than producing a second row.
func (r *Registry) MergeObservedKeys(rawKeys []string) []Metric {
	merged := make([]Metric, 0, len(r.metrics)+len(rawKeys))
	merged = append(merged, r.metrics...)

	seen := make(map[string]bool, len(r.metrics))
	for _, m := range r.metrics {
		seen[m.Key] = true
		for _, alias := range m.AliasKeys {
			seen[alias] = true
		}
	}

	for _, raw := range rawKeys {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		merged = append(merged, r.Resolve(raw))
	}
	return merged
}
