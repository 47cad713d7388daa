package flowsheet

import (
	"fmt"
	"time"

	"github.com/mineworks/grindflow/pkg/catalog"
)

// Severity indicates the importance of a violation
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// ViolationType categorizes the type of structural violation
type ViolationType int

const (
	UnknownType ViolationType = iota
	DanglingEdge
	WrongDirection
	IncompatiblePhases
	FeedHasInput
	ProductHasOutput
	RequiredPortOpen
	DuplicateConnection
)

func (vt ViolationType) String() string {
	switch vt {
	case UnknownType:
		return "UnknownType"
	case DanglingEdge:
		return "DanglingEdge"
	case WrongDirection:
		return "WrongDirection"
	case IncompatiblePhases:
		return "IncompatiblePhases"
	case FeedHasInput:
		return "FeedHasInput"
	case ProductHasOutput:
		return "ProductHasOutput"
	case RequiredPortOpen:
		return "RequiredPortOpen"
	case DuplicateConnection:
		return "DuplicateConnection"
	default:
		return "Unknown"
	}
}

// Violation represents one structural problem found in the graph.
type Violation struct {
	Type     ViolationType `json:"type"`
	Severity Severity      `json:"severity"`
	NodeID   string        `json:"nodeId,omitempty"`
	EdgeID   string        `json:"edgeId,omitempty"`
	Message  string        `json:"message"`
}

// ValidationResult contains the results of validating a graph.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
	CheckedAt  time.Time   `json:"checkedAt"`
}

// BySeverity returns violations filtered by severity level.
func (vr *ValidationResult) BySeverity(severity Severity) []Violation {
	filtered := make([]Violation, 0)
	for _, v := range vr.Violations {
		if v.Severity == severity {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Validate checks the structural invariants of the graph: referential
// integrity of edges, port directions and phase compatibility, the
// feed/product port-use rules, and required ports left unconnected.
// Errors must be fixed before submission; warnings are advisory.
func (g *Graph) Validate() *ValidationResult {
	result := &ValidationResult{
		Violations: make([]Violation, 0),
		CheckedAt:  time.Now(),
	}

	for _, n := range g.nodes {
		g.validateNode(n, result)
	}

	seen := make(map[string]string) // target node+port -> edge id
	for _, e := range g.edges {
		g.validateEdge(e, result)
		key := e.TargetNode + "/" + e.TargetPort
		if prev, dup := seen[key]; dup {
			result.Violations = append(result.Violations, Violation{
				Type:     DuplicateConnection,
				Severity: Error,
				EdgeID:   e.ID,
				Message:  fmt.Sprintf("input port %s on node %s already fed by edge %s", e.TargetPort, e.TargetNode, prev),
			})
		} else {
			seen[key] = e.ID
		}
	}

	result.Valid = len(result.BySeverity(Error)) == 0
	return result
}

func (g *Graph) validateNode(n *Node, result *ValidationResult) {
	et, ok := g.equipmentType(n)
	if !ok {
		result.Violations = append(result.Violations, Violation{
			Type:     UnknownType,
			Severity: Error,
			NodeID:   n.ID,
			Message:  fmt.Sprintf("node %s references unknown equipment type %q", n.ID, n.Type),
		})
		return
	}

	inUse := g.portsInUse(n.ID)

	switch et.Category {
	case catalog.CategoryFeed:
		for _, p := range et.InputPorts() {
			if inUse[p.ID] {
				result.Violations = append(result.Violations, Violation{
					Type:     FeedHasInput,
					Severity: Error,
					NodeID:   n.ID,
					Message:  fmt.Sprintf("feed node %s has input port %s in use", n.ID, p.ID),
				})
			}
		}
	case catalog.CategoryProduct:
		for _, p := range et.OutputPorts() {
			if inUse[p.ID] {
				result.Violations = append(result.Violations, Violation{
					Type:     ProductHasOutput,
					Severity: Error,
					NodeID:   n.ID,
					Message:  fmt.Sprintf("product node %s has output port %s in use", n.ID, p.ID),
				})
			}
		}
	}

	for _, p := range et.Ports {
		if p.Required && !inUse[p.ID] {
			result.Violations = append(result.Violations, Violation{
				Type:     RequiredPortOpen,
				Severity: Warning,
				NodeID:   n.ID,
				Message:  fmt.Sprintf("required port %s on node %s is not connected", p.ID, n.ID),
			})
		}
	}
}

func (g *Graph) validateEdge(e *Edge, result *ValidationResult) {
	src, srcOK := g.nodeIndex[e.SourceNode]
	dst, dstOK := g.nodeIndex[e.TargetNode]
	if !srcOK || !dstOK {
		result.Violations = append(result.Violations, Violation{
			Type:     DanglingEdge,
			Severity: Error,
			EdgeID:   e.ID,
			Message:  fmt.Sprintf("edge %s references a missing node", e.ID),
		})
		return
	}

	srcType, ok1 := g.equipmentType(src)
	dstType, ok2 := g.equipmentType(dst)
	if !ok1 || !ok2 {
		// Already reported against the node.
		return
	}

	srcPort, srcPortOK := srcType.Port(e.SourcePort)
	dstPort, dstPortOK := dstType.Port(e.TargetPort)
	if !srcPortOK || !dstPortOK {
		result.Violations = append(result.Violations, Violation{
			Type:     DanglingEdge,
			Severity: Error,
			EdgeID:   e.ID,
			Message:  fmt.Sprintf("edge %s references a missing port", e.ID),
		})
		return
	}

	if srcPort.Direction != catalog.DirectionOutput || dstPort.Direction != catalog.DirectionInput {
		result.Violations = append(result.Violations, Violation{
			Type:     WrongDirection,
			Severity: Error,
			EdgeID:   e.ID,
			Message:  fmt.Sprintf("edge %s must run output to input", e.ID),
		})
	}

	if !catalog.PhasesCompatible(srcPort.Phase, dstPort.Phase) {
		severity := Error
		if g.phasePolicy == PhaseWarn {
			severity = Warning
		}
		result.Violations = append(result.Violations, Violation{
			Type:     IncompatiblePhases,
			Severity: severity,
			EdgeID:   e.ID,
			Message:  fmt.Sprintf("edge %s carries %s into a %s port", e.ID, srcPort.Phase, dstPort.Phase),
		})
	}
}

// portsInUse reports which ports of a node have at least one incident edge.
func (g *Graph) portsInUse(nodeID string) map[string]bool {
	used := make(map[string]bool)
	for _, e := range g.edges {
		if e.SourceNode == nodeID {
			used[e.SourcePort] = true
		}
		if e.TargetNode == nodeID {
			used[e.TargetPort] = true
		}
	}
	return used
}
