package flowsheet

import (
	"testing"

	"github.com/mineworks/grindflow/pkg/catalog"
)

func violationsOfType(result *ValidationResult, vt ViolationType) []Violation {
	matched := make([]Violation, 0)
	for _, v := range result.Violations {
		if v.Type == vt {
			matched = append(matched, v)
		}
	}
	return matched
}

func TestValidateCleanCircuit(t *testing.T) {
	g := NewGraph(testCatalog(t))
	ore, _ := g.AddNode("ore_feed", Position{})
	water, _ := g.AddNode("water_feed", Position{})
	sump, _ := g.AddNode("sump_pump", Position{})
	mill, _ := g.AddNode("ball_mill", Position{})
	cyclone, _ := g.AddNode("hydrocyclone", Position{})
	product, _ := g.AddNode("final_product", Position{})

	mustConnect := func(srcNode, srcPort, dstNode, dstPort string) {
		t.Helper()
		if _, err := g.Connect(srcNode, srcPort, dstNode, dstPort); err != nil {
			t.Fatalf("Connect(%s.%s -> %s.%s): %v", srcNode, srcPort, dstNode, dstPort, err)
		}
	}
	mustConnect(ore.ID, "out", sump.ID, "solids")
	mustConnect(water.ID, "out", sump.ID, "water")
	mustConnect(sump.ID, "discharge", mill.ID, "feed")
	mustConnect(mill.ID, "discharge", cyclone.ID, "feed")
	mustConnect(cyclone.ID, "overflow", product.ID, "in")

	result := g.Validate()
	if !result.Valid {
		t.Errorf("expected valid circuit, violations: %+v", result.Violations)
	}

	// The cyclone underflow is a required port with nothing attached.
	open := violationsOfType(result, RequiredPortOpen)
	if len(open) != 1 {
		t.Fatalf("expected 1 open required port, got %d", len(open))
	}
	if open[0].Severity != Warning {
		t.Error("open required port should be a warning, not an error")
	}
	if open[0].NodeID != cyclone.ID {
		t.Errorf("open port reported against wrong node %s", open[0].NodeID)
	}
}

func TestValidateUnknownType(t *testing.T) {
	cat := testCatalog(t)
	g := NewGraph(cat)
	// Simulate a saved graph whose type was removed from the catalog.
	n := &Node{ID: "ghost", Type: "retired_unit", Parameters: map[string]any{}}
	g.nodes = append(g.nodes, n)
	g.nodeIndex[n.ID] = n

	result := g.Validate()
	if result.Valid {
		t.Error("graph with unknown type reported valid")
	}
	if len(violationsOfType(result, UnknownType)) != 1 {
		t.Error("UnknownType violation not reported")
	}
}

func TestValidateDanglingEdge(t *testing.T) {
	g := NewGraph(testCatalog(t))
	mill, _ := g.AddNode("ball_mill", Position{})
	cyclone, _ := g.AddNode("hydrocyclone", Position{})
	e, _ := g.Connect(mill.ID, "discharge", cyclone.ID, "feed")

	// Corrupt the edge to point at a removed node.
	e.TargetNode = "gone"

	result := g.Validate()
	if result.Valid {
		t.Error("graph with dangling edge reported valid")
	}
	if len(violationsOfType(result, DanglingEdge)) != 1 {
		t.Error("DanglingEdge violation not reported")
	}
}

func TestValidateDuplicateConnection(t *testing.T) {
	g := NewGraph(testCatalog(t))
	sag, _ := g.AddNode("sag_mill", Position{})
	ball, _ := g.AddNode("ball_mill", Position{})
	product, _ := g.AddNode("final_product", Position{})

	g.Connect(sag.ID, "discharge", product.ID, "in")
	g.Connect(ball.ID, "discharge", product.ID, "in")

	result := g.Validate()
	dups := violationsOfType(result, DuplicateConnection)
	if len(dups) != 1 {
		t.Fatalf("expected 1 duplicate connection violation, got %d", len(dups))
	}
	if dups[0].Severity != Error {
		t.Error("duplicate connection should be an error")
	}
}

func TestValidateFeedAndProductPortUse(t *testing.T) {
	cat := testCatalog(t)
	// A malformed saved graph can carry edges the editor would refuse.
	g := NewGraph(cat)
	feed, _ := g.AddNode("ore_feed", Position{})
	product, _ := g.AddNode("stockpile", Position{})
	e := &Edge{ID: "bad", SourceNode: product.ID, SourcePort: "in", TargetNode: feed.ID, TargetPort: "out"}
	g.edges = append(g.edges, e)
	g.edgeIndex[e.ID] = e

	result := g.Validate()
	if result.Valid {
		t.Error("malformed graph reported valid")
	}
	if len(violationsOfType(result, WrongDirection)) != 1 {
		t.Error("WrongDirection violation not reported")
	}
}

func TestValidatePhaseSeverityFollowsPolicy(t *testing.T) {
	build := func(policy PhasePolicy) *ValidationResult {
		g := NewGraph(testCatalog(t), WithPhasePolicy(PhaseWarn))
		mill, _ := g.AddNode("ball_mill", Position{})
		scrubber, _ := g.AddNode("gas_scrubber", Position{})
		g.Connect(mill.ID, "discharge", scrubber.ID, "gas_in")
		g.phasePolicy = policy
		return g.Validate()
	}

	rejectResult := build(PhaseReject)
	if rejectResult.Valid {
		t.Error("phase mismatch under PhaseReject should invalidate the graph")
	}
	mismatches := violationsOfType(rejectResult, IncompatiblePhases)
	if len(mismatches) != 1 || mismatches[0].Severity != Error {
		t.Errorf("expected one error-severity mismatch, got %+v", mismatches)
	}

	warnResult := build(PhaseWarn)
	if !warnResult.Valid {
		t.Error("phase mismatch under PhaseWarn should not invalidate the graph")
	}
	mismatches = violationsOfType(warnResult, IncompatiblePhases)
	if len(mismatches) != 1 || mismatches[0].Severity != Warning {
		t.Errorf("expected one warning-severity mismatch, got %+v", mismatches)
	}
}

func TestValidateEmptyGraph(t *testing.T) {
	g := NewGraph(catalog.Builtin())
	result := g.Validate()
	if !result.Valid {
		t.Error("empty graph should be valid")
	}
	if len(result.Violations) != 0 {
		t.Errorf("empty graph produced violations: %+v", result.Violations)
	}
}
