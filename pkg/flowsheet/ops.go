package flowsheet

import (
	"github.com/google/uuid"

	"github.com/mineworks/grindflow/pkg/catalog"
	"github.com/mineworks/grindflow/pkg/logging"
)

// AddNode instantiates an equipment type at the given position, with
// parameters set to the type's defaults.
func (g *Graph) AddNode(typeName string, pos Position) (*Node, error) {
	et, ok := g.catalog.Lookup(typeName)
	if !ok {
		return nil, opError("AddNode", "node", "", "", ErrUnknownEquipmentType)
	}

	n := &Node{
		ID:         uuid.NewString(),
		Type:       et.Type,
		Label:      et.Label,
		Position:   pos,
		Parameters: et.DefaultParameters(),
	}
	g.nodes = append(g.nodes, n)
	g.nodeIndex[n.ID] = n
	return n, nil
}

// Connect creates a directed stream edge from an output port to an input
// port. Direction and phase are checked against the catalog; how a phase
// mismatch is handled depends on the graph's PhasePolicy, but the check is
// always performed.
func (g *Graph) Connect(sourceNodeID, sourcePortID, targetNodeID, targetPortID string) (*Edge, error) {
	src, ok := g.nodeIndex[sourceNodeID]
	if !ok {
		return nil, opError("Connect", "node", sourceNodeID, sourcePortID, ErrDanglingReference)
	}
	dst, ok := g.nodeIndex[targetNodeID]
	if !ok {
		return nil, opError("Connect", "node", targetNodeID, targetPortID, ErrDanglingReference)
	}

	srcType, ok := g.equipmentType(src)
	if !ok {
		return nil, opError("Connect", "node", src.ID, "", ErrUnknownEquipmentType)
	}
	dstType, ok := g.equipmentType(dst)
	if !ok {
		return nil, opError("Connect", "node", dst.ID, "", ErrUnknownEquipmentType)
	}

	srcPort, ok := srcType.Port(sourcePortID)
	if !ok {
		return nil, opError("Connect", "port", src.ID, sourcePortID, ErrDanglingReference)
	}
	dstPort, ok := dstType.Port(targetPortID)
	if !ok {
		return nil, opError("Connect", "port", dst.ID, targetPortID, ErrDanglingReference)
	}

	if srcPort.Direction != catalog.DirectionOutput {
		return nil, opError("Connect", "port", src.ID, sourcePortID, ErrInvalidDirection)
	}
	if dstPort.Direction != catalog.DirectionInput {
		return nil, opError("Connect", "port", dst.ID, targetPortID, ErrInvalidDirection)
	}

	if !catalog.PhasesCompatible(srcPort.Phase, dstPort.Phase) {
		if g.phasePolicy == PhaseReject {
			return nil, opError("Connect", "edge", "", sourcePortID, ErrPhaseMismatch)
		}
		g.logger.Warn("connecting ports with incompatible phases",
			logging.NodeID(src.ID),
			logging.String("source_phase", string(srcPort.Phase)),
			logging.String("target_phase", string(dstPort.Phase)))
	}

	e := &Edge{
		ID:         uuid.NewString(),
		SourceNode: sourceNodeID,
		SourcePort: sourcePortID,
		TargetNode: targetNodeID,
		TargetPort: targetPortID,
	}
	g.edges = append(g.edges, e)
	g.edgeIndex[e.ID] = e
	return e, nil
}

// SetParameter updates one parameter of a node, rejecting values outside the
// parameter spec's domain.
func (g *Graph) SetParameter(nodeID, name string, value any) error {
	n, ok := g.nodeIndex[nodeID]
	if !ok {
		return opError("SetParameter", "node", nodeID, "", ErrNodeNotFound)
	}
	et, ok := g.equipmentType(n)
	if !ok {
		return opError("SetParameter", "node", nodeID, "", ErrUnknownEquipmentType)
	}
	spec, ok := et.Parameter(name)
	if !ok {
		return opError("SetParameter", "parameter", name, "", ErrUnknownParameter)
	}
	if err := spec.Check(value); err != nil {
		return opError("SetParameter", "parameter", name, "", &domainError{cause: err})
	}
	n.Parameters[name] = value
	return nil
}

// domainError wraps a catalog check failure so it matches ErrOutOfDomain.
type domainError struct {
	cause error
}

func (e *domainError) Error() string   { return e.cause.Error() }
func (e *domainError) Is(t error) bool { return t == ErrOutOfDomain }
func (e *domainError) Unwrap() error   { return e.cause }

// AssignMaterial links a feed node to a material/PSD preset.
func (g *Graph) AssignMaterial(nodeID, materialID string) error {
	n, ok := g.nodeIndex[nodeID]
	if !ok {
		return opError("AssignMaterial", "node", nodeID, "", ErrNodeNotFound)
	}
	et, ok := g.equipmentType(n)
	if !ok {
		return opError("AssignMaterial", "node", nodeID, "", ErrUnknownEquipmentType)
	}
	if et.Category != catalog.CategoryFeed {
		return opError("AssignMaterial", "node", nodeID, "", ErrNotAFeedNode)
	}
	n.AssignedMaterialID = materialID
	return nil
}

// RemoveNode removes the node and every incident edge. Removing an absent
// node is a no-op.
func (g *Graph) RemoveNode(nodeID string) {
	if _, ok := g.nodeIndex[nodeID]; !ok {
		return
	}
	delete(g.nodeIndex, nodeID)

	nodes := g.nodes[:0]
	for _, n := range g.nodes {
		if n.ID != nodeID {
			nodes = append(nodes, n)
		}
	}
	g.nodes = nodes

	edges := g.edges[:0]
	for _, e := range g.edges {
		if e.SourceNode == nodeID || e.TargetNode == nodeID {
			delete(g.edgeIndex, e.ID)
			continue
		}
		edges = append(edges, e)
	}
	g.edges = edges
}

// RemoveEdge removes a single edge. Removing an absent edge is a no-op.
func (g *Graph) RemoveEdge(edgeID string) {
	if _, ok := g.edgeIndex[edgeID]; !ok {
		return
	}
	delete(g.edgeIndex, edgeID)
	edges := g.edges[:0]
	for _, e := range g.edges {
		if e.ID != edgeID {
			edges = append(edges, e)
		}
	}
	g.edges = edges
}
