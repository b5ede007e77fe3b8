package reports

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/phenrril/shopdesk/internal/domain"
)

const (
	LinkByCity           = "city"
	LinkBySharedProducts = "shared_products"
)

// CustomerGraph links customers either by shared city or by having purchased
// a common product. Node IDs are customer identifiers.
type CustomerGraph struct {
	*simple.UndirectedGraph
	names   map[int64]string
	cities  map[int64]string
	reasons map[[2]int64]string
}

// BuildCustomerGraph constructs the relationship graph. by must be "city" or
// "shared_products"; purchases is only consulted for the latter.
func BuildCustomerGraph(customers []domain.Customer, purchases []domain.CustomerPurchase, by string) (*CustomerGraph, error) {
	g := &CustomerGraph{
		UndirectedGraph: simple.NewUndirectedGraph(),
		names:           make(map[int64]string, len(customers)),
		cities:          make(map[int64]string, len(customers)),
		reasons:         make(map[[2]int64]string),
	}
	for _, c := range customers {
		id := int64(c.ID)
		g.AddNode(simple.Node(id))
		g.names[id] = c.Name
		g.cities[id] = c.City
	}

	switch by {
	case LinkByCity:
		byCity := make(map[string][]int64)
		for _, c := range customers {
			byCity[c.City] = append(byCity[c.City], int64(c.ID))
		}
		for _, ids := range byCity {
			g.linkAll(ids, "city")
		}
	case LinkBySharedProducts:
		byProduct := make(map[uint][]int64)
		for _, p := range purchases {
			byProduct[p.ProductID] = append(byProduct[p.ProductID], int64(p.CustomerID))
		}
		for _, ids := range byProduct {
			g.linkAll(ids, "product")
		}
	default:
		return nil, fmt.Errorf("link mode must be %q or %q, got %q", LinkByCity, LinkBySharedProducts, by)
	}
	return g, nil
}

func (g *CustomerGraph) linkAll(ids []int64, reason string) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			g.link(ids[i], ids[j], reason)
		}
	}
}

func (g *CustomerGraph) link(a, b int64, reason string) {
	if a == b {
		return
	}
	g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
	g.reasons[edgeKey(a, b)] = reason
}

// Reason returns the link reason between two customers, or "" when they are
// not connected.
func (g *CustomerGraph) Reason(a, b int64) string {
	return g.reasons[edgeKey(a, b)]
}

func edgeKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}

type GraphNode struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type GraphEdge struct {
	From   int64  `json:"from"`
	To     int64  `json:"to"`
	Reason string `json:"reason"`
}

type GraphSnapshot struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Snapshot flattens the graph for serialization.
func (g *CustomerGraph) Snapshot() GraphSnapshot {
	var snap GraphSnapshot
	nodes := g.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		snap.Nodes = append(snap.Nodes, GraphNode{ID: id, Name: g.names[id], City: g.cities[id]})
	}
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		a, b := e.From().ID(), e.To().ID()
		k := edgeKey(a, b)
		snap.Edges = append(snap.Edges, GraphEdge{From: k[0], To: k[1], Reason: g.reasons[k]})
	}
	return snap
}
