// Package entity is the scene graph of the island: named nodes with a
// transform, looked up by name by the simulation and the renderer.
package entity

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tells the renderer what to draw for a node.
type Kind string

const (
	KindRobot Kind = "robot"
	KindKnot  Kind = "knot"
	KindPalm  Kind = "palm"
	KindFish  Kind = "fish"
	KindBox   Kind = "box"
)

// Node is a named transform.
type Node struct {
	Name   string
	Kind   Kind
	Scale  mgl64.Vec3
	pos    mgl64.Vec3
	orient mgl64.Quat
}

// NewNode returns a node at pos with identity orientation and unit scale.
func NewNode(name string, kind Kind, pos mgl64.Vec3) *Node {
	return &Node{Name: name, Kind: kind, Scale: mgl64.Vec3{1, 1, 1}, pos: pos, orient: mgl64.QuatIdent()}
}

func (n *Node) Position() mgl64.Vec3        { return n.pos }
func (n *Node) SetPosition(p mgl64.Vec3)    { n.pos = p }
func (n *Node) Orientation() mgl64.Quat     { return n.orient }
func (n *Node) SetOrientation(q mgl64.Quat) { n.orient = q }

// Graph holds every node by name.
type Graph struct {
	nodes map[string]*Node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Add inserts n, replacing any node of the same name.
func (g *Graph) Add(n *Node) *Node {
	g.nodes[n.Name] = n
	return n
}

// Get returns the named node.
func (g *Graph) Get(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Remove deletes the named node.
func (g *Graph) Remove(name string) {
	delete(g.nodes, name)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// OfKind returns the nodes of kind k sorted by name.
func (g *Graph) OfKind(k Kind) []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
