package flt

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Kind uint8

const (
	RootKind Kind = iota
	DatabaseKind
	GroupKind
	ObjectKind
	FaceKind
)

func (k Kind) String() string {
	switch k {
	case RootKind:
		return "Root"
	case DatabaseKind:
		return "Database"
	case GroupKind:
		return "Group"
	case ObjectKind:
		return "Object"
	case FaceKind:
		return "Face"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func kindOf(op Opcode) Kind {
	switch op {
	case DatabaseOp:
		return DatabaseKind
	case GroupOp:
		return GroupKind
	case ObjectOp:
		return ObjectKind
	case FaceOp:
		return FaceKind
	}
	return RootKind
}

// NodeID addresses a node inside its Tree.
type NodeID int

const RootID NodeID = 0

type Node struct {
	Kind           Kind
	Name           string
	Offset         int64
	ColorNameIndex uint16
	MaterialIndex  int16
	Children       []NodeID
}

// Tree owns all nodes of a decoded file. Nodes refer to their children by
// index, the root is always at RootID.
type Tree struct {
	nodes []Node
}

func NewTree() *Tree {
	return &Tree{
		nodes: []Node{{Kind: RootKind}},
	}
}

func (t *Tree) Root() NodeID {
	return RootID
}

// Len number of nodes, not counting the root
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

func (t *Tree) Node(id NodeID) (node Node, ok bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return
	}
	return t.nodes[id], true
}

func (t *Tree) Children(id NodeID) []NodeID {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	children := t.nodes[id].Children
	return append([]NodeID(nil), children...)
}

func (t *Tree) Count(kind Kind) (count int) {
	for _, n := range t.nodes {
		if n.Kind == kind {
			count++
		}
	}
	return
}

func (t *Tree) add(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

// Walk visits every node below the root depth first, in pre-order.
// Children of the root are at depth 0.
func (t *Tree) Walk(fn func(id NodeID, node Node, depth int) error) error {
	for _, child := range t.nodes[RootID].Children {
		if err := t.walk(child, 0, fn); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, Node, int) error) error {
	if err := fn(id, t.nodes[id], depth); err != nil {
		return err
	}
	for _, child := range t.nodes[id].Children {
		if err := t.walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// TreeBuilder is a Sink that materializes the records into a Tree.
// The stack holds the path from the root to the current parent.
type TreeBuilder struct {
	tree  *Tree
	stack []NodeID
	log   log.Ext1FieldLogger
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{
		tree:  NewTree(),
		stack: []NodeID{RootID},
	}
}

// setLogger is called by the decoder so the builder logs with its run fields.
func (b *TreeBuilder) setLogger(logger log.Ext1FieldLogger) {
	b.log = logger
}

func (b *TreeBuilder) Tree() *Tree {
	return b.tree
}

// Depth number of levels on the stack, 1 when at the root
func (b *TreeBuilder) Depth() int {
	return len(b.stack)
}

// Current the node new records get attached to
func (b *TreeBuilder) Current() NodeID {
	return b.stack[len(b.stack)-1]
}

func (b *TreeBuilder) Record(rec Record) error {
	node := Node{
		Kind:           rec.Kind,
		Name:           rec.Name,
		Offset:         rec.Offset,
		ColorNameIndex: rec.ColorNameIndex,
		MaterialIndex:  rec.MaterialIndex,
	}
	switch rec.Kind {
	case DatabaseKind:
		// a header record starts a new top-level database, pops after it
		// never lead back into a previous one
		id := b.tree.add(RootID, node)
		b.stack = append(b.stack[:1], id)
	case GroupKind, ObjectKind, FaceKind:
		b.tree.add(b.Current(), node)
	default:
		return fmt.Errorf("unexpected record kind %v at offset %d", rec.Kind, rec.Offset)
	}
	return nil
}

func (b *TreeBuilder) Push() error {
	children := b.tree.nodes[b.Current()].Children
	if len(children) == 0 {
		if b.log != nil {
			b.log.Tracef("push without children, staying at node %d", b.Current())
		}
		return nil
	}
	b.stack = append(b.stack, children[len(children)-1])
	return nil
}

func (b *TreeBuilder) Pop() error {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return nil
}
