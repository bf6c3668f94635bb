package art

import "fmt"

// Kind identifies the body variant of a node.
type Kind uint8

const (
	Leaf Kind = iota
	Node4
	Node16
	Node48
	Node256
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Node4:
		return "node4"
	case Node16:
		return "node16"
	case Node48:
		return "node48"
	case Node256:
		return "node256"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

type body[V any] interface {
	kind() Kind
}

type leaf[V any] struct {
	value V
}

func (*leaf[V]) kind() Kind { return Leaf }

// node pairs a header with a body. Each node is owned by exactly one slot:
// the tree root or a slot inside its parent's children.
type node[V any] struct {
	prefix header
	body   body[V]
}

func newLeaf[V any](suffix []byte, value V) *node[V] {
	return &node[V]{prefix: newHeader(suffix), body: &leaf[V]{value: value}}
}

func (n *node[V]) leaf() *leaf[V] {
	l, _ := n.body.(*leaf[V])
	return l
}

func (n *node[V]) inner() children[V] {
	c, _ := n.body.(children[V])
	return c
}

// absorb collapses the node with its only remaining child: the prefixes are
// joined around the edge label and the child's body moves up.
func (n *node[V]) absorb(e edge[V]) {
	merged := make([]byte, 0, n.prefix.Len()+1+e.child.prefix.Len())
	merged = append(merged, n.prefix.bytes()...)
	merged = append(merged, e.label)
	merged = append(merged, e.child.prefix.bytes()...)
	n.prefix = newHeader(merged)
	n.body = e.child.body
}
