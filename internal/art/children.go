package art

import (
	"bytes"
	"fmt"
)

type edge[V any] struct {
	label byte
	child *node[V]
}

// children is the internal body: a set of labeled edges stored in one of four
// capacity tiers. insert reports false when a new label does not fit, which
// tells the caller to move the edges into the next tier.
type children[V any] interface {
	body[V]
	len() int
	find(label byte) **node[V]
	insert(label byte, child *node[V]) bool
	remove(label byte) *node[V]
	edges() []edge[V]
}

func newChildren[V any](k Kind, edges []edge[V]) children[V] {
	var c children[V]
	switch k {
	case Node4:
		c = &node4[V]{}
	case Node16:
		c = &node16[V]{}
	case Node48:
		c = &node48[V]{}
	case Node256:
		c = &node256[V]{}
	default:
		panic(fmt.Sprintf("art: %s is not an internal kind", k))
	}
	for _, e := range edges {
		if !c.insert(e.label, e.child) {
			panic(fmt.Sprintf("art: %d edges overflow %s", len(edges), k))
		}
	}
	return c
}

func grown(k Kind) Kind {
	switch k {
	case Node4:
		return Node16
	case Node16:
		return Node48
	case Node48:
		return Node256
	default:
		panic(fmt.Sprintf("art: %s cannot grow", k))
	}
}

// shrunk returns the tier a body of kind k should use once it holds n edges.
func shrunk(k Kind, n int) Kind {
	switch {
	case k == Node256 && n <= 37:
		return Node48
	case k == Node48 && n <= 12:
		return Node16
	case k == Node16 && n <= 3:
		return Node4
	}
	return k
}

// node4 and node16 keep labels sorted.

type node4[V any] struct {
	n      uint8
	labels [4]byte
	kids   [4]*node[V]
}

func (c *node4[V]) kind() Kind { return Node4 }
func (c *node4[V]) len() int   { return int(c.n) }

func (c *node4[V]) find(label byte) **node[V] {
	for i := 0; i < int(c.n); i++ {
		if c.labels[i] == label {
			return &c.kids[i]
		}
	}
	return nil
}

func (c *node4[V]) insert(label byte, child *node[V]) bool {
	return sortedInsert(c.labels[:], c.kids[:], &c.n, label, child)
}

func (c *node4[V]) remove(label byte) *node[V] {
	return sortedRemove(c.labels[:], c.kids[:], &c.n, label)
}

func (c *node4[V]) edges() []edge[V] {
	return sortedEdges(c.labels[:c.n], c.kids[:c.n])
}

type node16[V any] struct {
	n      uint8
	labels [16]byte
	kids   [16]*node[V]
}

func (c *node16[V]) kind() Kind { return Node16 }
func (c *node16[V]) len() int   { return int(c.n) }

func (c *node16[V]) find(label byte) **node[V] {
	if i := bytes.IndexByte(c.labels[:c.n], label); i >= 0 {
		return &c.kids[i]
	}
	return nil
}

func (c *node16[V]) insert(label byte, child *node[V]) bool {
	return sortedInsert(c.labels[:], c.kids[:], &c.n, label, child)
}

func (c *node16[V]) remove(label byte) *node[V] {
	return sortedRemove(c.labels[:], c.kids[:], &c.n, label)
}

func (c *node16[V]) edges() []edge[V] {
	return sortedEdges(c.labels[:c.n], c.kids[:c.n])
}

func sortedInsert[V any](labels []byte, kids []*node[V], n *uint8, label byte, child *node[V]) bool {
	size := int(*n)
	i := 0
	for i < size && labels[i] < label {
		i++
	}
	if i < size && labels[i] == label {
		kids[i] = child
		return true
	}
	if size == len(labels) {
		return false
	}
	copy(labels[i+1:size+1], labels[i:size])
	copy(kids[i+1:size+1], kids[i:size])
	labels[i] = label
	kids[i] = child
	*n++
	return true
}

func sortedRemove[V any](labels []byte, kids []*node[V], n *uint8, label byte) *node[V] {
	size := int(*n)
	for i := 0; i < size; i++ {
		if labels[i] != label {
			continue
		}
		child := kids[i]
		copy(labels[i:size-1], labels[i+1:size])
		copy(kids[i:size-1], kids[i+1:size])
		labels[size-1] = 0
		kids[size-1] = nil
		*n--
		return child
	}
	return nil
}

func sortedEdges[V any](labels []byte, kids []*node[V]) []edge[V] {
	out := make([]edge[V], len(labels))
	for i := range labels {
		out[i] = edge[V]{label: labels[i], child: kids[i]}
	}
	return out
}

// node48 maps a label to a 1-based slot; 0 means no child.
type node48[V any] struct {
	n     uint8
	index [256]uint8
	kids  [48]*node[V]
}

func (c *node48[V]) kind() Kind { return Node48 }
func (c *node48[V]) len() int   { return int(c.n) }

func (c *node48[V]) find(label byte) **node[V] {
	s := c.index[label]
	if s == 0 {
		return nil
	}
	return &c.kids[s-1]
}

func (c *node48[V]) insert(label byte, child *node[V]) bool {
	if s := c.index[label]; s != 0 {
		c.kids[s-1] = child
		return true
	}
	if int(c.n) == len(c.kids) {
		return false
	}
	for i := range c.kids {
		if c.kids[i] == nil {
			c.kids[i] = child
			c.index[label] = uint8(i + 1)
			c.n++
			return true
		}
	}
	return false
}

func (c *node48[V]) remove(label byte) *node[V] {
	s := c.index[label]
	if s == 0 {
		return nil
	}
	child := c.kids[s-1]
	c.kids[s-1] = nil
	c.index[label] = 0
	c.n--
	return child
}

func (c *node48[V]) edges() []edge[V] {
	out := make([]edge[V], 0, c.n)
	for l := 0; l < len(c.index); l++ {
		if s := c.index[l]; s != 0 {
			out = append(out, edge[V]{label: byte(l), child: c.kids[s-1]})
		}
	}
	return out
}

type node256[V any] struct {
	n    uint16
	kids [256]*node[V]
}

func (c *node256[V]) kind() Kind { return Node256 }
func (c *node256[V]) len() int   { return int(c.n) }

func (c *node256[V]) find(label byte) **node[V] {
	if c.kids[label] == nil {
		return nil
	}
	return &c.kids[label]
}

func (c *node256[V]) insert(label byte, child *node[V]) bool {
	if c.kids[label] == nil {
		c.n++
	}
	c.kids[label] = child
	return true
}

func (c *node256[V]) remove(label byte) *node[V] {
	child := c.kids[label]
	if child != nil {
		c.kids[label] = nil
		c.n--
	}
	return child
}

func (c *node256[V]) edges() []edge[V] {
	out := make([]edge[V], 0, c.n)
	for l, child := range c.kids {
		if child != nil {
			out = append(out, edge[V]{label: byte(l), child: child})
		}
	}
	return out
}
