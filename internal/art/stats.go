package art

import (
	"fmt"
	"io"
	"strings"
)

// Stats describes the shape of a tree.
type Stats struct {
	Leaves      int `json:"leaves"`
	Node4s      int `json:"node4s"`
	Node16s     int `json:"node16s"`
	Node48s     int `json:"node48s"`
	Node256s    int `json:"node256s"`
	PrefixBytes int `json:"prefix_bytes"`
	MaxDepth    int `json:"max_depth"`
}

func (t *Tree[V]) Stats() Stats {
	var s Stats
	if t.root != nil {
		t.root.stats(&s, 0)
	}
	return s
}

func (n *node[V]) stats(s *Stats, depth int) {
	s.PrefixBytes += n.prefix.Len()
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	kids := n.inner()
	if kids == nil {
		s.Leaves++
		return
	}
	switch kids.kind() {
	case Node4:
		s.Node4s++
	case Node16:
		s.Node16s++
	case Node48:
		s.Node48s++
	case Node256:
		s.Node256s++
	}
	for _, e := range kids.edges() {
		e.child.stats(s, depth+1)
	}
}

// Dump writes an indented view of the tree, one node per line.
func (t *Tree[V]) Dump(w io.Writer) error {
	var b strings.Builder
	if t.root != nil {
		t.root.dump(&b, "", 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (n *node[V]) dump(b *strings.Builder, edge string, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(edge)
	kids := n.inner()
	if kids == nil {
		fmt.Fprintf(b, "leaf %q = %v\n", n.prefix.bytes(), n.leaf().value)
		return
	}
	fmt.Fprintf(b, "%s %q\n", kids.kind(), n.prefix.bytes())
	for _, e := range kids.edges() {
		e.child.dump(b, fmt.Sprintf("%q: ", e.label), indent+1)
	}
}
