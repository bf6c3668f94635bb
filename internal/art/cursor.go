package art

// cursor records where a walk from the root stopped.
type cursor[V any] struct {
	depth   int       // key bytes consumed before target's prefix
	parent  *node[V]  // nil when target is the root
	label   byte      // edge parent -> target
	slot    **node[V] // the slot owning target
	target  *node[V]
	matched int // bytes of target's prefix that matched
}

// complete reports whether the walk matched the target's whole prefix.
func (c *cursor[V]) complete() bool {
	return c.matched == c.target.prefix.Len()
}

// seek walks from root consuming prefix bytes and edge labels of key. It
// stops on a prefix mismatch, when key runs out, or when no edge carries the
// next byte. The unconsumed rest of key is returned alongside the cursor.
func seek[V any](root **node[V], key []byte) (cursor[V], []byte) {
	c := cursor[V]{slot: root, target: *root}
	for {
		c.matched = c.target.prefix.match(key[c.depth:])
		pos := c.depth + c.matched
		if !c.complete() || pos == len(key) {
			return c, key[pos:]
		}
		kids := c.target.inner()
		if kids == nil {
			return c, key[pos:]
		}
		next := kids.find(key[pos])
		if next == nil {
			return c, key[pos:]
		}
		c.parent = c.target
		c.label = key[pos]
		c.slot = next
		c.target = *next
		c.depth = pos + 1
	}
}
