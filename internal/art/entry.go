package art

// Entry is the result of walking the tree toward one key. Lookup, insertion
// and deletion are all performed through it. An Entry is invalidated by any
// mutation of its tree, including its own Insert or Delete.
type Entry[V any] struct {
	tree *Tree[V]
	cur  cursor[V]
	rest []byte
	done bool
}

const errUnterminated = "art: key reached a node without a terminator; keys must be encoded"

func (e *Entry[V]) check() {
	if e.done {
		panic("art: entry used after mutation")
	}
}

// Occupied reports whether the key is present.
func (e *Entry[V]) Occupied() bool {
	e.check()
	return len(e.rest) == 0 && e.cur.complete() && e.cur.target.leaf() != nil
}

// Get returns a reference to the stored value, valid until the next mutation.
func (e *Entry[V]) Get() (*V, bool) {
	if !e.Occupied() {
		return nil, false
	}
	return &e.cur.target.leaf().value, true
}

// Modify calls f with the stored value when the key is present and returns
// the entry for chaining. It does not invalidate the entry.
func (e *Entry[V]) Modify(f func(*V)) *Entry[V] {
	if ref, ok := e.Get(); ok {
		f(ref)
	}
	return e
}

// Insert stores value if the key is absent and returns a reference to it. If
// the key is present the existing value is left alone, its reference is
// returned and the second result is false.
func (e *Entry[V]) Insert(value V) (*V, bool) {
	return e.InsertWith(func() V { return value })
}

// InsertWith is Insert with a lazily built value: f runs only when the key is
// absent.
func (e *Entry[V]) InsertWith(f func() V) (*V, bool) {
	if ref, ok := e.Get(); ok {
		return ref, false
	}
	e.done = true
	var ref *V
	switch {
	case !e.cur.complete():
		ref = e.split(f)
	case e.cur.target.inner() != nil && len(e.rest) > 0:
		ref = e.attach(f)
	default:
		panic(errUnterminated)
	}
	e.tree.size++
	return ref, true
}

// split handles a walk that stopped inside the target's prefix. A new node4
// takes the matched part of the prefix and adopts both the shortened target
// and the new leaf, then replaces the target in its slot.
func (e *Entry[V]) split(f func() V) *V {
	if len(e.rest) == 0 {
		panic(errUnterminated)
	}
	lf := newLeaf(e.rest[1:], f())
	old := e.cur.target
	tail := old.prefix.truncate(e.cur.matched)
	branch := &node[V]{prefix: old.prefix, body: newChildren[V](Node4, nil)}
	old.prefix = newHeader(tail[1:])

	kids := branch.inner()
	kids.insert(tail[0], old)
	kids.insert(e.rest[0], lf)
	*e.cur.slot = branch
	return &lf.leaf().value
}

// attach hangs a new leaf off the target. When the target's tier is full its
// edges move into a node of the next tier which takes over the target's slot.
func (e *Entry[V]) attach(f func() V) *V {
	target := e.cur.target
	kids := target.inner()
	lf := newLeaf(e.rest[1:], f())
	if !kids.insert(e.rest[0], lf) {
		edges := append(kids.edges(), edge[V]{label: e.rest[0], child: lf})
		*e.cur.slot = &node[V]{
			prefix: target.prefix,
			body:   newChildren(grown(kids.kind()), edges),
		}
	}
	return &lf.leaf().value
}

// Delete removes the key and returns its value. A non-root parent left with a
// single edge is merged with that child.
func (e *Entry[V]) Delete() (V, bool) {
	var zero V
	if !e.Occupied() {
		return zero, false
	}
	e.done = true
	lf := e.cur.target.leaf()
	parent := e.cur.parent
	if parent == nil {
		panic("art: leaf has no parent")
	}
	kids := parent.inner()
	kids.remove(e.cur.label)
	e.tree.size--

	if parent != e.tree.root && kids.len() == 1 {
		parent.absorb(kids.edges()[0])
	} else if k := shrunk(kids.kind(), kids.len()); k != kids.kind() {
		parent.body = newChildren(k, kids.edges())
	}
	return lf.value, true
}
