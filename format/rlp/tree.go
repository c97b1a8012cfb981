package rlp

import (
	"github.com/gammazero/deque"

	"github.com/eluv-io/errors-go"
)

// DefaultMaxDepth is the nesting depth limit applied by NewTree unless the
// caller passes its own limit. Nesting depth is attacker-controlled on the
// decode path, so parsing bounds it explicitly instead of letting malicious
// input grow the native call stack without limit.
const DefaultMaxDepth = 1024

// node is one decoded node: a leaf span borrowed from the input buffer, or a
// compound holding its children in a deque for cheap front removal.
type node struct {
	raw      []byte      // the node's full encoding, framing included
	bytes    []byte      // leaf payload
	children deque.Deque // *node children, in encoding order
	compound bool
	leaves   int // leaves remaining in this subtree
}

// Tree is a fully parsed value supporting ordered, destructive leftmost-leaf
// extraction. The actual top-level node is the sole child of an implicit
// root compound, so the extraction step never has to special-case a scalar
// at the root.
//
// All spans returned from the tree are zero-copy slices of the buffer passed
// to NewTree; the caller must keep that buffer alive while any of them is in
// use.
type Tree struct {
	root       *node
	valueCount int
}

// NewTree parses buf into a Tree. It fails if buf is empty, truncated,
// non-canonical, or holds anything beyond one complete top-level value. An
// optional maxDepth overrides DefaultMaxDepth.
func NewTree(buf []byte, maxDepth ...int) (*Tree, error) {
	e := errors.Template("rlp.NewTree", errors.K.Invalid)
	limit := DefaultMaxDepth
	if len(maxDepth) > 0 && maxDepth[0] > 0 {
		limit = maxDepth[0]
	}
	if len(buf) == 0 {
		return nil, e("reason", reasonMalformed, "cause", "empty input")
	}
	p := parser{limit: limit}
	n, rest, err := p.parseNode(buf, 0)
	if err != nil {
		return nil, e(err)
	}
	if len(rest) != 0 {
		return nil, e("reason", reasonTrailing, "trailing", len(rest))
	}
	root := &node{compound: true, leaves: n.leaves}
	root.children.PushBack(n)
	return &Tree{root: root, valueCount: n.leaves}, nil
}

type parser struct {
	limit int
}

// parseNode parses one node at the start of buf and returns it along with
// the unconsumed remainder.
func (p *parser) parseNode(buf []byte, depth int) (*node, []byte, error) {
	if depth > p.limit {
		return nil, nil, errors.NoTrace("rlp.parseNode", errors.K.Invalid,
			"reason", reasonMalformed, "cause", "nesting too deep", "limit", p.limit)
	}
	h, err := parseHead(buf)
	if err != nil {
		return nil, nil, err
	}
	raw := buf[:h.size()]
	payload := buf[h.hsize:h.size()]
	rest := buf[h.size():]
	if !h.compound {
		return &node{raw: raw, bytes: payload, leaves: 1}, rest, nil
	}
	n := &node{raw: raw, compound: true}
	for len(payload) > 0 {
		var child *node
		child, payload, err = p.parseNode(payload, depth+1)
		if err != nil {
			return nil, nil, err
		}
		n.children.PushBack(child)
		n.leaves += child.leaves
	}
	return n, rest, nil
}

// ValueCount returns the number of leaves not yet extracted, whether through
// Next or through a Reader. Zero means the tree is semantically exhausted
// even if empty compound nodes remain. The count includes leaves inside
// compounds detached by BeginCompoundRead, which Next can no longer reach.
func (t *Tree) ValueCount() int {
	return t.valueCount
}

// Next removes and returns the leftmost leaf still reachable in the tree.
// Leaves come back in the exact order the scalars were written during
// encoding: pre-order, left to right, depth first. It returns false once no
// reachable leaf remains; values detached through a Reader (via
// BeginCompoundRead or Proxy) are no longer reachable here and are consumed
// through that Reader instead.
func (t *Tree) Next() ([]byte, bool) {
	b, res := popLeftmost(t.root)
	if res != stepFound {
		return nil, false
	}
	t.valueCount--
	return b, true
}

type step int

const (
	// stepEmpty: this subtree has no leaves left; the caller removes it.
	stepEmpty step = iota
	// stepLeaf: this node is itself a leaf; the caller removes it.
	stepLeaf
	// stepFound: a leaf was located and removed deeper in this subtree.
	stepFound
)

// popLeftmost locates the leftmost leaf under n, removes it from its
// immediate parent, and drops exhausted subtrees encountered on the way.
// Recursion depth is bounded by the parse-time nesting limit.
func popLeftmost(n *node) ([]byte, step) {
	if !n.compound {
		return n.bytes, stepLeaf
	}
	for n.children.Len() > 0 {
		first := n.children.Front().(*node)
		b, res := popLeftmost(first)
		switch res {
		case stepEmpty:
			n.children.PopFront()
		case stepLeaf:
			n.children.PopFront()
			n.leaves--
			return b, stepFound
		case stepFound:
			n.leaves--
			return b, stepFound
		}
	}
	return nil, stepEmpty
}

// Reader consumes the values of one compound in order, one call per value.
// It is the decode-side surface of the value-model bridge: scalars are read
// with NextScalar, nested compounds are entered with BeginCompoundRead, and
// the end of the compound is signaled by exhaustion, not by a token.
type Reader struct {
	tree *Tree
	node *node
}

// Reader returns a Reader scoped to the implicit root, whose single value is
// the top-level node.
func (t *Tree) Reader() *Reader {
	return &Reader{tree: t, node: t.root}
}

// Remaining returns the number of values not yet consumed from this
// compound.
func (r *Reader) Remaining() int {
	return r.node.children.Len()
}

// Done reports whether all values of this compound have been consumed.
func (r *Reader) Done() bool {
	return r.node.children.Len() == 0
}

// NextScalar removes and returns the next value of this compound, which must
// be a scalar.
func (r *Reader) NextScalar() ([]byte, error) {
	e := errors.Template("rlp.NextScalar", errors.K.Invalid)
	if r.Done() {
		return nil, e("reason", reasonExhausted)
	}
	first := r.node.children.Front().(*node)
	if first.compound {
		return nil, e("reason", reasonMalformed, "cause", "expected scalar, found compound")
	}
	r.node.children.PopFront()
	r.node.leaves--
	r.tree.valueCount--
	return first.bytes, nil
}

// BeginCompoundRead removes the next value of this compound, which must
// itself be a compound, and returns a Reader scoped to exactly its values.
// The sub-compound is detached from this reader; its leaves remain counted
// by the tree until consumed through the returned Reader.
func (r *Reader) BeginCompoundRead() (*Reader, error) {
	e := errors.Template("rlp.BeginCompoundRead", errors.K.Invalid)
	if r.Done() {
		return nil, e("reason", reasonExhausted)
	}
	first := r.node.children.Front().(*node)
	if !first.compound {
		return nil, e("reason", reasonMalformed, "cause", "expected compound, found scalar")
	}
	r.node.children.PopFront()
	r.node.leaves -= first.leaves
	return &Reader{tree: r.tree, node: first}, nil
}

// Proxy removes the next value of this compound without interpreting it and
// returns a Proxy over its raw span. The span's leaves no longer count as
// extractable values of this tree.
func (r *Reader) Proxy() (*Proxy, error) {
	if r.Done() {
		return nil, errors.E("rlp.Proxy", errors.K.Invalid, "reason", reasonExhausted)
	}
	first := r.node.children.Front().(*node)
	r.node.children.PopFront()
	r.node.leaves -= first.leaves
	r.tree.valueCount -= first.leaves
	return &Proxy{raw: first.raw, valueCount: first.leaves}, nil
}
