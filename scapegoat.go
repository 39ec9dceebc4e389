package treebench

import (
	"fmt"
	"io"
	"math"
)

// DefaultAlpha is the weight-balance parameter used by NewScapegoatTree.
// Values closer to 0.5 rebuild more aggressively and keep the tree flatter;
// values closer to 1 rebuild rarely and tolerate deeper trees.
const DefaultAlpha = 0.575

// ScapegoatTree keeps the same contract as BSTree but bounds its depth to
// O(log n) by occasionally rebuilding an unbalanced subtree. An insertion
// that lands too deep walks back up its path to the first ancestor whose
// subtree is alpha-weight-unbalanced (the scapegoat) and rebuilds that
// subtree perfectly balanced. Deletions rebuild the whole tree once enough
// of it has been removed since the last full rebuild.
type ScapegoatTree struct {
	arena
	root    nodeIdx
	alpha   float64
	maxSize int
	scratch []nodeIdx
}

var _ Tree = (*ScapegoatTree)(nil)

func NewScapegoatTree() *ScapegoatTree {
	t, _ := NewScapegoatTreeAlpha(DefaultAlpha)
	return t
}

// NewScapegoatTreeAlpha builds a tree with an explicit weight-balance
// parameter; alpha must lie strictly between 0.5 and 1.
func NewScapegoatTreeAlpha(alpha float64) (*ScapegoatTree, error) {
	if alpha <= 0.5 || alpha >= 1 {
		return nil, fmt.Errorf("alpha must be in (0.5, 1), got %g", alpha)
	}
	return &ScapegoatTree{arena: newArena(), root: nilIdx, alpha: alpha}, nil
}

// Add reports the depth the node was inserted at; a rebuild triggered by the
// same insertion may move it higher immediately afterwards.
func (t *ScapegoatTree) Add(key int64, payload []byte) (NodeHandle, int, error) {
	i, depth, err := t.insertFrom(&t.root, key, payload)
	if err != nil {
		return NodeHandle{}, 0, err
	}
	if t.size > t.maxSize {
		t.maxSize = t.size
	}
	if depth-1 > t.depthLimit(t.size) {
		t.rebalanceFrom(i)
	}
	return NodeHandle{&t.arena, i}, depth, nil
}

func (t *ScapegoatTree) Find(key int64) (NodeHandle, bool) {
	i := t.findFrom(t.root, key)
	if i == nilIdx {
		return NodeHandle{}, false
	}
	return NodeHandle{&t.arena, i}, true
}

func (t *ScapegoatTree) DeleteKey(key int64) bool {
	i := t.findFrom(t.root, key)
	if i == nilIdx {
		return false
	}
	t.deleteAt(&t.root, i)
	if float64(t.size) < t.alpha*float64(t.maxSize) {
		if t.root != nilIdx {
			t.rebuild(t.root)
		}
		t.maxSize = t.size
	}
	return true
}

func (t *ScapegoatTree) MaxDepth() int {
	return t.maxDepthFrom(t.root)
}

func (t *ScapegoatTree) InOrder(fn func(key int64, payload []byte) bool) {
	t.inOrderFrom(t.root, fn)
}

func (t *ScapegoatTree) Print(w io.Writer) {
	t.printFrom(t.root, w)
}

func (t *ScapegoatTree) Clear() {
	t.reset()
	t.root = nilIdx
	t.maxSize = 0
	t.scratch = nil
}

// depthLimit is the maximum tolerated edge count from root to any node:
// floor(log(n) / log(1/alpha)).
func (t *ScapegoatTree) depthLimit(n int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Floor(math.Log(float64(n)) / math.Log(1/t.alpha)))
}

// rebalanceFrom walks up from a too-deep node counting subtree sizes until
// it finds the scapegoat: the first ancestor where the path child holds more
// than an alpha share of the subtree. A too-deep node guarantees one exists
// on its path; the root is the fallback.
func (t *ScapegoatTree) rebalanceFrom(i nodeIdx) {
	childSize := 1
	for p := t.at(i).parent; p != nilIdx; p = t.at(i).parent {
		pn := t.at(p)
		sibling := pn.left
		if sibling == i {
			sibling = pn.right
		}
		parentSize := childSize + t.subtreeSizeFrom(sibling) + 1
		if float64(childSize) > t.alpha*float64(parentSize) {
			t.rebuild(p)
			return
		}
		childSize = parentSize
		i = p
	}
	t.rebuild(t.root)
}

// rebuild replaces the subtree rooted at i with a perfectly balanced one
// holding the same nodes. Nodes are relinked in place; no slots move.
func (t *ScapegoatTree) rebuild(i nodeIdx) {
	p := t.at(i).parent
	wasLeft := p != nilIdx && t.at(p).left == i
	t.scratch = t.flattenFrom(i, t.scratch[:0])
	sub := t.buildBalanced(t.scratch, p)
	switch {
	case p == nilIdx:
		t.root = sub
	case wasLeft:
		t.at(p).left = sub
	default:
		t.at(p).right = sub
	}
}

// buildBalanced roots the sorted run at its median and recurses on the
// halves. Recursion depth is logarithmic in the run length.
func (t *ScapegoatTree) buildBalanced(idxs []nodeIdx, parent nodeIdx) nodeIdx {
	if len(idxs) == 0 {
		return nilIdx
	}
	m := len(idxs) / 2
	i := idxs[m]
	n := t.at(i)
	n.parent = parent
	n.left = t.buildBalanced(idxs[:m], i)
	n.right = t.buildBalanced(idxs[m+1:], i)
	return i
}
