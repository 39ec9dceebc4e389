package treebench

import "io"

// BSTree is the unbalanced binary search tree. Its shape is entirely
// determined by insertion order; sorted insertion degenerates it into a
// chain, which is exactly the behavior the benchmark measures.
type BSTree struct {
	arena
	root nodeIdx
}

var _ Tree = (*BSTree)(nil)

func NewBSTree() *BSTree {
	return &BSTree{arena: newArena(), root: nilIdx}
}

func (t *BSTree) Add(key int64, payload []byte) (NodeHandle, int, error) {
	i, depth, err := t.insertFrom(&t.root, key, payload)
	if err != nil {
		return NodeHandle{}, 0, err
	}
	return NodeHandle{&t.arena, i}, depth, nil
}

func (t *BSTree) Find(key int64) (NodeHandle, bool) {
	i := t.findFrom(t.root, key)
	if i == nilIdx {
		return NodeHandle{}, false
	}
	return NodeHandle{&t.arena, i}, true
}

func (t *BSTree) DeleteKey(key int64) bool {
	i := t.findFrom(t.root, key)
	if i == nilIdx {
		return false
	}
	t.deleteAt(&t.root, i)
	return true
}

func (t *BSTree) MaxDepth() int {
	return t.maxDepthFrom(t.root)
}

func (t *BSTree) InOrder(fn func(key int64, payload []byte) bool) {
	t.inOrderFrom(t.root, fn)
}

func (t *BSTree) Print(w io.Writer) {
	t.printFrom(t.root, w)
}

func (t *BSTree) Clear() {
	t.reset()
	t.root = nilIdx
}
