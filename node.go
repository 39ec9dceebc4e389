package treebench

import (
	"fmt"
	"io"
)

type nodeIdx = int32

const nilIdx nodeIdx = -1

// node is a tree entry. Child and parent links are arena indices, not
// pointers, so deleting a node can never leave a dangling pointer behind;
// a stale index resolves to a free or reused slot, never to unmapped memory.
type node struct {
	key     int64
	payload []byte
	left    nodeIdx
	right   nodeIdx
	parent  nodeIdx
}

// arena owns the backing storage for all nodes of one tree. Released slots
// are chained into a free list through the left link and reused before the
// slice grows.
type arena struct {
	nodes []node
	free  nodeIdx
	size  int
}

func newArena() arena {
	return arena{free: nilIdx}
}

func (a *arena) at(i nodeIdx) *node {
	return &a.nodes[i]
}

// alloc returns the index of a fresh node holding key and payload. May grow
// the backing slice, so any *node obtained before the call is invalid after.
func (a *arena) alloc(key int64, payload []byte) nodeIdx {
	var i nodeIdx
	if a.free != nilIdx {
		i = a.free
		a.free = a.nodes[i].left
	} else {
		a.nodes = append(a.nodes, node{})
		i = nodeIdx(len(a.nodes) - 1)
	}
	a.nodes[i] = node{
		key:     key,
		payload: payload,
		left:    nilIdx,
		right:   nilIdx,
		parent:  nilIdx,
	}
	a.size++
	return i
}

// release returns slot i to the free list and drops its payload.
func (a *arena) release(i nodeIdx) {
	a.nodes[i] = node{left: a.free, right: nilIdx, parent: nilIdx}
	a.free = i
	a.size--
}

// reset drops the entire node graph at once. Children are unreachable the
// moment the slice is dropped, so no per-node walk is needed.
func (a *arena) reset() {
	a.nodes = nil
	a.free = nilIdx
	a.size = 0
}

func (a *arena) Size() int {
	return a.size
}

// findFrom descends from root comparing keys. Returns nilIdx when absent.
func (a *arena) findFrom(root nodeIdx, key int64) nodeIdx {
	cur := root
	for cur != nilIdx {
		n := a.at(cur)
		switch {
		case key == n.key:
			return cur
		case key < n.key:
			cur = n.left
		default:
			cur = n.right
		}
	}
	return nilIdx
}

// insertFrom attaches a new node under the tree rooted at *root, keeping BST
// order, and reports the depth it ended up at (root is depth 1).
func (a *arena) insertFrom(root *nodeIdx, key int64, payload []byte) (nodeIdx, int, error) {
	if *root == nilIdx {
		*root = a.alloc(key, payload)
		return *root, 1, nil
	}
	cur := *root
	depth := 1
	for {
		n := a.at(cur)
		if key == n.key {
			return nilIdx, 0, ErrKeyExists
		}
		depth++
		if key < n.key {
			if n.left == nilIdx {
				ni := a.alloc(key, payload)
				a.at(ni).parent = cur
				a.at(cur).left = ni
				return ni, depth, nil
			}
			cur = n.left
		} else {
			if n.right == nilIdx {
				ni := a.alloc(key, payload)
				a.at(ni).parent = cur
				a.at(cur).right = ni
				return ni, depth, nil
			}
			cur = n.right
		}
	}
}

// minFrom descends left from i until there is no left child.
func (a *arena) minFrom(i nodeIdx) nodeIdx {
	for a.at(i).left != nilIdx {
		i = a.at(i).left
	}
	return i
}

// splice replaces node i with child (possibly nilIdx) in i's parent slot.
// The root has no parent, so deleting it updates *root directly instead of
// relinking through a parent that does not exist.
func (a *arena) splice(root *nodeIdx, i, child nodeIdx) {
	p := a.at(i).parent
	if child != nilIdx {
		a.at(child).parent = p
	}
	if p == nilIdx {
		*root = child
		return
	}
	pn := a.at(p)
	if pn.left == i {
		pn.left = child
	} else {
		pn.right = child
	}
}

// deleteAt removes node i from the tree rooted at *root. A node with two
// children is not detached itself: the in-order successor's key and payload
// are moved into it (releasing the old payload) and the successor, which has
// no left child, is spliced out of its original slot. Exactly one arena slot
// is freed per call.
func (a *arena) deleteAt(root *nodeIdx, i nodeIdx) {
	n := a.at(i)
	if n.left != nilIdx && n.right != nilIdx {
		s := a.minFrom(n.right)
		sn := a.at(s)
		n.key = sn.key
		n.payload = sn.payload
		sn.payload = nil
		i, n = s, sn
	}
	child := n.left
	if child == nilIdx {
		child = n.right
	}
	a.splice(root, i, child)
	a.release(i)
}

// maxDepthFrom walks the whole subtree with an explicit stack. A degenerate
// chain has depth equal to its size, which would overflow the goroutine
// stack if this recursed.
func (a *arena) maxDepthFrom(root nodeIdx) int {
	if root == nilIdx {
		return 0
	}
	type frame struct {
		i nodeIdx
		d int
	}
	max := 0
	stack := []frame{{root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.d > max {
			max = f.d
		}
		n := a.at(f.i)
		if n.left != nilIdx {
			stack = append(stack, frame{n.left, f.d + 1})
		}
		if n.right != nilIdx {
			stack = append(stack, frame{n.right, f.d + 1})
		}
	}
	return max
}

// inOrderFrom visits keys in ascending order, stopping early if fn returns
// false. Iterative for the same degenerate-depth reason as maxDepthFrom.
func (a *arena) inOrderFrom(root nodeIdx, fn func(key int64, payload []byte) bool) {
	var stack []nodeIdx
	cur := root
	for cur != nilIdx || len(stack) > 0 {
		for cur != nilIdx {
			stack = append(stack, cur)
			cur = a.at(cur).left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := a.at(cur)
		if !fn(n.key, n.payload) {
			return
		}
		cur = n.right
	}
}

// flattenFrom collects the subtree's node indices in ascending key order.
func (a *arena) flattenFrom(root nodeIdx, out []nodeIdx) []nodeIdx {
	var stack []nodeIdx
	cur := root
	for cur != nilIdx || len(stack) > 0 {
		for cur != nilIdx {
			stack = append(stack, cur)
			cur = a.at(cur).left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		cur = a.at(cur).right
	}
	return out
}

// subtreeSizeFrom counts the nodes of the subtree rooted at i.
func (a *arena) subtreeSizeFrom(i nodeIdx) int {
	if i == nilIdx {
		return 0
	}
	cnt := 0
	stack := []nodeIdx{i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cnt++
		n := a.at(cur)
		if n.left != nilIdx {
			stack = append(stack, n.left)
		}
		if n.right != nilIdx {
			stack = append(stack, n.right)
		}
	}
	return cnt
}

// printFrom dumps the subtree pre-order: self, then left, then right.
func (a *arena) printFrom(root nodeIdx, w io.Writer) {
	if root == nilIdx {
		return
	}
	stack := []nodeIdx{root}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := a.at(i)
		fmt.Fprintf(w, "[%d] key=%d (p:%d l:%d r:%d)\n", i, n.key, n.parent, n.left, n.right)
		if n.right != nilIdx {
			stack = append(stack, n.right)
		}
		if n.left != nilIdx {
			stack = append(stack, n.left)
		}
	}
}

// NodeHandle is a non-owning borrow of a tree node, valid only until the
// next call that mutates the tree.
type NodeHandle struct {
	a   *arena
	idx nodeIdx
}

// Valid reports whether the handle refers to a node.
func (h NodeHandle) Valid() bool {
	return h.a != nil && h.idx != nilIdx
}

// Key returns the node's key. The handle must be valid.
func (h NodeHandle) Key() int64 {
	return h.a.at(h.idx).key
}

// Payload returns the node's payload, still owned by the tree.
func (h NodeHandle) Payload() []byte {
	return h.a.at(h.idx).payload
}

// Parent returns a handle to the node's parent; invalid for the root.
func (h NodeHandle) Parent() NodeHandle {
	return NodeHandle{h.a, h.a.at(h.idx).parent}
}

// Left returns a handle to the node's left child; invalid when absent.
func (h NodeHandle) Left() NodeHandle {
	return NodeHandle{h.a, h.a.at(h.idx).left}
}

// Right returns a handle to the node's right child; invalid when absent.
func (h NodeHandle) Right() NodeHandle {
	return NodeHandle{h.a, h.a.at(h.idx).right}
}
