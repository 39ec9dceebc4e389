package treebench

import (
	"errors"
	"io"
)

// ErrKeyExists is returned by Add when the key is already present in the
// tree. The tree is left unchanged.
var ErrKeyExists = errors.New("key already exists")

// Tree is the contract the benchmark runner drives. Both the plain BST and
// the scapegoat variant implement it and are interchangeable from the
// runner's point of view.
//
// Node handles returned by Add and Find are non-owning borrows. They stay
// valid only until the next call that mutates the tree (DeleteKey, Clear, or
// a rebalancing Add); callers must not retain them across mutations.
type Tree interface {
	// Add inserts key with its payload and reports the depth at which the
	// new node ended up (the root is depth 1). Returns ErrKeyExists if the
	// key is already present; the tree is unchanged in that case.
	Add(key int64, payload []byte) (NodeHandle, int, error)

	// Find returns a handle to the node holding key, or ok=false if the key
	// is absent. Never mutates the tree.
	Find(key int64) (NodeHandle, bool)

	// DeleteKey removes the node holding key and releases its payload.
	// Returns false, with no structural change, if the key is absent.
	DeleteKey(key int64) bool

	// MaxDepth reports the depth of the deepest node, with the root at
	// depth 1. An empty tree reports 0.
	MaxDepth() int

	// Size reports the number of nodes in the tree.
	Size() int

	// InOrder visits every key in ascending order. The traversal stops
	// early if fn returns false.
	InOrder(fn func(key int64, payload []byte) bool)

	// Print writes a pre-order dump (self, left subtree, right subtree) of
	// node identities and link structure to w. The line format is
	// diagnostic only; the traversal order is the contract.
	Print(w io.Writer)

	// Clear releases every node and its payload. Idempotent.
	Clear()
}
