// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package bst implements an unbalanced binary search tree ordered by a
// caller-supplied three-way comparison function.
//
// The tree performs no rebalancing: its shape depends only on the order of
// insertions and deletions, and inserting sorted input degrades it into a
// list. Nodes live in an arena and refer to their children and parent by
// index, which keeps parent access O(1) without pointer cycles.
package bst

import (
	"fmt"
	"strings"

	"github.com/ajwerner/bst/internal/arena"
)

// Tree is an unbalanced binary search tree of T.
//
// A Tree must be created with New. It is not safe for concurrent use; callers
// sharing a Tree between goroutines must serialize every operation,
// including reads.
type Tree[T any] struct {
	root    arena.ID
	length  int
	cmp     func(a, b T) int
	destroy func(T)
	nodes   arena.Arena[node[T]]
}

// New returns an empty tree ordered by cmp. cmp must define a strict total
// order in which items comparing 0 are considered equal.
func New[T any](cmp func(a, b T) int, opts ...Option[T]) *Tree[T] {
	if cmp == nil {
		panic("bst: nil comparison function")
	}
	t := &Tree[T]{
		root: arena.Nil,
		cmp:  cmp,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert adds item to the tree. If an item comparing equal to item is already
// present, Insert returns false and the tree does not retain item; disposing
// of it is up to the caller.
func (t *Tree[T]) Insert(item T) bool {
	if t.seek(item) != arena.Nil {
		return false
	}
	parent := arena.Nil
	for cur := t.root; cur != arena.Nil; {
		parent = cur
		if t.cmp(item, t.node(cur).item) > 0 {
			cur = t.node(cur).right
		} else {
			cur = t.node(cur).left
		}
	}
	id, n := t.nodes.Alloc()
	n.item = item
	n.left, n.right, n.parent = arena.Nil, arena.Nil, parent
	switch {
	case parent == arena.Nil:
		t.root = id
	case t.cmp(item, t.node(parent).item) > 0:
		t.node(parent).right = id
	default:
		t.node(parent).left = id
	}
	t.length++
	return true
}

// Search returns the stored item comparing equal to item.
func (t *Tree[T]) Search(item T) (_ T, found bool) {
	if id := t.seek(item); id != arena.Nil {
		return t.node(id).item, true
	}
	var zero T
	return zero, false
}

// Delete removes the item comparing equal to item and hands it to the
// destructor, if one was configured. It returns false if no such item exists.
func (t *Tree[T]) Delete(item T) (removed bool) {
	if t.length == 0 {
		return false
	}
	id := t.seek(item)
	if id == arena.Nil {
		return false
	}
	t.unlink(id)
	t.release(id)
	return true
}

// unlink detaches the node from the tree, restoring both the order and the
// parent links around it. The node itself is left for release.
func (t *Tree[T]) unlink(id arena.ID) {
	n := t.node(id)
	switch {
	case n.left == arena.Nil:
		//     P            P
		//     |            |
		//     X     =>     R
		//      \
		//       R
		t.replace(id, n.right)

	case n.right == arena.Nil:
		//     P            P
		//     |            |
		//     X     =>     L
		//    /
		//   L
		t.replace(id, n.left)

	default:
		// The successor S is the left-most node of the right subtree and so
		// has no left child. When S sits deeper than X's right child, first
		// hoist it to the top of that subtree:
		//
		//       X               X                 S
		//      / \             / \               / \
		//     L   R           L   S             L   R
		//        /     =>          \     =>        /
		//       S                   R             Y
		//        \                 /
		//         Y               Y
		succ := t.minimum(n.right)
		s := t.node(succ)
		if s.parent != id {
			t.replace(succ, s.right)
			s.right = n.right
			t.node(s.right).parent = succ
		}
		t.replace(id, succ)
		s.left = n.left
		t.node(s.left).parent = succ
	}
	n.left, n.right, n.parent = arena.Nil, arena.Nil, arena.Nil
}

// release is the single exit for every removed node: the destructor sees the
// item exactly once, after which the slot is recycled.
func (t *Tree[T]) release(id arena.ID) {
	if t.destroy != nil {
		t.destroy(t.node(id).item)
	}
	t.nodes.Free(id)
	t.length--
}

// Walk calls fn for every item in ascending order. fn must not modify the
// tree.
func (t *Tree[T]) Walk(fn func(item T)) {
	t.inorder(t.root, func(id arena.ID) { fn(t.node(id).item) })
}

// WalkPreOrder calls fn for every item, visiting each node before its left
// and then its right subtree. fn must not modify the tree.
func (t *Tree[T]) WalkPreOrder(fn func(item T)) {
	t.preorder(t.root, func(id arena.ID) { fn(t.node(id).item) })
}

// WalkPostOrder calls fn for every item, visiting each node after its left
// and then its right subtree. fn must not modify the tree.
func (t *Tree[T]) WalkPostOrder(fn func(item T)) {
	t.postorder(t.root, func(id arena.ID) { fn(t.node(id).item) })
}

// Reset removes all items from the tree, passing each one to the destructor.
// The tree may be reused afterwards.
func (t *Tree[T]) Reset() {
	if t.destroy != nil {
		t.postorder(t.root, func(id arena.ID) { t.destroy(t.node(id).item) })
	}
	t.nodes.Reset()
	t.root = arena.Nil
	t.length = 0
}

// Len returns the number of items currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Height returns the number of nodes on the longest path from the root to a
// leaf.
func (t *Tree[T]) Height() int {
	return t.height(t.root)
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[T]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	t.writeString(&b, t.root)
	return b.String()
}

func (t *Tree[T]) writeString(b *strings.Builder, id arena.ID) {
	n := t.node(id)
	if n.left == arena.Nil && n.right == arena.Nil {
		fmt.Fprintf(b, "%v", n.item)
		return
	}
	b.WriteString("(")
	if n.left != arena.Nil {
		t.writeString(b, n.left)
	}
	b.WriteString(")")
	fmt.Fprintf(b, "%v", n.item)
	b.WriteString("(")
	if n.right != arena.Nil {
		t.writeString(b, n.right)
	}
	b.WriteString(")")
}
