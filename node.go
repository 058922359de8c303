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

package bst

import "github.com/ajwerner/bst/internal/arena"

type node[T any] struct {
	item                T
	left, right, parent arena.ID
}

func (t *Tree[T]) node(id arena.ID) *node[T] {
	return t.nodes.Get(id)
}

// seek returns the node holding an item equal to item, or arena.Nil.
func (t *Tree[T]) seek(item T) arena.ID {
	cur := t.root
	for cur != arena.Nil {
		n := t.node(cur)
		c := t.cmp(item, n.item)
		switch {
		case c == 0:
			return cur
		case c > 0:
			cur = n.right
		default:
			cur = n.left
		}
	}
	return arena.Nil
}

func (t *Tree[T]) minimum(id arena.ID) arena.ID {
	for t.node(id).left != arena.Nil {
		id = t.node(id).left
	}
	return id
}

func (t *Tree[T]) maximum(id arena.ID) arena.ID {
	for t.node(id).right != arena.Nil {
		id = t.node(id).right
	}
	return id
}

// successor returns the node following id in order, or arena.Nil.
func (t *Tree[T]) successor(id arena.ID) arena.ID {
	if r := t.node(id).right; r != arena.Nil {
		return t.minimum(r)
	}
	p := t.node(id).parent
	for p != arena.Nil && t.node(p).right == id {
		id, p = p, t.node(p).parent
	}
	return p
}

// predecessor returns the node preceding id in order, or arena.Nil.
func (t *Tree[T]) predecessor(id arena.ID) arena.ID {
	if l := t.node(id).left; l != arena.Nil {
		return t.maximum(l)
	}
	p := t.node(id).parent
	for p != arena.Nil && t.node(p).left == id {
		id, p = p, t.node(p).parent
	}
	return p
}

// replace puts repl, which may be arena.Nil, in old's place under old's
// parent, or at the root. old's own links are left untouched.
func (t *Tree[T]) replace(old, repl arena.ID) {
	parent := t.node(old).parent
	switch {
	case parent == arena.Nil:
		t.root = repl
	case t.node(parent).left == old:
		t.node(parent).left = repl
	default:
		t.node(parent).right = repl
	}
	if repl != arena.Nil {
		t.node(repl).parent = parent
	}
}

func (t *Tree[T]) inorder(id arena.ID, fn func(arena.ID)) {
	if id == arena.Nil {
		return
	}
	n := t.node(id)
	t.inorder(n.left, fn)
	fn(id)
	t.inorder(n.right, fn)
}

func (t *Tree[T]) preorder(id arena.ID, fn func(arena.ID)) {
	if id == arena.Nil {
		return
	}
	n := t.node(id)
	fn(id)
	t.preorder(n.left, fn)
	t.preorder(n.right, fn)
}

// postorder visits both subtrees before the node itself, so fn may release
// the node it is handed.
func (t *Tree[T]) postorder(id arena.ID, fn func(arena.ID)) {
	if id == arena.Nil {
		return
	}
	left, right := t.node(id).left, t.node(id).right
	t.postorder(left, fn)
	t.postorder(right, fn)
	fn(id)
}

func (t *Tree[T]) height(id arena.ID) int {
	if id == arena.Nil {
		return 0
	}
	return 1 + max(t.height(t.node(id).left), t.height(t.node(id).right))
}
