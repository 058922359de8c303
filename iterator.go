package bst

import (
	"iter"

	"github.com/ajwerner/bst/internal/arena"
)

// Iterator is responsible for search and traversal within a Tree. It is not
// safe to continue using an Iterator after modifications are made to the
// tree. If modifications are made, create a new Iterator.
type Iterator[T any] struct {
	t   *Tree[T]
	cur arena.ID
}

// MakeIter returns a new, unpositioned Iterator.
func (t *Tree[T]) MakeIter() Iterator[T] {
	return Iterator[T]{t: t, cur: arena.Nil}
}

// All returns an iterator over the items in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.MakeIter()
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

// First seeks to the smallest item in the tree.
func (i *Iterator[T]) First() {
	i.cur = arena.Nil
	if i.t.root != arena.Nil {
		i.cur = i.t.minimum(i.t.root)
	}
}

// Last seeks to the largest item in the tree.
func (i *Iterator[T]) Last() {
	i.cur = arena.Nil
	if i.t.root != arena.Nil {
		i.cur = i.t.maximum(i.t.root)
	}
}

// SeekGE seeks to the first item greater-than or equal to the provided
// item.
func (i *Iterator[T]) SeekGE(item T) {
	i.cur = arena.Nil
	for n := i.t.root; n != arena.Nil; {
		c := i.t.cmp(item, i.t.node(n).item)
		if c == 0 {
			i.cur = n
			return
		}
		if c < 0 {
			i.cur = n
			n = i.t.node(n).left
		} else {
			n = i.t.node(n).right
		}
	}
}

// SeekLT seeks to the last item less-than the provided item.
func (i *Iterator[T]) SeekLT(item T) {
	i.cur = arena.Nil
	for n := i.t.root; n != arena.Nil; {
		if i.t.cmp(item, i.t.node(n).item) > 0 {
			i.cur = n
			n = i.t.node(n).right
		} else {
			n = i.t.node(n).left
		}
	}
}

// Next positions the Iterator to the item immediately following
// its current position.
func (i *Iterator[T]) Next() {
	if i.cur != arena.Nil {
		i.cur = i.t.successor(i.cur)
	}
}

// Prev positions the Iterator to the item immediately preceding
// its current position.
func (i *Iterator[T]) Prev() {
	if i.cur != arena.Nil {
		i.cur = i.t.predecessor(i.cur)
	}
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[T]) Valid() bool {
	return i.cur != arena.Nil
}

// Cur returns the item at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[T]) Cur() T {
	return i.t.node(i.cur).item
}
