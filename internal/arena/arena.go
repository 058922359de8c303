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

// Package arena stores fixed-shape values in a single slice and hands out
// stable integer IDs for them. Released slots are zeroed and recycled through
// a free list, so IDs of live values never move.
package arena

// ID addresses a slot in an Arena.
type ID int32

// Nil is the ID that never refers to a slot.
const Nil ID = -1

// Arena is a slab of N values addressed by ID.
//
// Pointers returned by Get remain valid until the next call to Alloc, which
// may grow the backing slice.
type Arena[N any] struct {
	slots []N
	free  []ID
}

// Alloc returns the ID of a zeroed slot and a pointer to it.
func (a *Arena[N]) Alloc() (ID, *N) {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		return id, &a.slots[id]
	}
	var zero N
	a.slots = append(a.slots, zero)
	id := ID(len(a.slots) - 1)
	return id, &a.slots[id]
}

// Get returns the slot for id. It is illegal to call Get with Nil or with an
// ID that has been freed.
func (a *Arena[N]) Get(id ID) *N {
	return &a.slots[id]
}

// Free zeroes the slot and makes it available to a later Alloc.
func (a *Arena[N]) Free(id ID) {
	var zero N
	a.slots[id] = zero
	a.free = append(a.free, id)
}

// Live returns the number of allocated, unfreed slots.
func (a *Arena[N]) Live() int {
	return len(a.slots) - len(a.free)
}

// Reset drops every slot. Memory held by the backing slices is kept for
// reuse but cleared so that it no longer references released values.
func (a *Arena[N]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.free = a.free[:0]
}
