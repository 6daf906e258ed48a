// Package rc implements the two shared-ownership cell disciplines used to
// back interior nodes of a persistent tree: an atomically-refcounted cell
// safe to clone across goroutines, and a plain, non-atomic cell cheaper to
// bump on a single thread.
package rc

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// A Cell's refcount only ever grows. It starts at 1 and is bumped every time
// a reference to the cell is duplicated into a second parent via Share. It
// is never decremented: once a node becomes reachable from two places, it is
// conservatively treated as shared forever after. This is sound for the
// fast-path question a Cell exists to answer ("can the payload be mutated in
// place?") because the count never drifting back down only ever causes an
// unnecessary clone, never an in-place mutation of state another owner can
// observe. Callers that want to intentionally take out a second handle on a
// value must call Share explicitly; a bare language-level copy of whatever
// struct embeds a *Cell does not notify the cell and will not be reflected
// in the count.

import "sync/atomic"

// Discipline selects the refcount primitive a Cell uses.
type Discipline int

const (
	// Shared uses an atomic counter; cells may be cloned across goroutines.
	Shared Discipline = iota
	// Local uses a plain counter; cells must stay on one goroutine.
	Local
)

type counter interface {
	bump() int32
	load() int32
}

type atomicCounter struct {
	n atomic.Int32
}

func (c *atomicCounter) bump() int32 { return c.n.Add(1) }
func (c *atomicCounter) load() int32 { return c.n.Load() }

type plainCounter struct {
	n int32
}

func (c *plainCounter) bump() int32 { c.n++; return c.n }
func (c *plainCounter) load() int32 { return c.n }

// Cell is a shared-ownership cell around a value of type T.
type Cell[T any] struct {
	value T
	rc    counter
}

// New wraps v in a freshly-owned cell (refcount 1) using the given discipline.
func New[T any](d Discipline, v T) *Cell[T] {
	c := &Cell[T]{value: v}
	if d == Shared {
		c.rc = &atomicCounter{}
	} else {
		c.rc = &plainCounter{}
	}
	c.rc.bump()
	return c
}

// Get returns the wrapped value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Unique reports whether this cell has exactly one owner, meaning its
// payload may be mutated in place without affecting any other handle.
func (c *Cell[T]) Unique() bool {
	return c.rc.load() == 1
}

// Share records that the cell is now referenced from one more place and
// returns the same cell. It is the only operation that can turn a unique
// cell into a shared one.
func (c *Cell[T]) Share() *Cell[T] {
	c.rc.bump()
	return c
}
