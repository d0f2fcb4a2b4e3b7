// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package proptest

import (
	"fmt"

	"gvisor.dev/ilink/pkg/ilist"
	"gvisor.dev/ilink/pkg/islist"
)

// chain is a chain under test. Positions index model, the expected order of
// payloads before the operation.
type chain interface {
	locate(model []int, pos int, hops uint) (int, bool)
	// measure with to < 0 measures to the end of the chain.
	measure(model []int, from, to int) int
	insert(model []int, pos int, vals []int)
	remove(model []int, p, q int)
	swap(model []int, a0, a1, b0, b1 int)
	reverse(model []int, p, q int)
	verify(model []int) error
}

type dnode struct {
	ilist.Entry[*dnode]
	val int
}

type bidiChain struct {
	nodes map[int]*dnode
}

func newBidiChain(n int) *bidiChain {
	c := &bidiChain{nodes: make(map[int]*dnode, n)}
	var prev *dnode
	for i := 0; i < n; i++ {
		e := c.node(i)
		if prev != nil {
			ilist.Insert(prev, e, e)
		}
		prev = e
	}
	return c
}

func (c *bidiChain) node(val int) *dnode {
	e := &dnode{val: val}
	c.nodes[val] = e
	return e
}

func (c *bidiChain) at(model []int, pos int) *dnode {
	return c.nodes[model[pos]]
}

func (c *bidiChain) locate(model []int, pos int, hops uint) (int, bool) {
	e, ok := ilist.Locate(c.at(model, pos), hops, ilist.Forward)
	if !ok {
		return 0, false
	}
	return e.val, true
}

func (c *bidiChain) measure(model []int, from, to int) int {
	if to < 0 {
		return ilist.Measure(c.at(model, from), nil, ilist.Forward)
	}
	return ilist.Measure(c.at(model, from), c.at(model, to), ilist.Forward)
}

func (c *bidiChain) insert(model []int, pos int, vals []int) {
	first := c.node(vals[0])
	last := first
	for _, v := range vals[1:] {
		e := c.node(v)
		ilist.Insert(last, e, e)
		last = e
	}
	ilist.Insert(c.at(model, pos), first, last)
}

func (c *bidiChain) remove(model []int, p, q int) {
	ilist.Remove(c.at(model, p), c.at(model, q))
}

func (c *bidiChain) swap(model []int, a0, a1, b0, b1 int) {
	ilist.Swap(c.at(model, a0), c.at(model, a1), c.at(model, b0), c.at(model, b1))
}

func (c *bidiChain) reverse(model []int, p, q int) {
	ilist.Reverse(c.at(model, p), c.at(model, q))
}

func (c *bidiChain) verify(model []int) error {
	head := c.at(model, 0)
	if p := head.Prev(); p != nil {
		return fmt.Errorf("head %d has predecessor %d", head.val, p.val)
	}
	i := 0
	for e := head; e != nil; e = e.Next() {
		if i >= len(model) {
			return fmt.Errorf("chain is longer than %d nodes", len(model))
		}
		if e.val != model[i] {
			return fmt.Errorf("position %d holds %d, want %d (model %v)", i, e.val, model[i], model)
		}
		if next := e.Next(); next != nil && next.Prev() != e {
			return fmt.Errorf("node %d does not link back to %d", next.val, e.val)
		}
		i++
	}
	if i != len(model) {
		return fmt.Errorf("chain has %d nodes, want %d", i, len(model))
	}
	if got := ilist.Measure(c.at(model, len(model)-1), nil, ilist.Backward); got != len(model) {
		return fmt.Errorf("backward measure from tail = %d, want %d", got, len(model))
	}
	return nil
}

type snode struct {
	islist.Entry[*snode]
	val int
}

type forwardChain struct {
	nodes map[int]*snode
}

func newForwardChain(n int) *forwardChain {
	c := &forwardChain{nodes: make(map[int]*snode, n)}
	var prev *snode
	for i := 0; i < n; i++ {
		e := c.node(i)
		if prev != nil {
			islist.Insert(prev, e, e)
		}
		prev = e
	}
	return c
}

func (c *forwardChain) node(val int) *snode {
	e := &snode{val: val}
	c.nodes[val] = e
	return e
}

func (c *forwardChain) at(model []int, pos int) *snode {
	return c.nodes[model[pos]]
}

// prev returns the node before pos, or nil at the head.
func (c *forwardChain) prev(model []int, pos int) *snode {
	if pos == 0 {
		return nil
	}
	return c.at(model, pos-1)
}

func (c *forwardChain) locate(model []int, pos int, hops uint) (int, bool) {
	e, ok := islist.Locate(c.at(model, pos), hops)
	if !ok {
		return 0, false
	}
	return e.val, true
}

func (c *forwardChain) measure(model []int, from, to int) int {
	if to < 0 {
		return islist.Measure(c.at(model, from), nil)
	}
	return islist.Measure(c.at(model, from), c.at(model, to))
}

func (c *forwardChain) insert(model []int, pos int, vals []int) {
	first := c.node(vals[0])
	last := first
	for _, v := range vals[1:] {
		e := c.node(v)
		islist.Insert(last, e, e)
		last = e
	}
	islist.Insert(c.at(model, pos), first, last)
}

func (c *forwardChain) remove(model []int, p, q int) {
	islist.Remove(c.at(model, p), c.at(model, q))
}

func (c *forwardChain) swap(model []int, a0, a1, b0, b1 int) {
	islist.Swap(c.prev(model, a0), c.at(model, a0), c.at(model, a1), c.prev(model, b0), c.at(model, b0), c.at(model, b1))
}

func (c *forwardChain) reverse(model []int, p, q int) {
	islist.Reverse(c.prev(model, p), c.at(model, p), c.at(model, q))
}

func (c *forwardChain) verify(model []int) error {
	i := 0
	for e := c.at(model, 0); e != nil; e = e.Next() {
		if i >= len(model) {
			return fmt.Errorf("chain is longer than %d nodes", len(model))
		}
		if e.val != model[i] {
			return fmt.Errorf("position %d holds %d, want %d (model %v)", i, e.val, model[i], model)
		}
		i++
	}
	if i != len(model) {
		return fmt.Errorf("chain has %d nodes, want %d", i, len(model))
	}
	return nil
}
