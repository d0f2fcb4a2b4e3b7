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

package ilist

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gvisor.dev/ilink/pkg/contract"
)

// item is a host type that embeds Entry the way callers are expected to.
type item struct {
	Entry[*item]
	val int
}

// makeChain returns n linked items holding 0..n-1. The slice keeps every
// node reachable by index regardless of how the chain is later relinked.
func makeChain(n int) []*item {
	items := make([]*item, n)
	for i := range items {
		items[i] = &item{val: i}
		if i > 0 {
			link(items[i-1], items[i])
		}
	}
	return items
}

// values returns the payloads from head to the tail of its chain.
func values(head *item) []int {
	var vs []int
	for e := range All(head) {
		vs = append(vs, e.val)
	}
	return vs
}

// checkChain verifies that the chain containing e is well formed: acyclic
// within max nodes and symmetric in both directions.
func checkChain(t *testing.T, e *item, max int) {
	t.Helper()
	head := e
	for i := 0; head.Prev() != nil; i++ {
		if i > max {
			t.Fatalf("chain has a cycle through Prev")
		}
		head = head.Prev()
	}
	n := 0
	for cur := head; cur != nil; cur = cur.Next() {
		if n++; n > max {
			t.Fatalf("chain has a cycle through Next")
		}
		if next := cur.Next(); next != nil && next.Prev() != cur {
			t.Fatalf("asymmetric link: %d.Next() = %d but %d.Prev() = %v", cur.val, next.val, next.val, next.Prev())
		}
	}
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestEntryZeroValue(t *testing.T) {
	var e item
	if e.Next() != nil || e.Prev() != nil {
		t.Fatalf("zero Entry is linked: next=%v prev=%v", e.Next(), e.Prev())
	}
	items := makeChain(3)
	items[1].Init()
	if items[1].Next() != nil || items[1].Prev() != nil {
		t.Errorf("Init did not detach the entry")
	}
}

func TestDirectionString(t *testing.T) {
	for _, tc := range []struct {
		dir  Direction
		want string
	}{
		{Forward, "forward"},
		{Backward, "backward"},
		{Direction(7), "unknown"},
	} {
		if got := tc.dir.String(); got != tc.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tc.dir, got, tc.want)
		}
	}
}

func TestLocate(t *testing.T) {
	items := makeChain(5)
	for _, tc := range []struct {
		name   string
		begin  int
		n      uint
		dir    Direction
		want   int
		wantOK bool
	}{
		{name: "one forward", begin: 0, n: 1, dir: Forward, want: 1, wantOK: true},
		{name: "to tail", begin: 1, n: 3, dir: Forward, want: 4, wantOK: true},
		{name: "past tail", begin: 1, n: 4, dir: Forward, wantOK: false},
		{name: "zero is last", begin: 2, n: 0, dir: Forward, want: 4, wantOK: true},
		{name: "zero from tail", begin: 4, n: 0, dir: Forward, want: 4, wantOK: true},
		{name: "backward", begin: 4, n: 2, dir: Backward, want: 2, wantOK: true},
		{name: "past head", begin: 1, n: 2, dir: Backward, wantOK: false},
		{name: "zero backward is first", begin: 3, n: 0, dir: Backward, want: 0, wantOK: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Locate(items[tc.begin], tc.n, tc.dir)
			if ok != tc.wantOK {
				t.Fatalf("Locate(%d, %d, %v) ok = %t, want %t", tc.begin, tc.n, tc.dir, ok, tc.wantOK)
			}
			if !ok {
				if got != nil {
					t.Errorf("Locate returned %d with ok = false", got.val)
				}
				return
			}
			if got.val != tc.want {
				t.Errorf("Locate(%d, %d, %v) = %d, want %d", tc.begin, tc.n, tc.dir, got.val, tc.want)
			}
		})
	}
}

func TestLocateSingleton(t *testing.T) {
	e := &item{}
	for _, dir := range []Direction{Forward, Backward} {
		if got, ok := Locate(e, 0, dir); !ok || got != e {
			t.Errorf("Locate(lone, 0, %v) = %v, %t, want the node itself", dir, got, ok)
		}
		if got, ok := Locate(e, 1, dir); ok {
			t.Errorf("Locate(lone, 1, %v) = %v, want not found", dir, got)
		}
	}
	if got := Measure(e, e, Forward); got != 0 {
		t.Errorf("Measure(e, e) = %d, want 0", got)
	}
	if got := Measure(e, nil, Forward); got != 1 {
		t.Errorf("Measure(lone, nil) = %d, want 1", got)
	}
}

func TestLocateThenMeasure(t *testing.T) {
	items := makeChain(8)
	for begin := range items {
		for n := uint(1); n < 10; n++ {
			for _, dir := range []Direction{Forward, Backward} {
				got, ok := Locate(items[begin], n, dir)
				if !ok {
					continue
				}
				if m := Measure(items[begin], got, dir); m != int(n) {
					t.Errorf("Measure(%d, Locate(%d, %d, %v)) = %d, want %d", begin, begin, n, dir, m, n)
				}
			}
		}
	}
}

func TestMeasure(t *testing.T) {
	items := makeChain(6)
	for _, tc := range []struct {
		name       string
		begin, end int // end < 0 means nil.
		dir        Direction
		want       int
	}{
		{name: "same node", begin: 2, end: 2, want: 0},
		{name: "excludes begin", begin: 1, end: 4, want: 3},
		{name: "nil end includes begin", begin: 1, end: -1, want: 5},
		{name: "nil end from head", begin: 0, end: -1, want: 6},
		{name: "end precedes begin", begin: 4, end: 1, want: NotFound},
		{name: "backward", begin: 4, end: 1, dir: Backward, want: 3},
		{name: "backward wrong way", begin: 1, end: 4, dir: Backward, want: NotFound},
		{name: "backward nil end", begin: 3, end: -1, dir: Backward, want: 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var end *item
			if tc.end >= 0 {
				end = items[tc.end]
			}
			if got := Measure(items[tc.begin], end, tc.dir); got != tc.want {
				t.Errorf("Measure(%d, %d, %v) = %d, want %d", tc.begin, tc.end, tc.dir, got, tc.want)
			}
		})
	}
}

func TestMeasureRecurrence(t *testing.T) {
	items := makeChain(7)
	for i, e := range items {
		got := Measure(e, nil, Forward)
		want := 1
		if e.Next() != nil {
			want += Measure(e.Next(), nil, Forward)
		}
		if got != want || got != len(items)-i {
			t.Errorf("Measure(%d, nil) = %d, want %d", i, got, want)
		}
	}
}

func TestIterators(t *testing.T) {
	items := makeChain(6)
	var back []int
	for e := range AllBackward(items[3]) {
		back = append(back, e.val)
	}
	if diff := cmp.Diff([]int{3, 2, 1, 0}, back); diff != "" {
		t.Errorf("AllBackward mismatch (-want +got):\n%s", diff)
	}
	var span []int
	for e := range Span(items[1], items[4]) {
		span = append(span, e.val)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, span); diff != "" {
		t.Errorf("Span mismatch (-want +got):\n%s", diff)
	}
	var stopped []int
	for e := range All(items[0]) {
		if e.val == 2 {
			break
		}
		stopped = append(stopped, e.val)
	}
	if diff := cmp.Diff([]int{0, 1}, stopped); diff != "" {
		t.Errorf("All with break mismatch (-want +got):\n%s", diff)
	}
	if h := Head(items[5]); h != items[0] {
		t.Errorf("Head(5) = %d, want 0", h.val)
	}
}

func TestInsert(t *testing.T) {
	for _, tc := range []struct {
		name   string
		anchor int
		want   []int
	}{
		{name: "after head", anchor: 0, want: []int{0, 100, 101, 102, 1, 2, 3}},
		{name: "middle", anchor: 2, want: []int{0, 1, 2, 100, 101, 102, 3}},
		{name: "after tail", anchor: 3, want: []int{0, 1, 2, 3, 100, 101, 102}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			items := makeChain(4)
			src := makeChain(3)
			for _, s := range src {
				s.val += 100
			}
			Insert(items[tc.anchor], src[0], src[2])
			if diff := cmp.Diff(tc.want, values(items[0])); diff != "" {
				t.Errorf("chain mismatch (-want +got):\n%s", diff)
			}
			checkChain(t, items[0], len(tc.want))
			if src[0].Prev() != items[tc.anchor] {
				t.Errorf("range head's Prev = %v, want anchor", src[0].Prev())
			}
		})
	}
}

func TestRemove(t *testing.T) {
	for _, tc := range []struct {
		name       string
		begin, end int
		want       []int
	}{
		{name: "nothing", begin: 2, end: 2, want: []int{0, 1, 2, 3, 4, 5}},
		{name: "one", begin: 1, end: 2, want: []int{0, 1, 3, 4, 5}},
		{name: "several", begin: 0, end: 3, want: []int{0, 4, 5}},
		{name: "through tail", begin: 2, end: 5, want: []int{0, 1, 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			items := makeChain(6)
			Remove(items[tc.begin], items[tc.end])
			if diff := cmp.Diff(tc.want, values(items[0])); diff != "" {
				t.Errorf("chain mismatch (-want +got):\n%s", diff)
			}
			checkChain(t, items[0], len(tc.want))
		})
	}
}

func TestRemoveThenReinsert(t *testing.T) {
	items := makeChain(6)
	Remove(items[1], items[3])
	// (2, 3) is still a valid range and can be moved behind the tail.
	if m := Measure(items[2], items[3], Forward); m != 1 {
		t.Fatalf("removed range measures %d, want 1", m)
	}
	Insert(items[5], items[2], items[3])
	if diff := cmp.Diff([]int{0, 1, 4, 5, 2, 3}, values(items[0])); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
	checkChain(t, items[0], 6)
}

func TestInsertRemoveInverse(t *testing.T) {
	for anchor := 0; anchor < 4; anchor++ {
		items := makeChain(4)
		e := &item{val: 99}
		Insert(items[anchor], e, e)
		Remove(items[anchor], e)
		if diff := cmp.Diff(seq(4), values(items[0])); diff != "" {
			t.Errorf("anchor %d: chain mismatch (-want +got):\n%s", anchor, diff)
		}
		if anchor < 3 && items[anchor+1].Prev() != items[anchor] {
			t.Errorf("anchor %d: successor's Prev not restored", anchor)
		}
		checkChain(t, items[0], 4)
	}
}

func TestPlanSwap(t *testing.T) {
	items := makeChain(6)
	for _, tc := range []struct {
		name                             string
		a0, a1, b0, b1                   int
		kind                             adjacency
		beforeA, afterA, beforeB, afterB int // -1 means nil.
	}{
		{name: "apart", a0: 0, a1: 1, b0: 3, b1: 4, kind: apart, beforeA: 2, afterA: 5, beforeB: -1, afterB: 2},
		{name: "b after a", a0: 1, a1: 2, b0: 3, b1: 3, kind: bAfterA, beforeA: 3, afterA: 4, beforeB: 0, afterB: 1},
		{name: "a after b", a0: 4, a1: 5, b0: 2, b1: 3, kind: aAfterB, beforeA: 1, afterA: 2, beforeB: 5, afterB: -1},
		{name: "singletons apart", a0: 0, a1: 0, b0: 5, b1: 5, kind: apart, beforeA: 4, afterA: -1, beforeB: -1, afterB: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := planSwap(items[tc.a0], items[tc.a1], items[tc.b0], items[tc.b1])
			if p.kind != tc.kind {
				t.Errorf("kind = %v, want %v", p.kind, tc.kind)
			}
			for _, f := range []struct {
				name string
				got  *item
				want int
			}{
				{"beforeA", p.beforeA, tc.beforeA},
				{"afterA", p.afterA, tc.afterA},
				{"beforeB", p.beforeB, tc.beforeB},
				{"afterB", p.afterB, tc.afterB},
			} {
				switch {
				case f.want < 0 && f.got != nil:
					t.Errorf("%s = %d, want nil", f.name, f.got.val)
				case f.want >= 0 && (f.got == nil || f.got.val != f.want):
					t.Errorf("%s = %v, want %d", f.name, f.got, f.want)
				}
			}
		})
	}
}

// swapSegments returns s with the index ranges [a0, a1] and [b0, b1]
// exchanged.
func swapSegments(s []int, a0, a1, b0, b1 int) []int {
	if b0 < a0 {
		a0, a1, b0, b1 = b0, b1, a0, a1
	}
	var out []int
	out = append(out, s[:a0]...)
	out = append(out, s[b0:b1+1]...)
	out = append(out, s[a1+1:b0]...)
	out = append(out, s[a0:a1+1]...)
	out = append(out, s[b1+1:]...)
	return out
}

// TestSwapExhaustive swaps every pair of disjoint ranges of a short chain, in
// both argument orders, then swaps back.
func TestSwapExhaustive(t *testing.T) {
	const n = 6
	orig := seq(n)
	for a0 := 0; a0 < n; a0++ {
		for a1 := a0; a1 < n; a1++ {
			for b0 := 0; b0 < n; b0++ {
				for b1 := b0; b1 < n; b1++ {
					if b1 >= a0 && b0 <= a1 {
						continue // overlapping.
					}
					name := fmt.Sprintf("A[%d,%d]B[%d,%d]", a0, a1, b0, b1)
					items := makeChain(n)
					Swap(items[a0], items[a1], items[b0], items[b1])
					want := swapSegments(orig, a0, a1, b0, b1)
					if diff := cmp.Diff(want, values(Head(items[0]))); diff != "" {
						t.Fatalf("%s: chain mismatch (-want +got):\n%s", name, diff)
					}
					checkChain(t, items[0], n)

					Swap(items[a0], items[a1], items[b0], items[b1])
					if diff := cmp.Diff(orig, values(Head(items[0]))); diff != "" {
						t.Fatalf("%s: swap back mismatch (-want +got):\n%s", name, diff)
					}
					checkChain(t, items[0], n)
				}
			}
		}
	}
}

func TestSwapAcrossChains(t *testing.T) {
	x := makeChain(4)
	y := makeChain(3)
	for _, e := range y {
		e.val += 10
	}
	Swap(x[1], x[2], y[0], y[1])
	if diff := cmp.Diff([]int{0, 10, 11, 3}, values(Head(x[0]))); diff != "" {
		t.Errorf("first chain mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 12}, values(Head(x[1]))); diff != "" {
		t.Errorf("second chain mismatch (-want +got):\n%s", diff)
	}
	checkChain(t, x[0], 4)
	checkChain(t, x[1], 3)
}

func TestReverseExhaustive(t *testing.T) {
	const n = 9
	orig := seq(n)
	for b := 0; b < n; b++ {
		for e := b; e < n; e++ {
			items := makeChain(n)
			Reverse(items[b], items[e])
			want := slices.Clone(orig)
			slices.Reverse(want[b : e+1])
			if diff := cmp.Diff(want, values(Head(items[0]))); diff != "" {
				t.Fatalf("Reverse(%d, %d) mismatch (-want +got):\n%s", b, e, diff)
			}
			checkChain(t, items[0], n)

			// end now leads the range.
			Reverse(items[e], items[b])
			if diff := cmp.Diff(orig, values(Head(items[0]))); diff != "" {
				t.Fatalf("Reverse(%d, %d) twice mismatch (-want +got):\n%s", b, e, diff)
			}
			checkChain(t, items[0], n)
		}
	}
}

// TestScenario builds 0..10 behind a scratch head with Insert, then reverses,
// removes and swaps.
func TestScenario(t *testing.T) {
	scratch := NewElem(-1)
	p := scratch
	for i := 0; i < 11; i++ {
		e := NewElem(i)
		Insert(p, e, e)
		p = e
	}
	// Detach the chain from the scratch node.
	head := scratch.Next()
	head.SetPrev(nil)
	scratch.Init()

	vals := func(h *Elem[int]) []int {
		var vs []int
		for e := range All(h) {
			vs = append(vs, e.Value)
		}
		return vs
	}
	if diff := cmp.Diff(seq(11), vals(head)); diff != "" {
		t.Fatalf("built chain mismatch (-want +got):\n%s", diff)
	}

	Reverse(head, p)
	if diff := cmp.Diff([]int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, vals(p)); diff != "" {
		t.Fatalf("reversed mismatch (-want +got):\n%s", diff)
	}

	begin, ok := Locate(p, 1, Forward)
	if !ok {
		t.Fatalf("Locate(p, 1) not found")
	}
	end, ok := Locate(p, 2, Forward)
	if !ok {
		t.Fatalf("Locate(p, 2) not found")
	}
	Remove(begin, end)
	if diff := cmp.Diff([]int{10, 9, 7, 6, 5, 4, 3, 2, 1, 0}, vals(p)); diff != "" {
		t.Fatalf("removed mismatch (-want +got):\n%s", diff)
	}

	second := p.Next()
	Swap(p, p, second, second)
	if diff := cmp.Diff([]int{9, 10, 7, 6, 5, 4, 3, 2, 1, 0}, vals(second)); diff != "" {
		t.Fatalf("swapped mismatch (-want +got):\n%s", diff)
	}
	if second.Prev() != nil || p.Prev() != second {
		t.Errorf("swapped head links are wrong")
	}
}

func TestPreconditions(t *testing.T) {
	if !contract.Enabled {
		t.Skip("precondition checks need the ilinkdebug build tag")
	}
	items := makeChain(4)
	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{"Remove backwards", func() { Remove(items[3], items[1]) }},
		{"Insert backwards", func() { Insert(items[0], items[3], items[2]) }},
		{"Swap backwards", func() { Swap(items[1], items[0], items[3], items[3]) }},
		{"Reverse backwards", func() { Reverse(items[2], items[1]) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tc.name)
				}
			}()
			tc.fn()
		})
	}
}
