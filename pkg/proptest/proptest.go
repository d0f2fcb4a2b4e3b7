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

// Package proptest runs randomized sequences of link operations against a
// slice model and reports the first divergence.
//
// Each trial builds a private chain, so trials can run in parallel without
// sharing nodes.
package proptest

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"gvisor.dev/ilink/pkg/log"
)

// Shape is a node shape under test.
type Shape string

const (
	// Forward chains use package islist.
	Forward Shape = "forward"
	// Bidirectional chains use package ilist.
	Bidirectional Shape = "bidirectional"
)

// Op is one kind of operation a trial performs.
type Op string

// Operations performed by trials.
const (
	OpLocate  Op = "locate"
	OpMeasure Op = "measure"
	OpInsert  Op = "insert"
	OpRemove  Op = "remove"
	OpSwap    Op = "swap"
	OpReverse Op = "reverse"
)

var allOps = []Op{OpLocate, OpMeasure, OpInsert, OpRemove, OpSwap, OpReverse}

// maxSteps bounds the number of operations in one trial.
const maxSteps = 8

// Options configures Run.
type Options struct {
	// Trials is the number of independent trials.
	Trials int
	// MaxLen is the largest chain a trial starts with.
	MaxLen int
	// Seed seeds every trial's generator together with the trial index.
	Seed uint64
	// Parallelism bounds the number of concurrent trials.
	Parallelism int
	// Progress, if set, receives progress messages.
	Progress log.Logger
}

// Report summarizes a successful Run.
type Report struct {
	Seed   uint64         `json:"seed" yaml:"seed"`
	Trials int            `json:"trials" yaml:"trials"`
	Counts map[string]int `json:"counts" yaml:"counts"`
	Took   time.Duration  `json:"took" yaml:"took"`
}

// WriteText implements render.Texter.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d trials passed (seed %d) in %v\n", r.Trials, r.Seed, r.Took); err != nil {
		return err
	}
	keys := make([]string, 0, len(r.Counts))
	for k := range r.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "  %-24s %d\n", k, r.Counts[k]); err != nil {
			return err
		}
	}
	return nil
}

// Run executes opts.Trials trials and returns the first failure, if any.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Trials <= 0 || opts.MaxLen <= 0 {
		return nil, fmt.Errorf("trials and max length must be positive, got %d and %d", opts.Trials, opts.MaxLen)
	}
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}

	var (
		mu     sync.Mutex
		counts = make(map[string]int)
		done   atomic.Int64
	)
	for i := 0; i < opts.Trials; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			shape := Forward
			if i%2 == 1 {
				shape = Bidirectional
			}
			r := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
			ops, err := Trial(r, shape, opts.MaxLen)
			if err != nil {
				return fmt.Errorf("trial %d (%s, seed %d): %w", i, shape, opts.Seed, err)
			}
			mu.Lock()
			for _, op := range ops {
				counts[string(shape)+"/"+string(op)]++
			}
			mu.Unlock()
			if n := done.Add(1); opts.Progress != nil {
				opts.Progress.Infof("%d/%d trials done", n, opts.Trials)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Report{
		Seed:   opts.Seed,
		Trials: opts.Trials,
		Counts: counts,
		Took:   time.Since(start),
	}, nil
}

// Trial builds a chain of 1 to maxLen nodes of the given shape, applies a
// random sequence of operations to it and to a slice model, and checks after
// every step that the two agree. It returns the operations performed.
func Trial(r *rand.Rand, shape Shape, maxLen int) ([]Op, error) {
	n := 1 + r.IntN(maxLen)
	model := make([]int, n)
	for i := range model {
		model[i] = i
	}
	var c chain
	switch shape {
	case Forward:
		c = newForwardChain(n)
	case Bidirectional:
		c = newBidiChain(n)
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
	if err := c.verify(model); err != nil {
		return nil, fmt.Errorf("initial chain: %w", err)
	}

	next := n // next unused payload.
	steps := 1 + r.IntN(maxSteps)
	ops := make([]Op, 0, steps)
	for s := 0; s < steps; s++ {
		op := allOps[r.IntN(len(allOps))]
		if op == OpSwap && len(model) < 2 {
			op = OpLocate
		}
		var err error
		model, next, err = step(r, c, op, model, next)
		if err != nil {
			return ops, fmt.Errorf("step %d (%s): %w", s, op, err)
		}
		if err := c.verify(model); err != nil {
			return ops, fmt.Errorf("step %d (%s): %w", s, op, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// step applies op to c and returns the updated model.
func step(r *rand.Rand, c chain, op Op, model []int, next int) ([]int, int, error) {
	n := len(model)
	switch op {
	case OpLocate:
		pos, hops := r.IntN(n), uint(r.IntN(n+1))
		got, ok := c.locate(model, pos, hops)
		want, wantOK := model[n-1], true
		if hops > 0 {
			if p := pos + int(hops); p < n {
				want = model[p]
			} else {
				wantOK = false
			}
		}
		if ok != wantOK || (ok && got != want) {
			return nil, 0, fmt.Errorf("locate(%d, %d) = %d, %t, want %d, %t", pos, hops, got, ok, want, wantOK)
		}
		return model, next, nil

	case OpMeasure:
		p, q := pair(r, n)
		if got := c.measure(model, p, q); got != q-p {
			return nil, 0, fmt.Errorf("measure(%d, %d) = %d, want %d", p, q, got, q-p)
		}
		if got := c.measure(model, p, -1); got != n-p {
			return nil, 0, fmt.Errorf("measure(%d, nil) = %d, want %d", p, got, n-p)
		}
		if p < q {
			if got := c.measure(model, q, p); got >= 0 {
				return nil, 0, fmt.Errorf("measure(%d, %d) = %d, want not found", q, p, got)
			}
		}
		return model, next, nil

	case OpInsert:
		pos := r.IntN(n)
		k := 1 + r.IntN(3)
		vals := make([]int, k)
		for i := range vals {
			vals[i] = next
			next++
		}
		c.insert(model, pos, vals)
		return slices.Insert(model, pos+1, vals...), next, nil

	case OpRemove:
		p, q := pair(r, n)
		c.remove(model, p, q)
		return slices.Delete(model, p+1, q+1), next, nil

	case OpSwap:
		a0, a1, b0, b1 := disjoint(r, n)
		if r.IntN(2) == 0 {
			a0, a1, b0, b1 = b0, b1, a0, a1
		}
		c.swap(model, a0, a1, b0, b1)
		return swapped(model, a0, a1, b0, b1), next, nil

	case OpReverse:
		p, q := pair(r, n)
		c.reverse(model, p, q)
		slices.Reverse(model[p : q+1])
		return model, next, nil
	}
	return nil, 0, fmt.Errorf("unknown op %q", op)
}

// pair returns positions p <= q in [0, n).
func pair(r *rand.Rand, n int) (int, int) {
	p := r.IntN(n)
	return p, p + r.IntN(n-p)
}

// disjoint returns two ranges a0 <= a1 < b0 <= b1 in [0, n), n >= 2.
func disjoint(r *rand.Rand, n int) (a0, a1, b0, b1 int) {
	split := 1 + r.IntN(n-1)
	a0 = r.IntN(split)
	a1 = a0 + r.IntN(split-a0)
	b0 = split + r.IntN(n-split)
	b1 = b0 + r.IntN(n-b0)
	return a0, a1, b0, b1
}

// swapped returns model with the position ranges [a0, a1] and [b0, b1]
// exchanged.
func swapped(model []int, a0, a1, b0, b1 int) []int {
	if b0 < a0 {
		a0, a1, b0, b1 = b0, b1, a0, a1
	}
	out := make([]int, 0, len(model))
	out = append(out, model[:a0]...)
	out = append(out, model[b0:b1+1]...)
	out = append(out, model[a1+1:b0]...)
	out = append(out, model[a0:a1+1]...)
	out = append(out, model[b1+1:]...)
	return out
}
