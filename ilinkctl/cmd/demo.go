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

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"gvisor.dev/ilink/ilinkctl/config"
	"gvisor.dev/ilink/ilinkctl/render"
	"gvisor.dev/ilink/pkg/ilist"
	"gvisor.dev/ilink/pkg/islist"
	"gvisor.dev/ilink/pkg/log"
)

// Demo implements subcommands.Command for the "demo" command.
type Demo struct {
	variant string
	stdout  io.Writer
}

// Name implements subcommands.Command.Name.
func (*Demo) Name() string {
	return "demo"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Demo) Synopsis() string {
	return "build, reverse, cut and swap a chain, printing it after every step"
}

// Usage implements subcommands.Command.Usage.
func (*Demo) Usage() string {
	return `demo [flags] - build a chain of --nodes payloads 0..n-1, reverse it,
remove the third node and swap the first two, printing the chain after each
step.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (d *Demo) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.variant, "variant", "all", "node shape to run: forward, bidirectional or all.")
}

// Execute implements subcommands.Command.Execute.
func (d *Demo) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	var traces render.Traces
	if d.variant == "all" || d.variant == "forward" {
		t, err := forwardDemo(conf.Nodes)
		if err != nil {
			return Errorf("forward demo: %v", err)
		}
		traces = append(traces, t)
	}
	if d.variant == "all" || d.variant == "bidirectional" {
		t, err := bidiDemo(conf.Nodes)
		if err != nil {
			return Errorf("bidirectional demo: %v", err)
		}
		traces = append(traces, t)
	}
	if len(traces) == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err := render.Write(output(d.stdout), conf.Output, traces); err != nil {
		return Errorf("writing result: %v", err)
	}
	return subcommands.ExitSuccess
}

// demoMinNodes is the shortest chain the remove step can cut.
const demoMinNodes = 3

func forwardDemo(n int) (render.Trace, error) {
	t := render.Trace{Shape: "forward"}
	if n < demoMinNodes {
		return t, fmt.Errorf("need at least %d nodes, got %d", demoMinNodes, n)
	}
	snap := func(step string, head *islist.Elem[int]) {
		var vals []int
		for e := range islist.All(head) {
			vals = append(vals, e.Value)
		}
		log.Debugf("forward %s: %v", step, vals)
		t.Steps = append(t.Steps, render.Snapshot{Step: step, Values: vals})
	}

	head := islist.NewElem(0)
	tail := head
	for i := 1; i < n; i++ {
		e := islist.NewElem(i)
		islist.Insert(tail, e, e)
		tail = e
	}
	snap("build", head)

	islist.Reverse(nil, head, tail)
	head = tail
	snap("reverse", head)

	begin, ok := islist.Locate(head, 1)
	if !ok {
		return t, fmt.Errorf("no node 1 hop from head")
	}
	end, ok := islist.Locate(head, 2)
	if !ok {
		return t, fmt.Errorf("no node 2 hops from head")
	}
	islist.Remove(begin, end)
	snap("remove", head)

	second := head.Next()
	islist.Swap(nil, head, head, head, second, second)
	head = second
	snap("swap", head)
	return t, nil
}

func bidiDemo(n int) (render.Trace, error) {
	t := render.Trace{Shape: "bidirectional"}
	if n < demoMinNodes {
		return t, fmt.Errorf("need at least %d nodes, got %d", demoMinNodes, n)
	}
	snap := func(step string, node *ilist.Elem[int]) {
		var vals []int
		for e := range ilist.All(ilist.Head(node)) {
			vals = append(vals, e.Value)
		}
		log.Debugf("bidirectional %s: %v", step, vals)
		t.Steps = append(t.Steps, render.Snapshot{Step: step, Values: vals})
	}

	head := ilist.NewElem(0)
	tail := head
	for i := 1; i < n; i++ {
		e := ilist.NewElem(i)
		ilist.Insert(tail, e, e)
		tail = e
	}
	snap("build", head)

	ilist.Reverse(head, tail)
	head = tail
	snap("reverse", head)

	begin, ok := ilist.Locate(head, 1, ilist.Forward)
	if !ok {
		return t, fmt.Errorf("no node 1 hop from head")
	}
	end, ok := ilist.Locate(head, 2, ilist.Forward)
	if !ok {
		return t, fmt.Errorf("no node 2 hops from head")
	}
	ilist.Remove(begin, end)
	snap("remove", head)

	ilist.Swap(head, head, head.Next(), head.Next())
	snap("swap", head)
	return t, nil
}
