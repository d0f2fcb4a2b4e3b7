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
	"io"
	"time"

	"github.com/google/subcommands"
	"gvisor.dev/ilink/ilinkctl/config"
	"gvisor.dev/ilink/ilinkctl/render"
	"gvisor.dev/ilink/pkg/log"
	"gvisor.dev/ilink/pkg/proptest"
)

// Check implements subcommands.Command for the "check" command.
type Check struct {
	progress time.Duration
	stdout   io.Writer
}

// Name implements subcommands.Command.Name.
func (*Check) Name() string {
	return "check"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Check) Synopsis() string {
	return "run randomized link operations against a model and report divergences"
}

// Usage implements subcommands.Command.Usage.
func (*Check) Usage() string {
	return `check [flags] - run --trials randomized trials over both node shapes.
The run is reproducible with --seed.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Check) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.progress, "progress", time.Second, "minimum interval between progress log messages.")
}

// Execute implements subcommands.Command.Execute.
func (c *Check) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Infof("Running %d trials with seed %d", conf.Trials, seed)
	report, err := proptest.Run(ctx, proptest.Options{
		Trials:      conf.Trials,
		MaxLen:      conf.MaxLen,
		Seed:        seed,
		Parallelism: conf.Parallelism,
		Progress:    log.BasicRateLimitedLogger(c.progress),
	})
	if err != nil {
		return Errorf("check failed: %v", err)
	}
	if err := render.Write(output(c.stdout), conf.Output, report); err != nil {
		return Errorf("writing result: %v", err)
	}
	return subcommands.ExitSuccess
}
