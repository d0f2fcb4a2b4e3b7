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

// Package cmd holds implementations of the ilinkctl commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"gvisor.dev/ilink/pkg/log"
)

// LogsToStderr reports whether the log already reaches stderr, in which case
// Errorf does not print errors a second time. The default log target is
// stderr.
var LogsToStderr = true

// stderr is where Errorf prints if the log does not reach it.
var stderr io.Writer = os.Stderr

// Errorf logs the error, prints it to stderr unless the log already went
// there, and returns ExitFailure.
func Errorf(format string, args ...any) subcommands.ExitStatus {
	log.Warningf(format, args...)
	if !LogsToStderr {
		fmt.Fprintf(stderr, format+"\n", args...)
	}
	return subcommands.ExitFailure
}

// output returns w, or os.Stdout if w is nil.
func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
