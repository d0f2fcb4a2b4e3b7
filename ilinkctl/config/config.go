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

// Package config provides basic infrastructure to set configuration settings
// for ilinkctl. Each setting is a field of Config, bound to a command-line
// flag through the `flag` tag and to the optional TOML file through the
// `toml` tag. Precedence is: flags explicitly set on the command line, then
// the file named by --config, then flag defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gvisor.dev/ilink/ilinkctl/render"
	"gvisor.dev/ilink/pkg/log"
)

// Config holds configuration that is not part of any single command.
type Config struct {
	// File is the TOML file the rest of the configuration was read from.
	File string `flag:"config" toml:"-"`

	// Debug indicates that debug logging should be enabled.
	Debug bool `flag:"debug" toml:"debug"`

	// LogFilename is the filename to log to, if not empty.
	LogFilename string `flag:"log" toml:"log"`

	// LogFormat is the log format: text or json.
	LogFormat string `flag:"log-format" toml:"log_format"`

	// AlsoLogToStderr allows to send log messages to stderr.
	AlsoLogToStderr bool `flag:"alsologtostderr" toml:"alsologtostderr"`

	// Output is the format results are printed in.
	Output render.Format `flag:"output" toml:"output"`

	// Nodes is the length of the chain the demo command builds.
	Nodes int `flag:"nodes" toml:"nodes"`

	// Trials is the number of randomized trials run by the check command.
	Trials int `flag:"trials" toml:"trials"`

	// MaxLen is the largest chain a check trial starts with.
	MaxLen int `flag:"max-len" toml:"max_len"`

	// Seed seeds the check trials. Zero means a seed derived from the clock.
	Seed uint64 `flag:"seed" toml:"seed"`

	// Parallelism bounds how many check trials run at once.
	Parallelism int `flag:"parallelism" toml:"parallelism"`
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q, must be 'text' or 'json'", c.LogFormat)
	}
	if c.Nodes < 1 {
		return fmt.Errorf("nodes must be at least 1, got %d", c.Nodes)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.MaxLen < 1 {
		return fmt.Errorf("max-len must be at least 1, got %d", c.MaxLen)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1, got %d", c.Parallelism)
	}
	return nil
}

// decodeFile overlays the settings in the TOML file at path onto c. Keys that
// do not name a setting are an error.
func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config file %q: unknown setting %q", path, undecoded[0].String())
	}
	return nil
}

// Log logs important aspects of the configuration to the given log function.
func (c *Config) Log() {
	log.Infof("Config.File: %q", c.File)
	log.Infof("Config.Debug: %t", c.Debug)
	log.Infof("Config.LogFilename: %q", c.LogFilename)
	log.Infof("Config.LogFormat: %s", c.LogFormat)
	log.Infof("Config.Output: %v", c.Output)
	log.Infof("Config.Nodes: %d", c.Nodes)
	log.Infof("Config.Trials: %d, MaxLen: %d, Seed: %d, Parallelism: %d", c.Trials, c.MaxLen, c.Seed, c.Parallelism)
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
