// Copyright 2018 The gVisor Authors.
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

package log

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// jsonLog is one line written by JSONEmitter.
type jsonLog struct {
	Time   time.Time         `json:"time"`
	Level  Level             `json:"level"`
	File   string            `json:"file,omitempty"`
	Line   int               `json:"line,omitempty"`
	Msg    string            `json:"msg"`
	Fields map[string]string `json:"fields,omitempty"`
}

var levelNames = map[Level]string{
	Warning: "warning",
	Info:    "info",
	Debug:   "debug",
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	name, ok := levelNames[l]
	if !ok {
		return nil, fmt.Errorf("unknown level %v", l)
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts level names
// in any case and the numeric values 0 to 2.
func (l *Level) UnmarshalText(b []byte) error {
	s := strings.ToLower(string(b))
	for lv, name := range levelNames {
		if s == name || s == fmt.Sprint(int(lv)) {
			*l = lv
			return nil
		}
	}
	return fmt.Errorf("unknown level %q", b)
}

// MarshalJSON implements json.Marshaler.
func (l Level) MarshalJSON() ([]byte, error) {
	b, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON implements json.Unmarshaler. It accepts both level names and
// integers.
func (l *Level) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n int
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("unknown level %s", b)
		}
		s = fmt.Sprint(n)
	}
	return l.UnmarshalText([]byte(s))
}

// JSONEmitter logs messages as one JSON object per line. The caller's file
// and line are separate keys, and Fields is attached to every line.
type JSONEmitter struct {
	*Writer

	// Fields, if set, is copied into every line, e.g. the running command.
	Fields map[string]string
}

// Emit implements Emitter.Emit.
func (e JSONEmitter) Emit(depth int, level Level, timestamp time.Time, format string, v ...any) {
	j := jsonLog{
		Time:   timestamp,
		Level:  level,
		Msg:    fmt.Sprintf(format, v...),
		Fields: e.Fields,
	}
	if _, file, line, ok := runtime.Caller(depth + 1); ok {
		if slash := strings.LastIndexByte(file, '/'); slash >= 0 {
			file = file[slash+1:]
		}
		j.File, j.Line = file, line
	}
	b, err := json.Marshal(j)
	if err != nil {
		panic(err)
	}
	e.Writer.Write(b)
}
