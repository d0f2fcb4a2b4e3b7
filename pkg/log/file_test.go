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

package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "ilinkctl.log")
	for _, msg := range []string{"first", "second"} {
		f, err := OpenFile(path)
		if err != nil {
			t.Fatalf("OpenFile(%q): %v", path, err)
		}
		w := &Writer{Next: f}
		w.Emit(0, Info, time.Time{}, "%s", msg)
		if err := f.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := "first\nsecond\n"; string(got) != want {
		t.Errorf("log file = %q, want %q", got, want)
	}
}

func TestOpenFileEmptyPath(t *testing.T) {
	f, err := OpenFile("")
	if f != nil || err != nil {
		t.Errorf("OpenFile(\"\") = %v, %v, want nil, nil", f, err)
	}
}
