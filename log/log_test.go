// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	defer SetLevel(Level())

	if err := SetLevel("info"); err != nil {
		t.Fatal(err)
	}
	Debug.Printf("quiet")
	Info.Printf("noted")
	Error.Printf("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "noted") || !strings.Contains(out, "loud") {
		t.Errorf("missing messages in output %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	defer SetLevel(Level())
	for _, name := range []string{"debug", "info", "error", "disabled"} {
		if err := SetLevel(name); err != nil {
			t.Errorf("SetLevel(%q): %v", name, err)
		}
		if got := Level(); got != name {
			t.Errorf("Level() = %q after SetLevel(%q)", got, name)
		}
	}
	if err := SetLevel("shouty"); err == nil {
		t.Error("SetLevel(shouty) did not fail")
	}
}

func TestAt(t *testing.T) {
	defer SetLevel(Level())
	if err := SetLevel("info"); err != nil {
		t.Fatal(err)
	}
	if At("debug") {
		t.Error("At(debug) = true at info level")
	}
	if !At("info") || !At("error") {
		t.Error("At should report info and error as logged at info level")
	}
	if At("nonsense") {
		t.Error("At(nonsense) = true")
	}
}
