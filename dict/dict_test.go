// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"sort"
	"testing"

	"wordbit.io/errors"
	"wordbit.io/wordbit"
)

func TestBundledBijection(t *testing.T) {
	for _, d := range []*Dictionary{English, French} {
		for i := 0; i < wordbit.DictionarySize; i++ {
			idx := wordbit.Index(i)
			got, err := d.Index(d.Word(idx))
			if err != nil {
				t.Fatalf("%s: index %d: %v", d.Name(), i, err)
			}
			if got != idx {
				t.Errorf("%s: Index(Word(%d)) = %d", d.Name(), i, got)
			}
		}
	}
}

func TestEnglishSorted(t *testing.T) {
	words := English.words
	sorted := sort.SliceIsSorted(words, func(i, j int) bool {
		return words[i] < words[j]
	})
	if !sorted {
		t.Error("english table is not sorted")
	}
}

func TestKnownEnglishWords(t *testing.T) {
	tests := []struct {
		index wordbit.Index
		word  wordbit.Word
	}{
		{0, "abandon"},
		{3, "about"},
		{1019, "legal"},
		{1028, "letter"},
		{2047, "zoo"},
	}
	for _, test := range tests {
		if got := English.Word(test.index); got != test.word {
			t.Errorf("Word(%d) = %q, want %q", test.index, got, test.word)
		}
		i, err := English.Index(test.word)
		if err != nil {
			t.Fatalf("Index(%q): %v", test.word, err)
		}
		if i != test.index {
			t.Errorf("Index(%q) = %d, want %d", test.word, i, test.index)
		}
	}
}

func TestUnknownWord(t *testing.T) {
	_, err := English.Index("abracadabra")
	if !errors.Is(errors.UnknownWord, err) {
		t.Fatalf("got %v, want UnknownWord error", err)
	}
	if !errors.Match(errors.E(wordbit.Word("abracadabra"), wordbit.Language("english")), err) {
		t.Errorf("error %v does not carry word and language", err)
	}
}

func TestNewRejectsBadTables(t *testing.T) {
	short := make([]wordbit.Word, 100)
	if _, err := New("short", short); !errors.Is(errors.Invalid, err) {
		t.Errorf("short table: got %v, want Invalid error", err)
	}

	dup := make([]wordbit.Word, wordbit.DictionarySize)
	for i := range dup {
		dup[i] = wordbit.Word(string(rune('a'+i%26)) + string(rune('a'+i/26)))
	}
	dup[17] = dup[42]
	if _, err := New("dup", dup); !errors.Is(errors.Invalid, err) {
		t.Errorf("duplicate table: got %v, want Invalid error", err)
	}
}

func TestLookup(t *testing.T) {
	d, err := Lookup("english")
	if err != nil {
		t.Fatalf("Lookup(english): %v", err)
	}
	if d != English {
		t.Error("Lookup(english) did not return the bundled dictionary")
	}
	if _, err := Lookup("klingon"); !errors.Is(errors.Invalid, err) {
		t.Errorf("Lookup(klingon): got %v, want Invalid error", err)
	}

	found := false
	for _, name := range Languages() {
		if name == "french" {
			found = true
		}
	}
	if !found {
		t.Error("Languages() does not list french")
	}
}
