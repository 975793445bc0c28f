// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict provides the bundled dictionaries that render word
// indices as natural-language words. Each dictionary is an immutable
// bijection between the indices 0..=2047 and 2048 distinct words,
// built once from static data at package initialization.
//
// The word tables follow the published BIP39 wordlists. Words are
// stored and compared as-is: callers transcribing user input are
// responsible for any Unicode normalization before lookup.
package dict

import (
	"strings"

	"wordbit.io/errors"
	"wordbit.io/log"
	"wordbit.io/wordbit"
)

// Dictionary is the bundled implementation of wordbit.Dictionary:
// an array for index to word and a map, built once, for word to index.
type Dictionary struct {
	name  wordbit.Language
	words []wordbit.Word
	index map[wordbit.Word]wordbit.Index
}

var _ wordbit.Dictionary = (*Dictionary)(nil)

// New builds a Dictionary for the given language from its word table.
// The table must hold exactly wordbit.DictionarySize distinct,
// non-empty words.
func New(name wordbit.Language, words []wordbit.Word) (*Dictionary, error) {
	const op = "dict.New"
	if len(words) != wordbit.DictionarySize {
		return nil, errors.E(op, name, errors.Invalid,
			errors.Errorf("table has %d words, want %d", len(words), wordbit.DictionarySize))
	}
	index := make(map[wordbit.Word]wordbit.Index, len(words))
	for i, w := range words {
		if w == "" {
			return nil, errors.E(op, name, errors.Invalid,
				errors.Errorf("empty word at index %d", i))
		}
		if prev, ok := index[w]; ok {
			return nil, errors.E(op, name, w, errors.Invalid,
				errors.Errorf("duplicated at indices %d and %d", prev, i))
		}
		index[w] = wordbit.Index(i)
	}
	return &Dictionary{name: name, words: words, index: index}, nil
}

// Name returns the language name.
func (d *Dictionary) Name() wordbit.Language {
	return d.name
}

// Separator returns the string joining words in a rendered phrase.
func (d *Dictionary) Separator() string {
	return " "
}

// Word returns the word at the given index.
func (d *Dictionary) Word(i wordbit.Index) wordbit.Word {
	return d.words[i]
}

// Index returns the index of the given word, or an UnknownWord error
// if the word is not in the table.
func (d *Dictionary) Index(w wordbit.Word) (wordbit.Index, error) {
	const op = "dict.Index"
	i, ok := d.index[w]
	if !ok {
		return 0, errors.E(op, d.name, w, errors.UnknownWord)
	}
	return i, nil
}

// registry holds the compiled-in dictionaries by language name.
// It is populated during package initialization and read-only after.
var registry = make(map[wordbit.Language]*Dictionary)

// Register records a dictionary so Lookup can find it by name.
// It is intended to be called from init functions and fails if the
// name is already taken.
func Register(d *Dictionary) error {
	const op = "dict.Register"
	if _, ok := registry[d.name]; ok {
		return errors.E(op, d.name, errors.Invalid, errors.Str("already registered"))
	}
	registry[d.name] = d
	log.Debug.Printf("dict: registered %q (%d words)", d.name, len(d.words))
	return nil
}

// Lookup returns the registered dictionary for the given language.
func Lookup(name wordbit.Language) (*Dictionary, error) {
	const op = "dict.Lookup"
	d, ok := registry[name]
	if !ok {
		return nil, errors.E(op, name, errors.Invalid, errors.Str("no such dictionary"))
	}
	return d, nil
}

// Languages returns the names of all registered dictionaries.
func Languages() []wordbit.Language {
	names := make([]wordbit.Language, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// splitTable turns a newline-separated word table into its words.
func splitTable(raw string) []wordbit.Word {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	words := make([]wordbit.Word, len(lines))
	for i, line := range lines {
		words[i] = wordbit.Word(line)
	}
	return words
}

// mustNew builds and registers a bundled dictionary, aborting on
// malformed compiled-in data.
func mustNew(name wordbit.Language, raw string) *Dictionary {
	d, err := New(name, splitTable(raw))
	if err != nil {
		log.Fatalf("dict: bad bundled table: %v", err)
	}
	if err := Register(d); err != nil {
		log.Fatalf("dict: %v", err)
	}
	return d
}
