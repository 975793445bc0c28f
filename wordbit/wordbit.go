// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wordbit defines the types and interfaces shared by all
// packages of the wordbit mnemonic codec.
package wordbit

// WordBits is the number of bits carried by a single mnemonic word.
const WordBits = 11

// MaxIndex is the maximum value of a word index: every word stands
// for an 11-bit integer, so indices range over 0..=2047.
const MaxIndex = 2047

// DictionarySize is the number of words in a dictionary, 1<<WordBits.
const DictionarySize = MaxIndex + 1

// MaxChecksumBits is the longest checksum that can be appended to the
// entropy. The checksum is drawn from a SHA-256 digest, so it can be
// at most 256 bits.
const MaxChecksumBits = 256

// An Index identifies one word of a dictionary. It is the unit of the
// packed representation: a mnemonic is a sequence of indices, each
// carrying WordBits bits of the underlying bit string.
type Index uint16

// NewIndex returns the Index for v, reporting whether v is within
// the valid range 0..=MaxIndex.
func NewIndex(v uint16) (Index, bool) {
	if v > MaxIndex {
		return 0, false
	}
	return Index(v), true
}

// A Word is a single mnemonic word as rendered by a dictionary.
// It is given a unique type so the API (and the errors package)
// is clear about which strings are words.
type Word string

// A Language is the name of a dictionary, such as "english".
// It is given a unique type so the API is clear.
type Language string

// Mode selects how a word count is translated into a bit-accounting
// plan (entropy length and checksum length).
type Mode uint8

const (
	// Standard accepts only the six canonical word counts
	// 9, 12, 15, 18, 21 and 24, with the checksum fixed at
	// one third of the word count in bits.
	Standard Mode = iota

	// Relaxed accepts any word count of at least one word and uses
	// the shortest checksum that balances the bit accounting:
	// the entropy takes every whole byte that fits, the checksum
	// takes the remaining (wordCount*11 mod 8) bits.
	Relaxed
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Relaxed:
		return "relaxed"
	}
	return "unknown mode"
}

// A Dictionary is an immutable bijection between indices 0..=MaxIndex
// and DictionarySize distinct words for one language. Implementations
// must be safe for concurrent use; the bundled dictionaries are
// read-only package data.
type Dictionary interface {
	// Name returns the language name, such as "english".
	Name() Language

	// Separator returns the string that joins words when a mnemonic
	// is rendered as a single phrase string.
	Separator() string

	// Word returns the word at the given index.
	// It panics if the index is out of range, which cannot happen
	// for an Index built with NewIndex.
	Word(Index) Word

	// Index returns the index of the given word. The returned error
	// is non-nil if and only if the word is not in the dictionary.
	Index(Word) (Index, error)
}
