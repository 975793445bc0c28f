// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phrase renders encoded entropy as mnemonic words and
// recovers entropy from transcribed words. It sits above package
// codec, which works purely in word indices, and below nothing:
// the phrase string is the outermost representation.
package phrase

import (
	"strings"

	"github.com/hashicorp/go-multierror"

	"wordbit.io/codec"
	"wordbit.io/errors"
	"wordbit.io/wordbit"
)

// Encode packs entropy into a mnemonic of exactly words words from
// the given dictionary, under the given bit-accounting mode.
func Encode(entropy []byte, words int, d wordbit.Dictionary, mode wordbit.Mode) ([]wordbit.Word, error) {
	const op = "phrase.Encode"
	indices, err := codec.Encode(entropy, words, mode)
	if err != nil {
		return nil, errors.E(op, d.Name(), err)
	}
	return render(indices, d), nil
}

// EncodeSplit is Encode with an explicit checksum length, for
// mnemonic shapes outside the canonical plans.
func EncodeSplit(entropy []byte, checksumBits int, d wordbit.Dictionary) ([]wordbit.Word, error) {
	const op = "phrase.EncodeSplit"
	indices, err := codec.EncodeSplit(entropy, checksumBits)
	if err != nil {
		return nil, errors.E(op, d.Name(), err)
	}
	return render(indices, d), nil
}

// Decode recovers the entropy encoded by a mnemonic. Every word is
// looked up before any bit work happens, and all unknown words are
// reported together, so a user retyping a long phrase learns about
// every mistake at once.
//
// Like codec.Decode, a checksum mismatch returns the decoded bytes
// alongside the Checksum error; the bytes must be treated as
// untrusted.
func Decode(words []wordbit.Word, d wordbit.Dictionary, mode wordbit.Mode) ([]byte, error) {
	const op = "phrase.Decode"
	indices, err := lookup(words, d)
	if err != nil {
		return nil, errors.E(op, d.Name(), errors.UnknownWord, err)
	}
	entropy, err := codec.Decode(indices, mode)
	if err != nil {
		return entropy, errors.E(op, d.Name(), err)
	}
	return entropy, nil
}

// DecodeSplit is Decode with an explicit split, the inverse of
// EncodeSplit.
func DecodeSplit(words []wordbit.Word, entropyBytes, checksumBits int, d wordbit.Dictionary) ([]byte, error) {
	const op = "phrase.DecodeSplit"
	indices, err := lookup(words, d)
	if err != nil {
		return nil, errors.E(op, d.Name(), errors.UnknownWord, err)
	}
	entropy, err := codec.DecodeSplit(indices, entropyBytes, checksumBits)
	if err != nil {
		return entropy, errors.E(op, d.Name(), err)
	}
	return entropy, nil
}

// String joins a mnemonic into a single phrase string using the
// dictionary's separator.
func String(words []wordbit.Word, d wordbit.Dictionary) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(d.Separator())
		}
		b.WriteString(string(w))
	}
	return b.String()
}

// Split breaks a phrase string into its words on the dictionary's
// separator. It does no lookup; Decode reports unknown words.
func Split(s string, d wordbit.Dictionary) []wordbit.Word {
	parts := strings.Split(s, d.Separator())
	words := make([]wordbit.Word, len(parts))
	for i, p := range parts {
		words[i] = wordbit.Word(p)
	}
	return words
}

// EncodeString is Encode composed with String.
func EncodeString(entropy []byte, words int, d wordbit.Dictionary, mode wordbit.Mode) (string, error) {
	ws, err := Encode(entropy, words, d, mode)
	if err != nil {
		return "", err
	}
	return String(ws, d), nil
}

// DecodeString is Split composed with Decode.
func DecodeString(s string, d wordbit.Dictionary, mode wordbit.Mode) ([]byte, error) {
	const op = "phrase.DecodeString"
	if s == "" {
		return nil, errors.E(op, d.Name(), errors.Syntax, errors.Str("empty phrase"))
	}
	entropy, err := Decode(Split(s, d), d, mode)
	if err != nil {
		return entropy, errors.E(op, err)
	}
	return entropy, nil
}

// render maps indices to their dictionary words.
func render(indices []wordbit.Index, d wordbit.Dictionary) []wordbit.Word {
	words := make([]wordbit.Word, len(indices))
	for i, idx := range indices {
		words[i] = d.Word(idx)
	}
	return words
}

// lookup maps words to their indices, collecting every failure.
func lookup(words []wordbit.Word, d wordbit.Dictionary) ([]wordbit.Index, error) {
	indices := make([]wordbit.Index, len(words))
	var bad *multierror.Error
	for i, w := range words {
		idx, err := d.Index(w)
		if err != nil {
			bad = multierror.Append(bad, errors.Errorf("word %d: %q not in dictionary", i+1, w))
			continue
		}
		indices[i] = idx
	}
	if err := bad.ErrorOrNil(); err != nil {
		return nil, err
	}
	return indices, nil
}
