// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors defines the error handling used by all wordbit software.
package errors

import (
	"bytes"
	"fmt"
	"runtime"

	"wordbit.io/log"
	"wordbit.io/wordbit"
)

// Error is the type that implements the error interface.
// It contains a number of fields, each of different type.
// An Error value may leave some values unset.
type Error struct {
	// Word is the mnemonic word involved in the failing operation,
	// if any, such as a word missing from the dictionary.
	Word wordbit.Word
	// Lang is the name of the dictionary in use, if any.
	Lang wordbit.Language
	// Op is the operation being performed, usually the name of the method
	// being invoked (Encode, Parse, etc.).
	Op string
	// Kind is the class of error, such as a checksum mismatch,
	// or "Other" if its class is unknown or irrelevant.
	Kind Kind
	// The underlying error that triggered this one, if any.
	Err error
}

var (
	_       error = (*Error)(nil)
	zeroErr Error
)

// Separator is the string used to separate nested errors. By
// default, to make errors easier on the eye, nested errors are
// indented on a new line. A caller may instead choose to keep each
// error on a single line by modifying the separator string, perhaps
// to ":: ".
var Separator = ":\n\t"

// Kind defines the kind of error this is, mostly for use by callers
// that must act differently depending on the error, such as accepting
// a mnemonic whose checksum is only advisory.
type Kind uint8

// Kinds of errors.
const (
	Other       Kind = iota // Unclassified error. This value is not printed in the error message.
	Invalid                 // Invalid operation for this type of item.
	Syntax                  // Ill-formed argument such as a malformed phrase string.
	WordCount               // Word count with no valid bit-accounting solution.
	Index                   // Word index outside the dictionary range.
	UnknownWord             // Word not present in the selected dictionary.
	Checksum                // Decoded checksum does not match the recomputed digest.
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case Invalid:
		return "invalid operation"
	case Syntax:
		return "syntax error"
	case WordCount:
		return "invalid word count"
	case Index:
		return "word index out of range"
	case UnknownWord:
		return "unknown word"
	case Checksum:
		return "checksum mismatch"
	}
	return "unknown error kind"
}

// E builds an error value from its arguments.
// The type of each argument determines its meaning.
// If more than one argument of a given type is presented,
// only the last one is recorded.
//
// The types are:
//	wordbit.Word
//		The mnemonic word involved in the failing operation.
//	wordbit.Language
//		The name of the dictionary in use.
//	string
//		The operation being performed, usually the method
//		being invoked (Encode, Parse, etc.)
//	errors.Kind
//		The class of error, such as a checksum mismatch.
//	error
//		The underlying error that triggered this one.
//
// If the error is printed, only those items that have been
// set to non-zero values will appear in the result.
//
// If Kind is not specified or Other, we set it to the Kind of
// the underlying error.
//
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("call to errors.E with no arguments")
	}
	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case wordbit.Word:
			e.Word = arg
		case wordbit.Language:
			e.Lang = arg
		case string:
			e.Op = arg
		case Kind:
			e.Kind = arg
		case *Error:
			// Make a copy
			copy := *arg
			e.Err = &copy
		case error:
			e.Err = arg
		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("errors.E: bad call from %s:%d: %v", file, line, args)
			return Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}
	prev, ok := e.Err.(*Error)
	if !ok {
		return e
	}

	// The previous error was also one of ours. Suppress duplications
	// so the message won't contain the same kind, word or language
	// twice.
	if prev.Word == e.Word {
		prev.Word = ""
	}
	if prev.Lang == e.Lang {
		prev.Lang = ""
	}
	if prev.Kind == e.Kind {
		prev.Kind = Other
	}
	// If this error has Kind unset or Other, pull up the inner one.
	if e.Kind == Other {
		e.Kind = prev.Kind
		prev.Kind = Other
	}
	return e
}

// pad appends str to the buffer if the buffer already has some data.
func pad(b *bytes.Buffer, str string) {
	if b.Len() == 0 {
		return
	}
	b.WriteString(str)
}

func (e *Error) Error() string {
	b := new(bytes.Buffer)
	if e.Word != "" {
		b.WriteString("word ")
		b.WriteString(string(e.Word))
	}
	if e.Lang != "" {
		pad(b, ", ")
		b.WriteString("lang ")
		b.WriteString(string(e.Lang))
	}
	if e.Op != "" {
		pad(b, ": ")
		b.WriteString(e.Op)
	}
	if e.Kind != 0 {
		pad(b, ": ")
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		// Indent on new line if we are cascading non-empty wordbit errors.
		if prevErr, ok := e.Err.(*Error); ok {
			if *prevErr != zeroErr {
				pad(b, Separator)
				b.WriteString(e.Err.Error())
			}
		} else {
			pad(b, ": ")
			b.WriteString(e.Err.Error())
		}
	}
	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

// Recreate the errors.New functionality of the standard Go errors package
// so we can create simple text errors when needed.

// Str returns an error that formats as the given text. It is intended to
// be used as the error-typed argument to the E function.
func Str(text string) error {
	return &errorString{text}
}

// errorString is a trivial implementation of error.
type errorString struct {
	s string
}

func (e *errorString) Error() string {
	return e.s
}

// Errorf is equivalent to fmt.Errorf, but allows clients to import only this
// package for all error handling.
func Errorf(format string, args ...interface{}) error {
	return &errorString{fmt.Sprintf(format, args...)}
}

// Match compares its two error arguments. It can be used to check
// for expected errors in tests. Both arguments must have underlying
// type *Error or Match will return false. Otherwise it returns true
// iff every non-zero element of the first error is equal to the
// corresponding element of the second.
// If the Err field is a *Error, Match recurs on that field;
// otherwise it compares the strings returned by the Error methods.
// Elements that are in the second argument but not present in
// the first are ignored.
//
// For example,
//	Match(errors.E(wordbit.Word("zebra"), errors.UnknownWord), err)
// tests whether err is an Error with Kind=UnknownWord and Word=zebra.
func Match(err1, err2 error) bool {
	e1, ok := err1.(*Error)
	if !ok {
		return false
	}
	e2, ok := err2.(*Error)
	if !ok {
		return false
	}
	if e1.Word != "" && e2.Word != e1.Word {
		return false
	}
	if e1.Lang != "" && e2.Lang != e1.Lang {
		return false
	}
	if e1.Op != "" && e2.Op != e1.Op {
		return false
	}
	if e1.Kind != Other && e2.Kind != e1.Kind {
		return false
	}
	if e1.Err != nil {
		if err2, ok := e2.Err.(*Error); ok {
			return Match(e1.Err, err2)
		}
		if e2.Err == nil || e2.Err.Error() != e1.Err.Error() {
			return false
		}
	}
	return true
}

// Is reports whether err is an *Error of the given Kind.
// If err is nil then Is returns false.
func Is(kind Kind, err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	if e.Kind != Other {
		return e.Kind == kind
	}
	if e.Err != nil {
		return Is(kind, e.Err)
	}
	return false
}
