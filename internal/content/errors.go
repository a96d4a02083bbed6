// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"errors"
	"fmt"
	"io/fs"
)

// Read failure classes. Every read error wraps exactly one of these.
var (
	// ErrNotFound means the file or directory does not exist.
	ErrNotFound = errors.New("content not found")

	// ErrUnreadable means the source exists but could not be read.
	ErrUnreadable = errors.New("content unreadable")

	// ErrMalformed means the source was read but failed to parse or validate.
	ErrMalformed = errors.New("content malformed")
)

// Error describes a failed read of one content source.
type Error struct {
	Class  error // ErrNotFound, ErrUnreadable or ErrMalformed
	Kind   Kind
	Locale string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s (%s): %v", e.Kind, e.Path, e.Locale, e.Class)
	}
	return fmt.Sprintf("%s %s (%s): %v: %v", e.Kind, e.Path, e.Locale, e.Class, e.Err)
}

// Unwrap exposes both the class and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Class}
	}
	return []error{e.Class, e.Err}
}

func notFound(kind Kind, locale, path string) *Error {
	return &Error{Class: ErrNotFound, Kind: kind, Locale: locale, Path: path}
}

func malformed(kind Kind, locale, path string, err error) *Error {
	return &Error{Class: ErrMalformed, Kind: kind, Locale: locale, Path: path, Err: err}
}

// readFailure classifies a file system error.
func readFailure(kind Kind, locale, path string, err error) *Error {
	class := ErrUnreadable
	if errors.Is(err, fs.ErrNotExist) {
		class = ErrNotFound
	}
	return &Error{Class: class, Kind: kind, Locale: locale, Path: path, Err: err}
}
