// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// errors.go - Load errors for the response files.

package chatbot

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadErrorKind classifies why a response file could not be read.
type LoadErrorKind uint8

const (
	FileNotFound LoadErrorKind = iota
	IOError
)

func (k LoadErrorKind) String() string {
	if k == FileNotFound {
		return "file not found"
	}
	return "i/o error"
}

// LoadError is reported when a response file can't be read. It never stops
// the Responder from being built.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// readResponseFile returns the contents of path, or a *LoadError.
func readResponseFile(path string) (string, error) {
	path = filepath.FromSlash(path)

	info, err := os.Stat(path)
	if err != nil {
		return "", classify(path, errors.Wrap(err, `filepath: `+path))
	}
	if info.IsDir() {
		return "", &LoadError{Kind: IOError, Path: path, Err: errors.New(`filepath: ` + path + ` is a directory`)}
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", classify(path, errors.Wrap(err, `filepath: `+path))
	}
	return string(bytes), nil
}

func classify(path string, err error) *LoadError {
	kind := IOError
	if errors.Is(errors.Cause(err), fs.ErrNotExist) {
		kind = FileNotFound
	}
	return &LoadError{Kind: kind, Path: path, Err: err}
}
