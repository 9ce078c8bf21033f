// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// input.go - Reads what the user types. Input may span several lines and ends
// at the first blank line.

package chatbot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompt is written before each read.
const Prompt = "> "

// InputReader reads multi-line input from a text stream.
type InputReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewInputReader reads from in and writes prompts to out.
func NewInputReader(in io.Reader, out io.Writer) *InputReader {
	return &InputReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadInput prompts, then reads lines until a blank line or end of input and
// returns their words. ok is false once input is exhausted and nothing was read.
func (r *InputReader) ReadInput() (words WordSet, ok bool, err error) {
	fmt.Fprint(r.out, Prompt)
	return r.readWords()
}

// readWords is ReadInput without the prompt. It never writes to out.
func (r *InputReader) readWords() (words WordSet, ok bool, err error) {
	var lines []string
	sawLine := false
	for r.scanner.Scan() {
		sawLine = true
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("error reading input: %w", err)
	}

	return Tokenize(strings.Join(lines, "\n")), sawLine, nil
}
