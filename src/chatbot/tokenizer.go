// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// tokenizer.go - Turns raw user text into a set of lowercase words.

package chatbot

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordSet is the deduplicated, unordered collection of words typed in one turn.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from the given words as-is.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Tokenize lowercases and trims every line of raw, joins them with single
// spaces and splits the result into words. Blank input gives an empty set.
func Tokenize(raw string) WordSet {
	lines := strings.Split(raw, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = normalize(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return NewWordSet(strings.Fields(strings.Join(parts, " "))...)
}

// normalize trims s and folds it to lowercase. cases.Caser keeps state, so a
// fresh one is made per call.
func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
