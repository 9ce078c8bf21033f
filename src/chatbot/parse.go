// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// parse.go - Parsers for the keyword response file and the default response
// file. Both work on in-memory text so they can be tested without a filesystem.

package chatbot

import "strings"

// FallbackResponse is used when no default responses could be loaded.
const FallbackResponse = "Could you elaborate on that?"

// KeywordTable maps a lowercase keyword to its canned response.
type KeywordTable map[string]string

// ParseKeywords reads records of the form
//
//	key1,key2,...
//	response text
//	<blank line>
//
// until the end of text. Keys and responses are lowercased and trimmed.
// A later record overwrites an earlier mapping for the same key.
func ParseKeywords(text string) KeywordTable {
	table := KeywordTable{}
	lines := splitLines(text)

	for i := 0; i < len(lines); {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}
		keyLine := lines[i]
		i++
		if i >= len(lines) {
			break // keyword line with no response
		}
		response := normalize(lines[i])
		i++
		if response == "" {
			continue
		}
		for _, key := range strings.Split(keyLine, ",") {
			if key = normalize(key); key != "" {
				table[key] = response
			}
		}
	}
	return table
}

// ParseDefaults splits text into paragraphs separated by blank lines. The
// lines of each paragraph are concatenated without a separator. The result
// may be empty; the Responder is what guarantees a fallback.
func ParseDefaults(text string) []string {
	var (
		responses []string
		current   strings.Builder
	)
	commit := func() {
		if current.Len() > 0 {
			responses = append(responses, current.String())
			current.Reset()
		}
	}

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			commit()
			continue
		}
		current.WriteString(line)
	}
	commit()

	return responses
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
