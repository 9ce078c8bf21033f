// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// responder.go - The response engine. A Responder maps input words to canned
// replies from a keyword table, and falls back to a random default reply when
// none of the words is known.

package chatbot

import (
	"maps"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default file names, relative to the working directory.
const (
	DefaultKeywordFile  = "responses.txt"
	DefaultDefaultsFile = "default.txt"
)

// Options configures a Responder. Zero values are replaced with defaults.
type Options struct {
	KeywordFile  string
	DefaultsFile string
	Rand         *rand.Rand
	Logger       *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.KeywordFile == "" {
		o.KeywordFile = DefaultKeywordFile
	}
	if o.DefaultsFile == "" {
		o.DefaultsFile = DefaultDefaultsFile
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Responder generates replies. Its tables are read-only after construction,
// so a single Responder can be shared between goroutines.
type Responder struct {
	keywords KeywordTable
	defaults []string
	loadErrs []*LoadError

	mu  sync.Mutex // guards rng
	rng *rand.Rand
	log *zap.Logger
}

// NewResponder loads the keyword and default response files named in opts.
// A file that can't be read is logged and skipped; the Responder is always
// usable.
func NewResponder(opts Options) *Responder {
	opts = opts.withDefaults()
	log := opts.Logger

	var loadErrs []*LoadError

	keywords := KeywordTable{}
	if text, err := readResponseFile(opts.KeywordFile); err != nil {
		loadErrs = append(loadErrs, err.(*LoadError))
		log.Error("Unable to load keyword responses", zap.String("path", opts.KeywordFile), zap.Error(err))
	} else {
		keywords = ParseKeywords(text)
		log.Debug("Loaded keyword responses", zap.String("path", opts.KeywordFile), zap.Int("keywords", len(keywords)))
	}

	var defaults []string
	if text, err := readResponseFile(opts.DefaultsFile); err != nil {
		loadErrs = append(loadErrs, err.(*LoadError))
		log.Error("Unable to load default responses", zap.String("path", opts.DefaultsFile), zap.Error(err))
	} else {
		defaults = ParseDefaults(text)
		log.Debug("Loaded default responses", zap.String("path", opts.DefaultsFile), zap.Int("responses", len(defaults)))
	}

	r := NewResponderFromTables(keywords, defaults, opts)
	r.loadErrs = loadErrs
	return r
}

// NewResponderFromTables builds a Responder from in-memory tables. The file
// paths in opts are ignored.
func NewResponderFromTables(keywords KeywordTable, defaults []string, opts Options) *Responder {
	opts = opts.withDefaults()

	if len(defaults) == 0 {
		opts.Logger.Warn("No default responses, using fallback", zap.String("fallback", FallbackResponse))
		defaults = []string{FallbackResponse}
	}

	return &Responder{
		keywords: maps.Clone(keywords),
		defaults: append([]string(nil), defaults...),
		rng:      opts.Rand,
		log:      opts.Logger,
	}
}

// GenerateResponse returns the response for the first word found in the
// keyword table. Set iteration order decides which keyword wins when several
// match. With no match, a random default response is returned.
func (r *Responder) GenerateResponse(words WordSet) string {
	if response, ok := r.Match(words); ok {
		return response
	}
	return r.pickDefaultResponse()
}

// Match returns the response of the first word found in the keyword table.
func (r *Responder) Match(words WordSet) (string, bool) {
	for word := range words {
		if response, ok := r.Lookup(word); ok {
			return response, true
		}
	}
	return "", false
}

// Lookup returns the response mapped to a single keyword.
func (r *Responder) Lookup(word string) (string, bool) {
	response, ok := r.keywords[word]
	return response, ok
}

func (r *Responder) pickDefaultResponse() string {
	r.mu.Lock()
	index := r.rng.Intn(len(r.defaults))
	r.mu.Unlock()
	return r.defaults[index]
}

// Keywords returns a copy of the keyword table.
func (r *Responder) Keywords() KeywordTable {
	return maps.Clone(r.keywords)
}

// Defaults returns a copy of the default responses. It is never empty.
func (r *Responder) Defaults() []string {
	return append([]string(nil), r.defaults...)
}

// LoadErrors returns the problems hit while reading the response files.
func (r *Responder) LoadErrors() []*LoadError {
	return append([]*LoadError(nil), r.loadErrs...)
}
