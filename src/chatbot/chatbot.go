// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// chatbot.go - A chatbot that answers from a Responder and drives the
// read, respond, print loop.

package chatbot

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuitWord ends a conversation when it appears anywhere in the input. If the
// keyword table has a response for it, that response is the farewell.
const QuitWord = "bye"

// Bot is a chatbot that knows its name and where its replies come from.
type Bot struct {
	Name      string
	responder *Responder
	log       *zap.Logger
}

// NewBot returns a new Bot instance with the provided name.
func NewBot(name string, responder *Responder, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{Name: name, responder: responder, log: log}
}

// Respond is the single-shot form of a turn: it tokenizes input and returns
// the reply, without any of the quit handling done by Run.
func (b *Bot) Respond(input string) string {
	return b.answer(Tokenize(input), b.log)
}

func (b *Bot) answer(words WordSet, log *zap.Logger) string {
	if response, ok := b.responder.Match(words); ok {
		log.Debug("Keyword matched", zap.Int("words", len(words)))
		return response
	}
	log.Debug("No keyword matched, using a default response", zap.Int("words", len(words)))
	return b.responder.pickDefaultResponse()
}

func (b *Bot) farewell() string {
	if response, ok := b.responder.Lookup(QuitWord); ok {
		return response
	}
	return b.Name + ": Goodbye!"
}

type turn struct {
	words WordSet
	ok    bool
	err   error
}

// Run talks with the user until input ends, ctx is cancelled or the user
// says bye. Cancellation is a normal end of the conversation, even while
// waiting for input.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := b.log.With(zap.String("session", uuid.NewString()))
	reader := NewInputReader(in, out)

	fmt.Fprintf(out, "Chat with %s! Type '%s' to exit.\n", b.Name, QuitWord)
	log.Debug("Conversation started")

	turns := 0
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(out)
			log.Debug("Conversation cancelled", zap.Int("turns", turns))
			return nil
		}

		// Read off the loop goroutine so ctx can interrupt a blocked Scan.
		// results is buffered: an abandoned read finishes once input closes.
		fmt.Fprint(out, Prompt)
		results := make(chan turn, 1)
		go func() {
			words, ok, err := reader.readWords()
			results <- turn{words: words, ok: ok, err: err}
		}()

		var t turn
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			log.Debug("Conversation cancelled while reading", zap.Int("turns", turns))
			return nil
		case t = <-results:
		}

		if t.err != nil {
			return t.err
		}
		if !t.ok {
			fmt.Fprintln(out)
			log.Debug("Input closed", zap.Int("turns", turns))
			return nil
		}
		if t.words.Contains(QuitWord) {
			fmt.Fprintln(out, b.farewell())
			log.Debug("Conversation ended", zap.Int("turns", turns))
			return nil
		}

		turns++
		fmt.Fprintln(out, b.answer(t.words, log))
	}
}
