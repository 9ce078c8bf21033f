// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// chatbot_test.go - Unit tests for the Bot and its conversation loop, using
// Testify for expressive assertions.

package chatbot

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestBot(t *testing.T) *Bot {
	r := NewResponderFromTables(
		KeywordTable{"hello": "hello! how can i help you today?", "slow": "have you tried restarting it?"},
		[]string{"I'm not sure how to respond to that."},
		testOptions(t),
	)
	return NewBot("TestBot", r, zaptest.NewLogger(t))
}

// Tests that known greeting inputs return the correct greeting response.
func TestRespond_Greetings(t *testing.T) {
	bot := newTestBot(t)
	assert.Equal(t, "hello! how can i help you today?", bot.Respond("hello"))
	assert.Equal(t, "hello! how can i help you today?", bot.Respond("  HELLO  ")) // whitespace trimmed
	assert.Equal(t, "hello! how can i help you today?", bot.Respond("well hello"))
}

// Tests a variety of unrecognized inputs.
// These validate fallback behavior for unknown or malformed queries.
func TestRespond_Unknown(t *testing.T) {
	bot := newTestBot(t)

	assert.Equal(t, "I'm not sure how to respond to that.", bot.Respond("tell me a joke"))
	assert.Equal(t, "I'm not sure how to respond to that.", bot.Respond("  ")) // empty input
	assert.Equal(t, "I'm not sure how to respond to that.", bot.Respond("42?"))
}

// A full session: banner, prompt, one multi-line question, then bye.
func TestRun_Conversation(t *testing.T) {
	bot := newTestBot(t)
	in := strings.NewReader("My computer\nis SLOW\n\nbye\n\n")
	var out bytes.Buffer

	require.NoError(t, bot.Run(context.Background(), in, &out))

	assert.Equal(t,
		"Chat with TestBot! Type 'bye' to exit.\n"+
			"> have you tried restarting it?\n"+
			"> TestBot: Goodbye!\n",
		out.String())
}

// The loop ends cleanly when input runs out.
func TestRun_EndOfInput(t *testing.T) {
	bot := newTestBot(t)
	var out bytes.Buffer

	require.NoError(t, bot.Run(context.Background(), strings.NewReader("hello"), &out))

	assert.Equal(t,
		"Chat with TestBot! Type 'bye' to exit.\n"+
			"> hello! how can i help you today?\n"+
			"> \n",
		out.String())
}

// A cancelled context stops the loop before reading and is not an error.
func TestRun_Cancelled(t *testing.T) {
	bot := newTestBot(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, bot.Run(ctx, strings.NewReader("hello\n"), &out))
	assert.Equal(t, "Chat with TestBot! Type 'bye' to exit.\n\n", out.String())
}

// Cancelling while the bot waits for input ends the conversation right away.
func TestRun_CancelledWhileReading(t *testing.T) {
	bot := newTestBot(t)
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- bot.Run(ctx, pr, &out) }()

	_, err := pw.Write([]byte("hello\n\n"))
	require.NoError(t, err)
	_, err = pw.Write([]byte("still typing\n")) // returns once the turn is being read
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t,
		"Chat with TestBot! Type 'bye' to exit.\n"+
			"> hello! how can i help you today?\n"+
			"> \n",
		out.String())
}

// "bye" ends the conversation even when other words match keywords.
func TestRun_ByeWinsOverKeywords(t *testing.T) {
	bot := newTestBot(t)
	var out bytes.Buffer

	require.NoError(t, bot.Run(context.Background(), strings.NewReader("hello and bye\n"), &out))
	assert.Equal(t, "Chat with TestBot! Type 'bye' to exit.\n> TestBot: Goodbye!\n", out.String())
}

// A keyword record for "bye" supplies the farewell.
func TestRun_ByeKeywordIsFarewell(t *testing.T) {
	r := NewResponderFromTables(KeywordTable{"bye": "see you soon!"}, nil, testOptions(t))
	bot := NewBot("TestBot", r, nil)
	var out bytes.Buffer

	require.NoError(t, bot.Run(context.Background(), strings.NewReader("ok bye\n"), &out))
	assert.Equal(t, "Chat with TestBot! Type 'bye' to exit.\n> see you soon!\n", out.String())
}

// Respond and Run give the same answers for the same input.
func TestRespond_MatchesRun(t *testing.T) {
	bot := newTestBot(t)
	var out bytes.Buffer

	require.NoError(t, bot.Run(context.Background(), strings.NewReader("is it SLOW\n"), &out))
	assert.Contains(t, out.String(), "> "+bot.Respond("is it SLOW")+"\n")
}
