// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// main.go - Entry point for the responder application. Accepts user input and
// answers with canned responses via the chatbot package.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/christimahu/dev/blueprints/responder/src/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Execute(ctx)
}
