// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// root.go - The root command. Loads the configuration and the response
// files, then chats over stdin and stdout.

package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/christimahu/dev/blueprints/responder/src/chatbot"
	"github.com/christimahu/dev/blueprints/responder/src/config"
	"github.com/christimahu/dev/blueprints/responder/src/logging"
)

// flagKeys maps each flag to its configuration key.
var flagKeys = map[string]string{
	"name":      "bot_name",
	"responses": "responses_file",
	"defaults":  "defaults_file",
	"seed":      "seed",
	"log-level": "logging.level",
	"log-file":  "logging.file",
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "responder",
		Short: "A keyword-driven chatbot",
		Long: `responder answers whatever you type with a canned reply. Replies come from
a keyword file (responses.txt); when none of your words is a keyword, a random
reply is picked from the default file (default.txt).

End a message with an empty line. Type 'bye' to quit.`,
		SilenceUsage: true,
		RunE:         runChat,
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to a YAML config file")
	flags.String("name", "", "Name the bot introduces itself with")
	flags.String("responses", "", "Keyword response file (default: responses.txt)")
	flags.String("defaults", "", "Default response file (default: default.txt)")
	flags.Int64("seed", 0, "Seed for picking default responses (0 = time-based)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default: warn)")
	flags.String("log-file", "", "Also write logs to this file, rotated")

	return cmd
}

// Execute runs the root command and exits with status 1 on error.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	log, closeLog := logging.New(cfg.Logging.Level, cfg.Logging.File)
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	responder := chatbot.NewResponder(chatbot.Options{
		KeywordFile:  cfg.ResponsesFile,
		DefaultsFile: cfg.DefaultsFile,
		Rand:         rand.New(rand.NewSource(seed)),
		Logger:       log,
	})
	log.Info("Responder ready",
		zap.Int("keywords", len(responder.Keywords())),
		zap.Int("defaults", len(responder.Defaults())),
		zap.Int64("seed", seed),
	)

	bot := chatbot.NewBot(cfg.BotName, responder, log)
	return bot.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
