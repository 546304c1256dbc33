package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/Gobd/wordplay"
	"github.com/Gobd/wordplay/internal/config"
	"github.com/Gobd/wordplay/internal/server"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Small text transformations",
		Long: `wordplay applies small text transformations: a ROT13 cipher, English
verb inflection, pangram and palindrome checks, character frequencies,
whitespace correction and a greeting card translator.

Text commands join their arguments with spaces. The serve command exposes
the same functions as a JSON HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	cmd.AddCommand(
		textCmd("rot13", "Apply the ROT13 cipher", wordplay.Rot13),
		textCmd("correct", "Collapse whitespace and space out sentences", wordplay.Correct),
		textCmd("robber", "Encode text in robber language", wordplay.RobberLanguage),
		textCmd("3sg", "Third person singular form of a verb", wordplay.ThirdPersonSingular),
		textCmd("ing", "Present participle of a verb", wordplay.PresentParticiple),
		checkCmd("pangram", "Report whether the text is a pangram", wordplay.IsPangram),
		checkCmd("palindrome", "Report whether the text is a palindrome phrase", wordplay.IsPalindromePhrase),
		freqCmd(),
		translateCmd(),
		serveCmd(&opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

func textCmd(use, short string, f func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), f(strings.Join(args, " ")))
		},
	}
}

func checkCmd(use, short string, f func(string) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), f(strings.Join(args, " ")))
		},
	}
}

func freqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freq TEXT...",
		Short: "Count how often each character occurs",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			freq := wordplay.CharFreq(strings.Join(args, " "))
			chars := make([]rune, 0, len(freq))
			for c := range freq {
				chars = append(chars, c)
			}
			sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
			for _, c := range chars {
				fmt.Fprintf(cmd.OutOrStdout(), "%q\t%d\n", c, freq[c])
			}
		},
	}
}

func translateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate WORD...",
		Short: "Translate greeting card words to Swedish",
		Long:  "Translate greeting card words to Swedish. Known words: " + strings.Join(wordplay.Lexicon(), ", ") + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := wordplay.Translate(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, " "))
			return nil
		},
	}
}

func serveCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger, err := newLogger(cfg.Log.Level)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			srv, err := server.New(logger, Version)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg.Server, srv, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; overrides the config file")
	return cmd
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

func newLogger(level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
