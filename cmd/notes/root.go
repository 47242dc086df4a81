package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mdnotes/internal/config"
	"mdnotes/internal/notes"
	"mdnotes/internal/storage"
)

var (
	verbose bool
	cfg     = config.Load()

	kv  storage.KV
	svc *notes.Service
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Markdown notes from the command line",
	Long: `notes reads and edits the same note collection the web app serves.
Every change is written back to storage immediately.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
		logger := cfg.Logger(os.Stderr)
		slog.SetDefault(logger)

		cfg.Storage.Path = config.StoragePath(cfg.Storage.Backend, cfg.DataDir)
		var err error
		kv, err = storage.Open(cmd.Context(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		repo := notes.NewRepo(kv, logger)
		svc = notes.NewService(notes.NewStore(cmd.Context(), repo, notes.WithLogger(logger)))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the command line and closes storage afterwards, also when the
// command failed.
func execute() error {
	defer closeStorage()
	return rootCmd.Execute()
}

func closeStorage() {
	if kv == nil {
		return
	}
	if err := kv.Close(); err != nil {
		slog.Warn("failed to close storage", "error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage.Backend, "storage", cfg.Storage.Backend, "Storage backend: file, sqlite, mongo, memory or none")
	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "path", cfg.DataDir, "Data directory for file and sqlite storage")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage.MongoURI, "mongo-uri", cfg.Storage.MongoURI, "MongoDB connection URI")
}
