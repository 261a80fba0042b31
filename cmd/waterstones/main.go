package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"waterstones/cmd/waterstones/storefront"
	"waterstones/internal/assistant"
	"waterstones/internal/config"
	"waterstones/internal/controller"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd launches the interactive storefront.
var rootCmd = &cobra.Command{
	Use:   "waterstones",
	Short: "Waterstones NextGen - a bookshop storefront with an AI concierge",
	Long: `Waterstones NextGen is a terminal storefront demo for a fictional
bookshop: browse the catalog, read AI literary insights, get mood-based
recommendations, and chat with "Page", the literary concierge.

All intelligence is delegated to the Gemini API; set GEMINI_API_KEY
before launching.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		// The TUI owns the terminal; keep log output away from it.
		zcfg.OutputPaths = []string{"stderr"}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runStorefront,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("waterstones %s\n", version)
	},
}

func runStorefront(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	gen, err := assistant.NewGemini(cmd.Context(), cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("assistant unavailable: %w", err)
	}

	concierge := assistant.New(gen, logger, assistant.WithTimeout(cfg.RequestTimeout))
	ctrl := controller.New(controller.NewGateway(concierge), logger)

	logger.Info("storefront starting",
		zap.String("model", cfg.Model),
		zap.Duration("request_timeout", cfg.RequestTimeout))

	program := tea.NewProgram(storefront.New(ctrl, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("storefront exited: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default $HOME/.waterstones.yaml)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
