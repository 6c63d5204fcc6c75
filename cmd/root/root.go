// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fjacquet/finstatement/internal/categorizer"
	"fjacquet/finstatement/internal/config"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/parser"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the application configuration, populated before any command runs
	Cfg *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	gemini *categorizer.GeminiClient

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finstatement",
		Short: "A CLI tool to extract structured data from financial statement text.",
		Long: `finstatement parses bank and credit-card statements (plain text or PDF)
into structured data: account details, statement period, balances and
categorized transactions, with per-field confidence scores.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finstatement!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			Cfg = cfg

			Log = config.ConfigureLogging(cfg)
			logging.SetLogger(Log)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if gemini != nil {
				if err := gemini.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close Gemini client")
				}
			}
		},
	}
)

// NewParser builds a statement parser with the configured categorizer
// chain: YAML rules first, the built-in keyword table, and the Gemini
// strategy as a last resort when AI is enabled. A Gemini client that
// fails to initialize is logged and left out rather than aborting.
func NewParser() *parser.StatementParser {
	store := categorizer.NewYAMLRuleStore(Cfg.Categories.RulesFile)

	var ai categorizer.AIClient
	if Cfg.AI.Enabled {
		client, err := categorizer.NewGeminiClient(context.Background(), Cfg.AI.APIKey, Cfg.AI.Model, Log)
		if err != nil {
			Log.WithError(err).Warn("AI categorization unavailable")
		} else {
			gemini = client
			ai = client
		}
	}

	return parser.New(categorizer.New(store, ai, Log), nil, Log)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (or directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for batch)")
}
