package main

import (
	"fmt"
	"os"

	"github.com/powerpig99/simple-chatbot/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatbot",
	Short: "A rule-based console chatbot",
	Long: `chatbot answers what you type with canned responses.
Each line is lowercased, tokenized and lemmatized, then matched against an
ordered pattern table; the first pattern found in the line wins.
Type 'quit' to leave.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Execute(cmd.Context(), runOptions(cmd))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runOptions(cmd *cobra.Command) cli.RunOptions {
	debug, _ := cmd.Flags().GetBool("debug")
	patterns, _ := cmd.Flags().GetString("patterns")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	return cli.RunOptions{
		Debug:        debug,
		PatternsPath: patterns,
		DataDir:      dataDir,
		Stdin:        cmd.InOrStdin(),
		Stdout:       cmd.OutOrStdout(),
		Stderr:       cmd.ErrOrStderr(),
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("patterns", "", "YAML pattern table to use instead of the built-in one")

	rootCmd.Flags().Bool("debug", false, "Write debug logs to stderr")
	rootCmd.Flags().String("data-dir", "", "Directory containing index.noun and noun.exc")
}
