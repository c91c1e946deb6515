package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/powerpig99/simple-chatbot/internal/cli"
	"github.com/powerpig99/simple-chatbot/internal/logging"
	"github.com/powerpig99/simple-chatbot/pkg/domain"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the pattern table in match order",
	Long: `Prints every pattern with its response, in the order they are tried.
An earlier pattern that is contained in a later one shadows it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("patterns")

		table, err := cli.LoadTable(path, logging.NewNop())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tPATTERN\tRESPONSE")
		for i, p := range table.Entries() {
			fmt.Fprintf(w, "%d\t%q\t%s\n", i+1, p.Pattern, p.Response)
		}
		fmt.Fprintf(w, "-\t%s\t%s\n", domain.DefaultPatternName, table.Default())
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
