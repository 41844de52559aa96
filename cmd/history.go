package cmd

import (
	"fmt"
	"io"

	"github.com/josephlewis42/catfish/core/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the saved command history.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		historyFs, name := configuration.HistoryLocation()
		h := history.New(historyFs, name, configuration.HistoryLimit)
		if err := h.Load(); err != nil {
			return err
		}

		printHistory(cmd.OutOrStdout(), h.Lines())
		return nil
	},
}

func printHistory(w io.Writer, lines []string) {
	for i, line := range lines {
		fmt.Fprintf(w, "% 5d  %s\n", i+1, line)
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
