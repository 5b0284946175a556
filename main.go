package main

import (
	"os"

	"github.com/Timisorean/Loki/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "loki [subcommand]",
	Short:        "loki reads PDDL domains and problems, reports semantic errors and prints them back",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.DomainCmd)
	rootCmd.AddCommand(cmd.ProblemCmd)
}
