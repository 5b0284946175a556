package cmd

import (
	"fmt"

	"github.com/Timisorean/Loki/loki"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ProblemCmd = NewProblemCmd()

func NewProblemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "problem domain.pddl problem.pddl [problem.pddl...]",
		Short:        "Check PDDL problems against their domain and print them in canonical form",
		RunE:         runProblem,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
	}
	addConfigFlags(cmd)
	return cmd
}

func runProblem(cmd *cobra.Command, args []string) error {
	config, err := setup(cmd)
	if err != nil {
		return err
	}
	domain, err := loadDomain(args[0], loki.Settings{})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, file := range args[1:] {
		dir, name, err := fileIn(file)
		if err != nil {
			return err
		}
		problem, err := domain.LoadProblem(dir, name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := problem.Write(out, config.FormattingOptions()); err != nil {
			return errors.Wrapf(err, "write problem %s", name)
		}
		fmt.Fprintln(out)
	}
	if config.Stats {
		return printStats(cmd.ErrOrStderr(), domain.Factories())
	}
	return nil
}
