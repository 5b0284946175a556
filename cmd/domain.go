package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/Timisorean/Loki/internal/log"
	"github.com/Timisorean/Loki/loki"
	"github.com/Timisorean/Loki/pddl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var DomainCmd = NewDomainCmd()

func NewDomainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "domain domain.pddl",
		Short:        "Check a PDDL domain and print it in canonical form",
		RunE:         runDomain,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}
	addConfigFlags(cmd)
	return cmd
}

// setup resolves the config of cmd and applies its log level
func setup(cmd *cobra.Command) (Config, error) {
	config, err := resolveConfig(cmd)
	if err != nil {
		return config, err
	}
	level, err := config.Level()
	if err != nil {
		return config, err
	}
	log.SetLevel(level)
	return config, nil
}

// fileIn returns a file system rooted at the directory of file, and the name of file in it
func fileIn(file string) (fs.FS, string, error) {
	target, err := filepath.Abs(file)
	if err != nil {
		return nil, "", errors.Wrapf(err, "could not get absolute path of %s", file)
	}
	return os.DirFS(filepath.Dir(target)), filepath.Base(target), nil
}

func loadDomain(file string, settings loki.Settings) (*loki.Domain, error) {
	dir, name, err := fileIn(file)
	if err != nil {
		return nil, err
	}
	return loki.LoadDomain(dir, name, settings)
}

func runDomain(cmd *cobra.Command, args []string) error {
	config, err := setup(cmd)
	if err != nil {
		return err
	}
	domain, err := loadDomain(args[0], loki.Settings{})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := domain.Write(out, config.FormattingOptions()); err != nil {
		return errors.Wrap(err, "write domain")
	}
	fmt.Fprintln(out)
	if config.Stats {
		return printStats(cmd.ErrOrStderr(), domain.Factories())
	}
	return nil
}

func printStats(w io.Writer, factories *pddl.Factories) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "family\tdistinct")
	for _, stat := range factories.Stats() {
		fmt.Fprintf(tw, "%s\t%d\n", stat.Family, stat.Count)
	}
	return tw.Flush()
}
