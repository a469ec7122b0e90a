// Package cmd implements the podium command tree.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/podiumlabs/podium/pkg/logging"
)

// flags shared by every subcommand.
var (
	flagDataDir   string
	flagBundleDir string
	flagOutput    string
	flagAliases   string
	flagFormat    string
	flagVerbose   bool
	flagQuiet     bool
)

func newRootCmd(version, commit, date string) *cobra.Command {
	root := &cobra.Command{
		Use:   "podium",
		Short: "Integrate a new Olympic edition into the historical dataset",
		Long: `podium merges a new edition's data bundle (athletes, NOCs, medallists,
teams, events) into the historical Olympic dataset and recomputes the
per-edition medal tally.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configure(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagDataDir, "data-dir", ".", "directory holding the base dataset files")
	pf.StringVar(&flagBundleDir, "bundle-dir", "paris", "directory holding the incoming edition's files")
	pf.StringVarP(&flagOutput, "output-dir", "o", ".", "directory the merged tables are written to")
	pf.StringVar(&flagAliases, "aliases", "", "YAML file of country name aliases")
	pf.StringVarP(&flagFormat, "format", "f", "", "output format: table, json, yaml, csv (default: auto)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "only log warnings and errors")

	root.AddCommand(newIntegrateCmd())
	root.AddCommand(newTallyCmd())

	return root
}

// configure resolves settings from flags, environment variables, and .env
// files, then installs the process logger. Flags win over the environment.
func configure(cmd *cobra.Command) error {
	// .env values become plain environment variables before viper binds them.
	_ = godotenv.Load(".env")

	viper.SetEnvPrefix("PODIUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	flagDataDir = viper.GetString("data-dir")
	flagBundleDir = viper.GetString("bundle-dir")
	flagOutput = viper.GetString("output-dir")
	if flagAliases == "" {
		flagAliases = viper.GetString("aliases")
	}

	logging.Configure(&logging.Config{
		Level:  logLevel(),
		Format: "auto",
		Output: "stderr",
	})
	return nil
}

func logLevel() string {
	switch {
	case flagVerbose:
		return "debug"
	case flagQuiet:
		return "warn"
	default:
		return "info"
	}
}

// Execute runs the command tree.
func Execute(ctx context.Context, version, commit, date string) error {
	root := newRootCmd(version, commit, date)
	if err := root.ExecuteContext(ctx); err != nil {
		logging.Err(err).Msg("command failed")
		return err
	}
	return nil
}
