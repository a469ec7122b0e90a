package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/podiumlabs/podium"
	"github.com/podiumlabs/podium/internal/cmd/output"
	"github.com/podiumlabs/podium/pkg/logging"
)

func newIntegrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "integrate",
		Short: "Merge the incoming bundle and write the five output tables",
		Long: `Integrate loads the base dataset and the incoming edition's bundle,
merges them, recomputes the medal tally, and writes the merged tables to the
output directory. Nothing is written if the merge fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := podium.Integrate(cmd.Context(), integrationOptions()...)
			if err != nil {
				return err
			}
			if err := res.Write(); err != nil {
				return err
			}

			logging.Info().
				Str("run_id", res.RunID).
				Str("output_dir", flagOutput).
				Msg("outputs written")

			for _, rej := range res.Report.Rejected {
				logging.Warn().
					Str("table", rej.Table).
					Str("source", rej.Source).
					Str("reason", rej.Reason).
					Msg("row rejected")
			}
			for _, gap := range res.Report.Gaps {
				logging.Warn().Err(gap).Msg("event row excluded")
			}

			formatter := output.NewFormatter(output.DetectFormat(flagFormat))
			return formatter.Format(os.Stdout, output.ReportToTableData(res.Report))
		},
	}
}

func integrationOptions() []podium.Option {
	opts := []podium.Option{
		podium.WithDataDir(flagDataDir),
		podium.WithBundleDir(flagBundleDir),
		podium.WithOutputDir(flagOutput),
	}
	if flagAliases != "" {
		opts = append(opts, podium.WithAliasFile(flagAliases))
	}
	return opts
}
