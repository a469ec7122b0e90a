package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/podiumlabs/podium"
	"github.com/podiumlabs/podium/internal/cmd/output"
)

func newTallyCmd() *cobra.Command {
	var editionID string

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Run the merge in memory and render the medal tally",
		Long: `Tally runs the full integration without writing the merged tables and
renders the recomputed medal tally. Use --edition-id to restrict the output
to a single edition.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := podium.Integrate(cmd.Context(), integrationOptions()...)
			if err != nil {
				return err
			}

			rows := res.Tally
			if editionID != "" {
				filtered := rows[:0]
				for _, row := range rows {
					if row.EditionID == editionID {
						filtered = append(filtered, row)
					}
				}
				rows = filtered
			}

			format := output.DetectFormat(flagFormat)
			formatter := output.NewFormatter(format)
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return formatter.Format(os.Stdout, rows)
			default:
				return formatter.Format(os.Stdout, output.TallyToTableData(rows))
			}
		},
	}

	cmd.Flags().StringVar(&editionID, "edition-id", "", "restrict the tally to one edition")
	return cmd
}
