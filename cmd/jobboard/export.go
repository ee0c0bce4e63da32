package main

import (
	"bytes"
	"fmt"
	"os"

	"job-board-backend/internal/board"
	"job-board-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		filter domain.JobFilter
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the filtered listing as a spreadsheet",
		Example: `  jobboard export --format csv --tag go
  jobboard export --out jobs.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if filter.Type == board.TypeAll {
				filter.Type = ""
			}

			var buf bytes.Buffer
			name, err := a.client().Export(cmd.Context(), filter, format, &buf)
			if err != nil {
				return err
			}

			target := out
			if target == "" {
				target = name
			}
			if target == "" {
				target = "jobs." + format
			}
			if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bytes to %s\n", buf.Len(), target)
			return nil
		},
	}

	addFilterFlags(cmd, &filter)
	cmd.Flags().StringVar(&format, "format", domain.ExportFormatXLSX, "xlsx or csv")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: name suggested by the server)")
	return cmd
}
