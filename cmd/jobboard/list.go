package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"job-board-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var (
		filter domain.JobFilter
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job postings, newest first",
		Example: `  jobboard list
  jobboard list --type Contract --location remo --tag react`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := a.newBoard(cmd)
			if err := b.SetFilters(cmd.Context(), filter); err != nil {
				return err
			}

			jobs := b.Jobs()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(jobs)
			}
			return printJobs(cmd, jobs)
		},
	}

	addFilterFlags(cmd, &filter)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON listing")
	return cmd
}

func printJobs(cmd *cobra.Command, jobs []domain.Job) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No jobs found.")
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POSTED\tTITLE\tCOMPANY\tLOCATION\tTYPE\tTAGS\tLINK")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.CreatedAt.Format("2006-01-02"), j.Title, j.Company, j.Location, j.Type, strings.Join(j.Tags, ","), j.Link)
	}
	return w.Flush()
}
