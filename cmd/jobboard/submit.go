package main

import (
	"job-board-backend/internal/board"
	"job-board-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newSubmitCmd(a *app) *cobra.Command {
	form := board.NewForm()
	var (
		jobType string
		tags    []string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new job posting",
		Example: `  jobboard submit --title "Go Developer" --company Acme \
    --link https://acme.test/jobs/1 --description "Build APIs" --tag go --tag k8s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := a.newBoard(cmd)
			b.OpenDialog()
			b.EditForm(func(f *board.Form) {
				f.Title = form.Title
				f.Company = form.Company
				f.Link = form.Link
				f.Description = form.Description
				f.Location = form.Location
				f.Type = domain.JobType(jobType)
			})
			for _, t := range tags {
				b.AddTag(t)
			}
			return b.Submit(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "job title (required)")
	cmd.Flags().StringVar(&form.Company, "company", "", "company name (required)")
	cmd.Flags().StringVar(&form.Link, "link", "", "application link (required)")
	cmd.Flags().StringVar(&form.Description, "description", "", "job description (required)")
	cmd.Flags().StringVar(&form.Location, "location", form.Location, "job location")
	cmd.Flags().StringVar(&jobType, "type", string(form.Type), "job type: "+jobTypeList())
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag to attach; repeat for several")
	completeJobTypes(cmd)
	return cmd
}
