package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"job-board-backend/internal/board"
	"job-board-backend/internal/domain"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultAPIURL = "http://localhost:8080"

// app holds what every subcommand needs once flags and env are resolved.
type app struct {
	cfg *viper.Viper
}

func (a *app) client() *board.APIClient {
	return board.NewAPIClient(a.cfg.GetString("api_url"), &http.Client{Timeout: a.cfg.GetDuration("timeout")})
}

// newBoard wires a board whose notices go to the command's stderr.
func (a *app) newBoard(cmd *cobra.Command) *board.Board {
	notify := board.NotifierFunc(func(n board.Notice) {
		prefix := "ok"
		if n.Level == board.LevelError {
			prefix = "error"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", prefix, n.Message)
	})
	return board.New(a.client(), notify)
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New()}
	a.cfg.SetEnvPrefix("JOBBOARD")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()
	a.cfg.SetDefault("api_url", defaultAPIURL)
	a.cfg.SetDefault("timeout", 30*time.Second)

	root := &cobra.Command{
		Use:          "jobboard",
		Short:        "Browse, submit and export job postings",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("api-url", defaultAPIURL, "base URL of the job board API (env JOBBOARD_API_URL)")
	root.PersistentFlags().Duration("timeout", 30*time.Second, "HTTP timeout per request (env JOBBOARD_TIMEOUT)")
	_ = a.cfg.BindPFlag("api_url", root.PersistentFlags().Lookup("api-url"))
	_ = a.cfg.BindPFlag("timeout", root.PersistentFlags().Lookup("timeout"))

	root.AddCommand(
		newListCmd(a),
		newSubmitCmd(a),
		newPreviewCmd(a),
		newExportCmd(a),
	)
	return root
}

// addFilterFlags registers --type, --location and --tag on cmd.
func addFilterFlags(cmd *cobra.Command, f *domain.JobFilter) {
	cmd.Flags().StringVar(&f.Type, "type", "", "exact job type: "+jobTypeList()+` or "all"`)
	cmd.Flags().StringVar(&f.Location, "location", "", "case-insensitive substring of the location")
	cmd.Flags().StringVar(&f.Tag, "tag", "", "case-insensitive substring of any tag")
	completeJobTypes(cmd, board.TypeAll)
}

// completeJobTypes offers the board's job types, plus extra, for --type.
func completeJobTypes(cmd *cobra.Command, extra ...string) {
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		values := make([]string, 0, len(domain.JobTypes)+len(extra))
		for _, t := range domain.JobTypes {
			values = append(values, string(t))
		}
		return append(values, extra...), cobra.ShellCompDirectiveNoFileComp
	})
}

func jobTypeList() string {
	quoted := make([]string, 0, len(domain.JobTypes))
	for _, t := range domain.JobTypes {
		quoted = append(quoted, fmt.Sprintf("%q", t))
	}
	return strings.Join(quoted, ", ")
}
