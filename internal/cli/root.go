package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrg327/job-tracker/internal/store"
	"github.com/mrg327/job-tracker/internal/tui"
)

// NewRootCmd builds the entry point. There are no flags or subcommands: the
// bare command launches the interactive tracker.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "job-tracker",
		Short:        "Terminal job application tracker",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.DefaultStore()
			if err != nil {
				return err
			}
			// One-time legacy task-list conversion; silent on any failure.
			s.MigrateLegacy()
			db := s.Load()
			return tui.Run(s, db)
		},
	}
}
