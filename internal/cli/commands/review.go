package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rexhoffman/trybuild/internal/storage"
	"github.com/rexhoffman/trybuild/internal/ui"
)

// ReviewCommand handles the review command.
type ReviewCommand struct {
	storage storage.Storage
	viewer  *ui.ReviewViewer
}

// NewReviewCommand creates a new ReviewCommand.
func NewReviewCommand(st storage.Storage, viewer *ui.ReviewViewer) *ReviewCommand {
	return &ReviewCommand{storage: st, viewer: viewer}
}

// Execute runs the command.
func (rc *ReviewCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := rc.storage.Load()
	if err != nil {
		return fmt.Errorf("no run report found, run 'trybuild run' first: %w", err)
	}
	return rc.viewer.View(report)
}
