package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"git.home.luguber.info/inful/texbuild/internal/errors"
)

// HistoryCmd lists recent builds from the per-user history store.
type HistoryCmd struct {
	Count int `short:"n" default:"10" help:"Number of builds to show"`
}

func (h *HistoryCmd) Run(_ *Global, _ *CLI) error {
	store := openHistory()
	if store == nil {
		return errors.New(errors.CategoryInternal, errors.SeverityError, "build history store is unavailable")
	}
	defer store.Close()

	summaries, err := store.RecentBuilds(context.Background(), h.Count)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, errors.SeverityError, "read build history")
	}
	if len(summaries) == 0 {
		fmt.Println("no builds recorded yet")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tPROJECT\tPROFILE\tSTATUS\tDURATION\tERRORS")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			s.StartedAt.Format(time.RFC3339),
			s.Project,
			s.Profile,
			status(s.Finished, s.ExitCode),
			time.Duration(s.DurationMS)*time.Millisecond,
			s.ErrorCount,
		)
	}
	return tw.Flush()
}

func status(finished bool, exitCode int) string {
	switch {
	case !finished:
		return "aborted"
	case exitCode == 0:
		return "ok"
	default:
		return fmt.Sprintf("exit %d", exitCode)
	}
}
