package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"heartnote/internal/state"
)

// Stats prints the session journal summary kept under cfg.DataDir.
func Stats(ctx context.Context, cfg Config, w io.Writer) error {
	store, err := state.NewSQLite(filepath.Join(cfg.DataDir, "state.db"))
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	return writeStats(ctx, store, w)
}

func writeStats(ctx context.Context, store state.Store, w io.Writer) error {
	sum, err := store.GetSummary(ctx)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	fmt.Fprintf(w, "sessions: %d\nfinales:  %d\ntaps:     %d\nrejects:  %d\n", sum.Sessions, sum.Finales, sum.Taps, sum.Rejects)

	last, err := store.GetLastSession(ctx)
	if err != nil {
		return fmt.Errorf("last session: %w", err)
	}
	if last == nil {
		fmt.Fprintln(w, "no sessions yet")
		return nil
	}
	fmt.Fprintf(w, "last:     %s (%s) reached %s on %s\n",
		last.ID,
		firstNonEmpty(last.Name, "anonymous"),
		firstNonEmpty(last.LastScreen, "nothing"),
		last.StartTS.Local().Format(time.DateTime),
	)
	return nil
}
