package app

import (
	"context"

	"heartnote/internal/state"
)

type Store interface {
	SaveSettings(ctx context.Context, values map[string]string) error
	LoadSettings(ctx context.Context) (map[string]string, error)
	StartSession(ctx context.Context, sess state.Session) error
	RecordScreen(ctx context.Context, visit state.ScreenVisit) error
	UpdateSessionCounts(ctx context.Context, sessionID string, counts state.SessionCounts) error
	Close() error
}
