package state

import (
	"context"
	"time"
)

// NameKey is the settings key the visitor's name is remembered under.
const NameKey = "valentineName"

type Store interface {
	EnsureSchema(ctx context.Context) error
	SaveSettings(ctx context.Context, values map[string]string) error
	LoadSettings(ctx context.Context) (map[string]string, error)
	StartSession(ctx context.Context, sess Session) error
	RecordScreen(ctx context.Context, visit ScreenVisit) error
	UpdateSessionCounts(ctx context.Context, sessionID string, counts SessionCounts) error
	GetSummary(ctx context.Context) (Summary, error)
	GetLastSession(ctx context.Context) (*LastSession, error)
	Close() error
}

type Session struct {
	ID      string
	Name    string
	StartTS time.Time
}

type ScreenVisit struct {
	SessionID string
	Screen    string
	TS        time.Time
}

type SessionCounts struct {
	Taps    int
	Rejects int
	Resets  int
}

type Summary struct {
	Sessions int
	Finales  int
	Taps     int
	Rejects  int
}

type LastSession struct {
	ID         string
	Name       string
	StartTS    time.Time
	LastScreen string
	Taps       int
	Rejects    int
	Resets     int
}
