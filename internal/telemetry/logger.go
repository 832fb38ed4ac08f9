package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes one JSON object per line. The zero value and a nil
// *Logger both discard everything.
type Logger struct {
	z    *zap.Logger
	sink io.Closer
}

// NewJSONLogger appends to path. An empty path gives a logger that drops
// every entry.
func NewJSONLogger(path string) (*Logger, error) {
	if path == "" {
		return &Logger{z: zap.NewNop()}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), zap.DebugLevel)
	return &Logger{z: zap.New(core), sink: f}, nil
}

// FromZap wraps an existing zap logger; Close will not close its sink.
func FromZap(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

func (l *Logger) Debug(msg string, fields map[string]any) {
	l.log(zapcore.DebugLevel, msg, fields)
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.log(zapcore.InfoLevel, msg, fields)
}

func (l *Logger) Error(msg string, fields map[string]any) {
	l.log(zapcore.ErrorLevel, msg, fields)
}

func (l *Logger) log(level zapcore.Level, msg string, fields map[string]any) {
	if l == nil || l.z == nil {
		return
	}
	ce := l.z.Check(level, msg)
	if ce == nil {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	zf := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		zf = append(zf, zap.Any(k, fields[k]))
	}
	ce.Write(zf...)
}

func (l *Logger) Close() error {
	if l == nil || l.z == nil {
		return nil
	}
	_ = l.z.Sync()
	if l.sink == nil {
		return nil
	}
	return l.sink.Close()
}
