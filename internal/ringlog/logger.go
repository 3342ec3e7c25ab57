package ringlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sink adapts a Log into a zap write target. zap hands it one encoded
// entry per Write call, newline-terminated.
type sink struct {
	log *Log
}

func (s sink) Write(p []byte) (int, error) {
	s.log.Append(string(p))
	return len(p), nil
}

func (s sink) Sync() error { return nil }

// NewLogger builds a zap logger whose every entry lands in l as one
// timestamped line. Console encoding keeps the file human-readable:
// timestamp, level tag, message.
func NewLogger(l *Log) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(sink{log: l}), zapcore.InfoLevel)
	return zap.New(core)
}
