// Package logging builds the process logger: slog call sites on a zap core
package logging

import (
	"context"
	"io"
	"log/slog"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// Logger pairs the slog front end with the zap core behind it
type Logger struct {
	*slog.Logger
	core zapcore.Core
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.core.Sync()
}

// New builds a JSON logger writing to w at the named level
func New(level string, w io.Writer) (*Logger, error) {
	var zl zapcore.Level
	if err := zl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.InvalidArgumentf("unknown log level %q", level)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zl,
	)

	return &Logger{
		Logger: slog.New(zapslog.NewHandler(core, zapslog.WithName("fabula-api"))),
		core:   core,
	}, nil
}

// Install makes l the slog default so package level slog calls reach zap
func Install(l *Logger) {
	slog.SetDefault(l.Logger)
}

// GRPCLogger adapts l for the gRPC logging interceptors. The middleware
// levels share slog's numbering.
func GRPCLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
