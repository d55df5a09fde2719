package log

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is re-exported so callers never import zap directly.
type Field = zap.Field

var (
	Err      = zap.Error
	String   = zap.String
	Int      = zap.Int
	Int32    = zap.Int32
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Time     = zap.Time
	Any      = zap.Any
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type initOptions struct {
	level      zapcore.Level
	env        string
	withCaller bool
	callerSkip int
}

type InitOption func(*initOptions)

func WithLevel(level string) InitOption {
	return func(o *initOptions) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithEnv(env string) InitOption {
	return func(o *initOptions) {
		o.env = env
	}
}

func WithCaller(enabled bool) InitOption {
	return func(o *initOptions) {
		o.withCaller = enabled
	}
}

func AddCallerSkip(skip int) InitOption {
	return func(o *initOptions) {
		o.callerSkip = skip
	}
}

// Init builds the process-wide logger. Local environments get the console
// encoder, everything else structured JSON.
func Init(appName string, opts ...InitOption) {
	fOpts := &initOptions{level: zapcore.InfoLevel, env: "local"}
	for _, opt := range opts {
		opt(fOpts)
	}

	var cfg zap.Config
	if fOpts.env == "local" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(fOpts.level)

	zapOpts := []zap.Option{}
	if fOpts.withCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(fOpts.callerSkip))
	}

	l, err := cfg.Build(zapOpts...)
	if err != nil {
		return
	}

	mu.Lock()
	logger = l.Named(appName)
	mu.Unlock()
}

// InitForTest swaps in a no-op logger so package tests stay quiet.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

func Sync() {
	_ = base().Sync()
}

func base() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	base().Debug(msg, withCtxFields(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	base().Info(msg, withCtxFields(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	base().Warn(msg, withCtxFields(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	base().Error(msg, withCtxFields(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	base().Panic(msg, withCtxFields(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	base().Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	base().Sugar().Infof(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	base().Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	base().Sugar().Fatalf(format, args...)
}

type ctxKey struct{}

type ctxData struct {
	correlationID string
	host          string
}

func SetCorrelationID(ctx context.Context, id string) context.Context {
	data, _ := ctx.Value(ctxKey{}).(ctxData)
	data.correlationID = id
	return context.WithValue(ctx, ctxKey{}, data)
}

func SetHost(ctx context.Context, host string) context.Context {
	data, _ := ctx.Value(ctxKey{}).(ctxData)
	data.host = host
	return context.WithValue(ctx, ctxKey{}, data)
}

func GetCorrelationID(ctx context.Context) string {
	data, _ := ctx.Value(ctxKey{}).(ctxData)
	return data.correlationID
}

func withCtxFields(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	data, ok := ctx.Value(ctxKey{}).(ctxData)
	if !ok {
		return fields
	}
	if data.correlationID != "" {
		fields = append(fields, zap.String("correlationId", data.correlationID))
	}
	if data.host != "" {
		fields = append(fields, zap.String("host", data.host))
	}
	return fields
}
