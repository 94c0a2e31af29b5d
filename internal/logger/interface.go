package logger

import "context"

// Logger is the process-wide logging handle. It is constructed once at
// program entry and passed to every component; nothing logs ambiently.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
