package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry initializes error reporting when a DSN is configured. The
// returned flush function is safe to call even when reporting is disabled.
func InitSentry(dsn, env string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureErr forwards an error to sentry when reporting is enabled
func CaptureErr(err error) {
	if err != nil {
		sentry.CaptureException(err)
	}
}
