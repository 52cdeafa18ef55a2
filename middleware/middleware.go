package middleware

import (
	"context"
	"errors"
	"log"
	"net"
	"time"

	"github.com/ncecere/hf-sdk/provider"
)

// Logger is the minimal logging interface used by the middleware package.
// It matches the Printf method on *log.Logger so callers can pass
// log.Default() or a custom logger implementation.
type Logger interface {
	Printf(format string, v ...any)
}

// CompletionModelMiddleware wraps a provider.CompletionModel with
// additional behavior such as logging, retries, or telemetry.
//
// The endpoint client itself never retries or logs; all such behavior
// is opt-in through these wrappers.
type CompletionModelMiddleware func(provider.CompletionModel) provider.CompletionModel

// WrapCompletionModel applies the provided middlewares around the base
// completion model. Middlewares are applied in the order provided, so
// the first middleware becomes the outermost wrapper.
func WrapCompletionModel(base provider.CompletionModel, mws ...CompletionModelMiddleware) provider.CompletionModel {
	wrapped := base
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}
	return wrapped
}

// LoggingOptions controls which aspects of a completion call are
// logged by the logging middleware.
type LoggingOptions struct {
	// Logger is the destination for log output. If nil, log.Default() is used.
	Logger Logger
	// LogRequest controls whether request metadata (prompt length) is logged.
	LogRequest bool
	// LogResponse controls whether successful responses are logged.
	LogResponse bool
	// LogErrors controls whether errors are logged.
	LogErrors bool
	// LogDuration controls whether call duration is logged.
	LogDuration bool
}

// defaultLoggingOptions returns a LoggingOptions value with sensible
// defaults for typical usage.
func defaultLoggingOptions(opts LoggingOptions) LoggingOptions {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	// By default, log request metadata, errors, and duration.
	if !opts.LogRequest && !opts.LogResponse && !opts.LogErrors && !opts.LogDuration {
		opts.LogRequest = true
		opts.LogErrors = true
		opts.LogDuration = true
	}
	return opts
}

// LoggingCompletionModel returns a CompletionModelMiddleware that logs
// Generate calls using the provided options. Logs focus on high-level
// metadata (prompt length, duration, and error state) and never
// include prompt or completion bodies.
func LoggingCompletionModel(opts LoggingOptions) CompletionModelMiddleware {
	opts = defaultLoggingOptions(opts)

	return func(next provider.CompletionModel) provider.CompletionModel {
		return &loggingCompletionModel{
			next:  next,
			opts:  opts,
			logFn: opts.Logger.Printf,
		}
	}
}

type loggingCompletionModel struct {
	next  provider.CompletionModel
	opts  LoggingOptions
	logFn func(format string, v ...any)
}

func (l *loggingCompletionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	start := time.Now()
	if l.opts.LogRequest {
		l.logFn("completion.generate start prompt_len=%d", len(req.Prompt))
	}

	res, err := l.next.Generate(ctx, req)
	dur := time.Since(start)

	if err != nil {
		if l.opts.LogErrors {
			if l.opts.LogDuration {
				l.logFn("completion.generate error duration=%s err=%v", dur, err)
			} else {
				l.logFn("completion.generate error err=%v", err)
			}
		}
		return nil, err
	}

	if l.opts.LogResponse {
		if l.opts.LogDuration {
			l.logFn("completion.generate success text_len=%d duration=%s", len(res.Text), dur)
		} else {
			l.logFn("completion.generate success text_len=%d", len(res.Text))
		}
	} else if l.opts.LogDuration {
		l.logFn("completion.generate done duration=%s", dur)
	}

	return res, nil
}

// RetryOptions configures the retry middleware for completion calls.
type RetryOptions struct {
	// MaxAttempts is the maximum number of attempts, including the first
	// call. If zero or negative, a default of 3 attempts is used.
	MaxAttempts int
	// InitialBackoff is the delay before the first retry. If zero, a
	// default of 100ms is used.
	InitialBackoff time.Duration
	// MaxBackoff caps the backoff delay. If zero, no cap is applied.
	MaxBackoff time.Duration
	// ShouldRetry determines whether a given error is considered
	// transient and should be retried. If nil, a default implementation
	// that treats temporary and timeout network errors as transient is
	// used.
	ShouldRetry func(error) bool
}

func defaultRetryOptions(opts RetryOptions) RetryOptions {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = 100 * time.Millisecond
	}
	if opts.ShouldRetry == nil {
		opts.ShouldRetry = isTransientError
	}
	return opts
}

// RetryCompletionModel returns a CompletionModelMiddleware that retries
// Generate calls when ShouldRetry returns true for the encountered
// error. Retries respect the provided context for cancellation.
func RetryCompletionModel(opts RetryOptions) CompletionModelMiddleware {
	opts = defaultRetryOptions(opts)

	return func(next provider.CompletionModel) provider.CompletionModel {
		return &retryCompletionModel{
			next: next,
			opt:  opts,
		}
	}
}

type retryCompletionModel struct {
	next provider.CompletionModel
	opt  RetryOptions
}

func (r *retryCompletionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	var lastErr error

	backoff := r.opt.InitialBackoff
	for attempt := 1; attempt <= r.opt.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepWithContext(ctx, backoff); err != nil {
				return nil, err
			}
			backoff = nextBackoff(backoff, r.opt.MaxBackoff)
		}

		res, err := r.next.Generate(ctx, req)
		if err == nil {
			return res, nil
		}
		// Do not retry on context cancellation.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if !r.opt.ShouldRetry(err) {
			return nil, err
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errors.New("middleware: retry: exhausted attempts with no result")
}

// sleepWithContext sleeps for the given duration or returns early if
// the context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// nextBackoff computes the next backoff delay using exponential
// backoff with an optional maximum cap.
func nextBackoff(current, max time.Duration) time.Duration {
	next := current * 2
	if max > 0 && next > max {
		return max
	}
	return next
}

// isTransientError reports whether err looks like a transient network
// error suitable for retry (timeouts or temporary network failures).
// Typed transport errors from providers are unwrapped along the chain.
func isTransientError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout() || netErr.Temporary()
	}
	return false
}

// CompletionCallInfo contains high-level metadata about a completion
// call that can be used for metrics or tracing.
type CompletionCallInfo struct {
	PromptLen int
	StartTime time.Time
	EndTime   time.Time
	Err       error
}

// TelemetryHooks defines callbacks that are invoked around completion
// calls. These hooks are intentionally generic so that callers can
// integrate with metrics/tracing systems such as OpenTelemetry without
// this package taking a hard dependency on them.
type TelemetryHooks struct {
	OnCompletionCall func(ctx context.Context, info CompletionCallInfo)
}

// TelemetryCompletionModel returns a CompletionModelMiddleware that
// invokes the provided telemetry hooks around Generate calls.
func TelemetryCompletionModel(hooks TelemetryHooks) CompletionModelMiddleware {
	return func(next provider.CompletionModel) provider.CompletionModel {
		return &telemetryCompletionModel{
			next:  next,
			hooks: hooks,
		}
	}
}

type telemetryCompletionModel struct {
	next  provider.CompletionModel
	hooks TelemetryHooks
}

func (t *telemetryCompletionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	start := time.Now()
	res, err := t.next.Generate(ctx, req)
	if t.hooks.OnCompletionCall != nil {
		t.hooks.OnCompletionCall(ctx, CompletionCallInfo{
			PromptLen: len(req.Prompt),
			StartTime: start,
			EndTime:   time.Now(),
			Err:       err,
		})
	}
	return res, err
}
