package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/hashicorp/go-retryablehttp"
)

type retryBudgetKey struct{}

// retryBudget counts the retries left for one logical call. Attempts of a
// single call run sequentially, so no locking is needed.
type retryBudget struct {
	remaining int
}

func (b *retryBudget) take() bool {
	if b.remaining <= 0 {
		return false
	}

	b.remaining--

	return true
}

// checkRetry applies the default policy (connection errors, 429 and 5xx)
// within the per-call budget carried in the request context.
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	retry, checkErr := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	if !retry || checkErr != nil {
		return retry, checkErr
	}

	budget, ok := ctx.Value(retryBudgetKey{}).(*retryBudget)
	if !ok {
		return false, nil
	}

	return budget.take(), nil
}

func (c *Client) logAttempt(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("Retrying request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

// leveledLogger adapts increase.Logger to retryablehttp.LeveledLogger.
// retryablehttp logs every attempt at debug level; those lines are dropped
// in favour of the client's own request log.
type leveledLogger struct {
	logger increase.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l leveledLogger) Debug(string, ...interface{}) {}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return out
}
