// Package broadcast delivers one message to many users, sequentially.
// Individual failures (blocked bot, deleted account) are counted and
// skipped; the run never aborts early and never retries.
package broadcast

import (
	"log/slog"

	"github.com/google/uuid"

	"resumebot/core/logger"
)

// SendFunc delivers the text to one user.
type SendFunc func(userID int64, text string) error

// Options tunes a broadcast run.
type Options struct {
	// OnSent is called after each successful delivery.
	OnSent func(userID int64)
}

// Result summarises a finished run. Success + Failed always equals the
// number of recipients handed to Send.
type Result struct {
	Success int
	Failed  int
}

// Send delivers text to every recipient in order.
func Send(recipients []int64, text string, send SendFunc, opts Options) Result {
	runID := uuid.NewString()
	logger.L.Info("broadcast.start",
		slog.String("broadcast_id", runID),
		slog.Int("recipients", len(recipients)),
	)

	var res Result
	for _, id := range recipients {
		if err := send(id, text); err != nil {
			res.Failed++
			logger.L.Warn("broadcast.send_failed",
				slog.String("broadcast_id", runID),
				slog.Int64("user_id", id),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
			continue
		}
		res.Success++
		if opts.OnSent != nil {
			opts.OnSent(id)
		}
	}

	logger.L.Info("broadcast.done",
		slog.String("broadcast_id", runID),
		slog.Int("recipients", len(recipients)),
		slog.Int("success", res.Success),
		slog.Int("failed", res.Failed),
	)
	return res
}
