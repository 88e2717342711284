// Package scheduler runs the optional daily statistics digest sent to
// the operator.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"log/slog"

	"github.com/go-co-op/gocron/v2"

	"resumebot/core/logger"
	"resumebot/internal/i18n"
	"resumebot/internal/service"
)

// Notifier delivers a text message to one user. Satisfied by the bot.
type Notifier interface {
	Notify(userID int64, text string) error
}

// Digest schedules a once-a-day statistics message to the admin.
type Digest struct {
	svc     *service.Service
	notify  Notifier
	adminID int64
	at      string
	sched   gocron.Scheduler
}

// NewDigest prepares the digest job. at is "HH:MM" local time.
func NewDigest(svc *service.Service, notify Notifier, adminID int64, at string) (*Digest, error) {
	hour, minute, err := parseAt(at)
	if err != nil {
		return nil, err
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}

	d := &Digest{svc: svc, notify: notify, adminID: adminID, at: at, sched: sched}
	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(d.run),
	)
	if err != nil {
		return nil, fmt.Errorf("scheduler: digest job: %w", err)
	}
	return d, nil
}

// Start begins running scheduled jobs.
func (d *Digest) Start() {
	d.sched.Start()
	logger.L.Info("digest.started", slog.String("at", d.at))
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (d *Digest) Stop() {
	if err := d.sched.Shutdown(); err != nil {
		logger.L.Warn("digest.stop_failed",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
}

func (d *Digest) run() {
	st := d.svc.Stats(context.Background())
	text := i18n.T(i18n.DefaultLocale, "stats_text", i18n.Params{
		"users":     strconv.FormatInt(st.Users, 10),
		"downloads": strconv.FormatInt(st.Downloads, 10),
		"time":      time.Now().Format("2006-01-02 15:04"),
	})
	if err := d.notify.Notify(d.adminID, text); err != nil {
		logger.L.Warn("digest.send_failed",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return
	}
	logger.L.Info("digest.sent",
		slog.Int64("users", st.Users),
		slog.Int64("downloads", st.Downloads),
	)
}

func parseAt(at string) (uint, uint, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return 0, 0, fmt.Errorf("scheduler: bad digest time %q: %w", at, err)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}
