package cronjobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-wavecleanup/db"
	"go-wavecleanup/summarization"
	"go-wavecleanup/types"
)

// DefaultWindow is the digest window when no earlier digest exists.
const DefaultWindow = 24 * time.Hour

// DigestJob rolls the sign-ups received since the previous digest into a new one.
type DigestJob struct {
	Store      db.Store
	Summarizer summarization.Summarizer // optional
	Logger     *zap.Logger
	Now        func() time.Time
}

func (j *DigestJob) Run(ctx context.Context) (types.Digest, error) {
	now := time.Now().UTC()
	if j.Now != nil {
		now = j.Now()
	}

	start := now.Add(-DefaultWindow)
	prev, found, err := j.Store.LatestDigest(ctx)
	if err != nil {
		return types.Digest{}, fmt.Errorf("loading previous digest: %w", err)
	}
	if found && prev.WindowEnd.Before(now) {
		start = prev.WindowEnd
	}

	users, err := j.Store.ListUsersSince(ctx, start)
	if err != nil {
		return types.Digest{}, fmt.Errorf("listing sign-ups: %w", err)
	}
	inWindow := users[:0]
	for _, u := range users {
		if u.CreatedAt.Before(now) {
			inWindow = append(inWindow, u)
		}
	}

	digest := types.Digest{WindowStart: start, WindowEnd: now, SignupCount: len(inWindow)}
	if j.Summarizer != nil && len(inWindow) > 0 {
		summary, err := j.Summarizer.Summarize(ctx, inWindow)
		if err != nil {
			j.logger().Warn("digest summary failed", zap.Error(err))
		} else {
			digest.Summary = summary
		}
	}

	saved, err := j.Store.SaveDigest(ctx, digest)
	if err != nil {
		return types.Digest{}, fmt.Errorf("saving digest: %w", err)
	}
	return saved, nil
}

func (j *DigestJob) logger() *zap.Logger {
	if j.Logger == nil {
		return zap.NewNop()
	}
	return j.Logger
}

// InitCronJobs schedules the digest and starts the scheduler. Callers stop it with Stop().
func InitCronJobs(schedule string, job *DigestJob, logger *zap.Logger) (*cron.Cron, error) {
	logger.Info("starting cron jobs", zap.String("digest", schedule))
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		d, err := job.Run(ctx)
		if err != nil {
			logger.Error("cronjob: signup digest failed", zap.Error(err))
			return
		}
		logger.Info("cronjob: signup digest saved",
			zap.String("id", d.ID),
			zap.Int("signups", d.SignupCount),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("scheduling signup digest %q: %w", schedule, err)
	}

	c.Start()
	return c, nil
}
