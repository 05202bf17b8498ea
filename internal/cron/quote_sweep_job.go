package cron

import (
	"context"
	"fmt"

	"github.com/merchly/quoter-backend/pkg/logger"
)

// QuoteCleaner removes expired quote sessions and reports the count.
type QuoteCleaner interface {
	CleanupExpired(ctx context.Context) int
}

type quoteSweepJob struct {
	logg    *logger.Logger
	cleaner QuoteCleaner
}

// NewQuoteSweepJob builds the job that evicts expired quote sessions.
func NewQuoteSweepJob(logg *logger.Logger, cleaner QuoteCleaner) (Job, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cleaner == nil {
		return nil, fmt.Errorf("quote cleaner required")
	}
	return &quoteSweepJob{logg: logg, cleaner: cleaner}, nil
}

func (j *quoteSweepJob) Name() string { return "quote-sweep" }

func (j *quoteSweepJob) Run(ctx context.Context) error {
	removed := j.cleaner.CleanupExpired(ctx)
	logCtx := j.logg.WithField(ctx, "count", removed)
	j.logg.Info(logCtx, "quote sweep complete")
	return nil
}
