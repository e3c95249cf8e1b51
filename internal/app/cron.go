package app

import (
	"context"
	"fmt"
	"time"

	"github.com/wandererhq/wanderer-core/internal/modules/review"
	pkgcron "github.com/wandererhq/wanderer-core/internal/pkg/cron"
	sessionpkg "github.com/wandererhq/wanderer-core/internal/pkg/session"
	"go.uber.org/zap"
)

// registerCronJobs registers all scheduled background jobs.
func (a *App) registerCronJobs() {
	cronLogger := a.logger.Named("CronService")
	db := a.db

	a.sched.Register(pkgcron.Job{
		Name:        "aggregate_ratings",
		Description: "Recompute cached spot ratings from reviews",
		Interval:    6 * time.Hour,
		Fn: func(ctx context.Context) error {
			svc := review.NewService(db)
			if err := svc.RecomputeAllRatings(); err != nil {
				cronLogger.Warn("rating aggregation failed", zap.Error(err))
				return err
			}
			cronLogger.Info("rating aggregation done")
			return nil
		},
	})

	a.sched.Register(pkgcron.Job{
		Name:        "sweep_sessions",
		Description: "Delete sessions expired or revoked more than 7 days ago",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now().AddDate(0, 0, -7)
			deleted, err := sessionpkg.SweepExpired(db, cutoff)
			if err != nil {
				cronLogger.Warn("session sweep failed", zap.Error(err))
				return err
			}
			cronLogger.Info(fmt.Sprintf("session sweep done, removed %d rows", deleted))
			return nil
		},
	})
}
