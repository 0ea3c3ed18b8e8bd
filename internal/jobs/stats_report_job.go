package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// StatsReportJob logs the order statistics rollup once a day.
// The job acts under a synthetic administrator identity: statistics are
// admin-only and the scheduler has no human caller.
type StatsReportJob struct {
	handler queries.GetOrderStatsQueryHandler
	actor   account.Actor
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsReportJob creates a job that reports order statistics daily.
func NewStatsReportJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) (*StatsReportJob, error) {
	actor, err := account.NewActor(kernel.NewUUID(), account.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &StatsReportJob{
		handler: handler,
		actor:   actor,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_report_job"),
	}, nil
}

// Start begins the stats report job, running daily at midnight.
func (j *StatsReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOrderStatsQuery(j.actor)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats report job failed to build query", "error", err)
			return
		}

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily order statistics",
			"total_orders", stats.TotalOrders,
			"paid_orders", stats.PaidOrders,
			"delivered_orders", stats.DeliveredOrders,
			"pending_orders", stats.PendingOrders,
			"total_revenue", stats.TotalRevenue,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started (running daily at midnight)")
	return nil
}

// Stop stops the stats report job.
func (j *StatsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}
