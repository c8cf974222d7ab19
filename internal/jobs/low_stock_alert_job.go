package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically surfaces inventory items whose quantity has
// fallen to or below the replenishment threshold. The job only reports;
// restocking is an operator action.
type LowStockAlertJob struct {
	handler   queries.GetLowStockItemsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockAlertJob creates a job that checks the ledger every minute.
func NewLowStockAlertJob(
	handler queries.GetLowStockItemsQueryHandler,
	threshold int,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the low stock alert job, running at the top of every minute.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetLowStockItemsQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock alert job misconfigured", "error", queryErr)
			return
		}

		items, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock alert job failed", "error", handleErr)
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Inventory item needs replenishment",
				"productCode", item.ProductCode,
				"productName", item.ProductName,
				"quantity", item.Quantity,
				"storageLocation", item.StorageLocation,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running every minute)")
	return nil
}

// Stop stops the low stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
