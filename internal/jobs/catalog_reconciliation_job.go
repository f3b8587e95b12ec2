package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CatalogReconciliationJob periodically compares the category directory
// against the physical catalog partitions and logs any drift. Partitions
// without a directory entry hold products invisible to the storefront;
// directory entries without a partition are categories nobody has stocked
// yet.
//
// The job only reports. Resolving drift (registering the category or
// migrating the products) is an operator decision.
type CatalogReconciliationJob struct {
	handler queries.GetCatalogDivergenceQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCatalogReconciliationJob creates a new reconciliation job. It runs
// every ten minutes.
func NewCatalogReconciliationJob(
	handler queries.GetCatalogDivergenceQueryHandler,
	logger *slog.Logger,
) *CatalogReconciliationJob {
	return &CatalogReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "catalog_reconciliation_job"),
	}
}

// Start schedules the reconciliation run.
func (j *CatalogReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		divergence, err := j.handler.Handle(ctx, queries.NewGetCatalogDivergenceQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Catalog reconciliation failed", "error", err)
			return
		}

		if len(divergence.OrphanPartitions) == 0 && len(divergence.PendingPartitions) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Catalog directory and partitions have diverged",
			"orphanPartitions", divergence.OrphanPartitions,
			"pendingPartitions", divergence.PendingPartitions,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog reconciliation job started (running every 10 minutes)")
	return nil
}

// Stop stops the reconciliation job.
func (j *CatalogReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog reconciliation job stopped")
}
