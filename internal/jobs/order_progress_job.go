package jobs

import (
	"context"
	"errors"
	"log/slog"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/application/usecases/queries"
	"medassist/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderLister returns the tracked orders.
type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
}

// OrderAdvancer completes the next step of one order.
type OrderAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderStepCommand) (*order.Order, error)
}

// OrderProgressJob simulates fulfillment: on every tick each order that has
// not reached its final step moves one step forward.
type OrderProgressJob struct {
	schedule string
	lister   OrderLister
	advancer OrderAdvancer
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderProgressJob creates the job. schedule accepts six-field cron
// expressions with seconds and descriptors such as "@every 30s".
func NewOrderProgressJob(
	schedule string,
	lister OrderLister,
	advancer OrderAdvancer,
	logger *slog.Logger,
) *OrderProgressJob {
	return &OrderProgressJob{
		schedule: schedule,
		lister:   lister,
		advancer: advancer,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "order_progress_job"),
	}
}

// Start schedules the job.
func (j *OrderProgressJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order progress job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progress job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *OrderProgressJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order progress job stopped")
}

// RunOnce advances every non-terminal order by one step and reports how many moved.
// An order finished concurrently is skipped. Other failures are collected and
// do not stop the remaining orders.
func (j *OrderProgressJob) RunOnce(ctx context.Context) (int, error) {
	query, err := queries.NewListOrdersQuery(order.UnknownKind)
	if err != nil {
		return 0, err
	}
	views, err := j.lister.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	advanced := 0
	var errList []error
	for _, view := range views {
		if view.CompletedSteps == len(view.Steps) {
			continue
		}

		cmd, err := commands.NewAdvanceOrderStepCommand(view.ID)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		o, err := j.advancer.Handle(ctx, cmd)
		switch {
		case errors.Is(err, order.ErrOrderIsCompleted):
			continue
		case err != nil:
			errList = append(errList, err)
			continue
		}

		advanced++
		j.logger.DebugContext(ctx, "Order advanced", "order_id", o.ID().String(), "status", o.Status())
	}
	return advanced, errors.Join(errList...)
}
