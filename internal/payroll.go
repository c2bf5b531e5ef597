package internal

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/robfig/cron/v3"

	"github.com/meterpay/ai-payroll/internal/app/payroll"
	"github.com/meterpay/ai-payroll/internal/infra/bankclient"
	"github.com/meterpay/ai-payroll/internal/infra/logging"
)

// Run starts the payroll processor with the passed configuration. With an
// empty schedule the batch runs once; otherwise it runs on the cron schedule
// until the context is cancelled.
func Run(ctx context.Context, cfg payroll.Config) error {
	logging.Setup(cfg.InitDebug)

	entities, err := payroll.LoadEntities(cfg.EntitiesFile)
	if err != nil {
		return err
	}

	gateway := payroll.NewServiceGateway(bankclient.New(cfg, clock.New()))
	processor := payroll.NewProcessor(cfg, entities, payroll.RecordedUsageMeter{}, gateway)

	if cfg.Schedule == "" {
		processor.ProcessPayroll(ctx)
		return nil
	}

	c := cron.New()

	_, err = c.AddFunc(cfg.Schedule, func() {
		processor.ProcessPayroll(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	return nil
}
