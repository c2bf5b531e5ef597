package internal

import (
	"context"

	"github.com/benbjohnson/clock"

	"github.com/meterpay/ai-payroll/internal/app/banksim"
	"github.com/meterpay/ai-payroll/internal/infra/logging"
	"github.com/meterpay/ai-payroll/internal/infra/transport/tcp"
)

// RunBankSim starts the bank simulator with the passed configuration.
func RunBankSim(ctx context.Context, cfg banksim.Config) error {
	logging.Setup(cfg.InitDebug)

	tcpTransport := tcp.NewTransport(cfg, banksim.NewValidationService(banksim.NewLedgerService()), clock.New())

	return tcpTransport.Start(ctx)
}
