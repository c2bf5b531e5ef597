package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
)

// Processor pays entities for their metered data usage.
type Processor struct {
	cfg      Config
	entities []Entity
	meter    UsageMeter
	gateway  Gateway
	newKey   func() string
}

// NewProcessor creates a Processor over a fixed entity sequence.
func NewProcessor(cfg Config, entities []Entity, meter UsageMeter, gateway Gateway) *Processor {
	return &Processor{
		cfg:      cfg,
		entities: entities,
		meter:    meter,
		gateway:  gateway,
		newKey:   uuid.NewString,
	}
}

// CalculatePay derives the pay owed to an entity from its metered usage.
// The result is rounded to the smallest currency unit.
func (p *Processor) CalculatePay(entity Entity) (float64, error) {
	bits, err := p.meter.Measure(entity)
	if err != nil {
		return 0, fmt.Errorf("measure usage: %w", err)
	}

	if bits < 0 {
		return 0, fmt.Errorf("%w: %v bits", ErrNegativeUsage, bits)
	}

	return math.Round(bits*p.cfg.RatePerBit*100) / 100, nil
}

// ProcessPayroll issues one credit request per entity, in sequence order.
// A failure for one entity is logged and never stops the rest of the batch.
func (p *Processor) ProcessPayroll(ctx context.Context) {
	for _, entity := range p.entities {
		pay, err := p.CalculatePay(entity)
		if err != nil {
			slog.Error("Failed to process payroll for AI entity", "entity", entity.UniqueID, "error", err)
			continue
		}

		_, err = p.gateway.CallAPI(ctx, ServiceBankAPI, Request{
			Action:         ActionCredit,
			UniqueID:       entity.UniqueID,
			Amount:         pay,
			IdempotencyKey: p.newKey(),
		})
		if err != nil {
			slog.Error("Failed to process payroll for AI entity", "entity", entity.UniqueID, "error", err)
			continue
		}

		slog.Info("Successfully credited AI entity", "entity", entity.UniqueID, "amount", pay)
	}
}
