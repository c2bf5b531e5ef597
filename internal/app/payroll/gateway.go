package payroll

import (
	"context"
	"fmt"
)

// Service names an external system reachable through the gateway.
type Service string

// Action names an operation on a service.
type Action string

const (
	ServiceBankAPI Service = "bank_api"

	ActionCredit Action = "credit"
)

// Request is the payload handed to the gateway for a single call.
type Request struct {
	Action         Action
	UniqueID       string
	Amount         float64
	IdempotencyKey string
}

// Result is what a handled call returns. Calls to unknown services return a
// nil result and no error.
type Result struct {
	Service Service
}

// CreditRequest is the instruction sent to the banking collaborator.
type CreditRequest struct {
	UniqueID       string
	Amount         float64
	IdempotencyKey string
}

// Bank is the external banking collaborator.
type Bank interface {
	Credit(ctx context.Context, req CreditRequest) error
}

// Gateway routes named-service calls to external systems.
type Gateway interface {
	CallAPI(ctx context.Context, service Service, req Request) (*Result, error)
}

// ServiceGateway dispatches on service and action. It holds no state between calls.
type ServiceGateway struct {
	bank Bank
}

func NewServiceGateway(bank Bank) *ServiceGateway {
	return &ServiceGateway{bank: bank}
}

// CallAPI routes a request. A credit on bank_api reaches the bank collaborator,
// any other action on bank_api fails with ErrUnrecognizedAction, and a call to
// an unknown service is a silent no-op.
func (g *ServiceGateway) CallAPI(ctx context.Context, service Service, req Request) (*Result, error) {
	switch service {
	case ServiceBankAPI:
		switch req.Action {
		case ActionCredit:
			err := g.bank.Credit(ctx, CreditRequest{
				UniqueID:       req.UniqueID,
				Amount:         req.Amount,
				IdempotencyKey: req.IdempotencyKey,
			})
			if err != nil {
				return nil, err
			}

			return &Result{Service: ServiceBankAPI}, nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnrecognizedAction, req.Action)
		}
	default:
		return nil, nil
	}
}
