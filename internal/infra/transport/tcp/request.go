package tcp

import (
	"strconv"
	"strings"

	"github.com/meterpay/ai-payroll/internal/app/banksim"
)

// request represents a credit instruction received over the wire.
type request struct {
	uniqueID       string
	amount         float64
	idempotencyKey string
}

// parseRequest parses a CREDIT|<unique_id>|<amount>|<idempotency_key> line and returns a request object along with any error encountered during parsing.
func parseRequest(s string) (request, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 4 || parts[0] != "CREDIT" {
		return request{}, banksim.ErrInvalidRequest
	}

	amount, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return request{}, banksim.ErrInvalidAmount
	}

	return request{
		uniqueID:       parts[1],
		amount:         amount,
		idempotencyKey: parts[3],
	}, nil
}
