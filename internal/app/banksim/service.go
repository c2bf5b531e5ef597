package banksim

// Credit is a single credit instruction received by the simulator.
type Credit struct {
	UniqueID       string
	Amount         float64
	IdempotencyKey string
}

// Service defines a contract for applying credits.
type Service interface {
	Credit(credit Credit) error
}
