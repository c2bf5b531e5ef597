package banksim

import (
	"sync"
)

// LedgerService records applied credits in memory. A credit carrying an
// idempotency key that was already applied is accepted but not re-applied.
type LedgerService struct {
	mu      sync.Mutex
	entries []Credit
	applied map[string]struct{}
}

func NewLedgerService() *LedgerService {
	return &LedgerService{
		applied: make(map[string]struct{}),
	}
}

func (l *LedgerService) Credit(credit Credit) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if credit.IdempotencyKey != "" {
		if _, ok := l.applied[credit.IdempotencyKey]; ok {
			return nil
		}
		l.applied[credit.IdempotencyKey] = struct{}{}
	}

	l.entries = append(l.entries, credit)

	return nil
}

// Entries returns the applied credits in arrival order.
func (l *LedgerService) Entries() []Credit {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Credit, len(l.entries))
	copy(out, l.entries)

	return out
}
