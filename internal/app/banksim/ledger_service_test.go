package banksim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LedgerService_RecordsCreditsInOrder(t *testing.T) {
	ledger := NewLedgerService()

	first := Credit{UniqueID: "ai-1", Amount: 100, IdempotencyKey: "key-1"}
	second := Credit{UniqueID: "ai-2", Amount: 0, IdempotencyKey: "key-2"}

	require.NoError(t, ledger.Credit(first))
	require.NoError(t, ledger.Credit(second))

	assert.EqualValues(t, []Credit{first, second}, ledger.Entries())
}

func Test_LedgerService_RepeatedIdempotencyKeyAppliedOnce(t *testing.T) {
	ledger := NewLedgerService()

	credit := Credit{UniqueID: "ai-1", Amount: 100, IdempotencyKey: "key-1"}

	require.NoError(t, ledger.Credit(credit))
	require.NoError(t, ledger.Credit(credit))

	assert.EqualValues(t, []Credit{credit}, ledger.Entries())
}

func Test_LedgerService_EmptyKeyNotDeduplicated(t *testing.T) {
	ledger := NewLedgerService()

	credit := Credit{UniqueID: "ai-1", Amount: 100}

	require.NoError(t, ledger.Credit(credit))
	require.NoError(t, ledger.Credit(credit))

	assert.Len(t, ledger.Entries(), 2)
}
