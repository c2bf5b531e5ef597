package payroll

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_ServiceGateway_Credit(t *testing.T) {
	bank := NewMockBank(t)
	bank.EXPECT().
		Credit(mock.Anything, CreditRequest{UniqueID: "ai-1", Amount: 100, IdempotencyKey: "key-1"}).
		Return(nil)

	gateway := NewServiceGateway(bank)

	result, err := gateway.CallAPI(context.Background(), ServiceBankAPI, Request{
		Action:         ActionCredit,
		UniqueID:       "ai-1",
		Amount:         100,
		IdempotencyKey: "key-1",
	})
	assert.NoError(t, err)
	assert.EqualValues(t, &Result{Service: ServiceBankAPI}, result)
}

func Test_ServiceGateway_UnrecognizedAction(t *testing.T) {
	gateway := NewServiceGateway(NewMockBank(t))

	result, err := gateway.CallAPI(context.Background(), ServiceBankAPI, Request{
		Action:   "debit",
		UniqueID: "ai-1",
		Amount:   100,
	})
	assert.ErrorIs(t, err, ErrUnrecognizedAction)
	assert.ErrorContains(t, err, "debit")
	assert.Nil(t, result)
}

func Test_ServiceGateway_UnknownService(t *testing.T) {
	gateway := NewServiceGateway(NewMockBank(t))

	result, err := gateway.CallAPI(context.Background(), "crypto_api", Request{
		Action:   ActionCredit,
		UniqueID: "ai-1",
		Amount:   100,
	})
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func Test_ServiceGateway_BankFailure(t *testing.T) {
	bank := NewMockBank(t)
	bank.EXPECT().
		Credit(mock.Anything, mock.Anything).
		Return(errors.New("insufficient funds"))

	gateway := NewServiceGateway(bank)

	result, err := gateway.CallAPI(context.Background(), ServiceBankAPI, Request{
		Action:   ActionCredit,
		UniqueID: "ai-1",
		Amount:   100,
	})
	assert.ErrorContains(t, err, "insufficient funds")
	assert.Nil(t, result)
}
