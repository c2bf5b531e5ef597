package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_Processor_CalculatePay(t *testing.T) {
	entity := Entity{UniqueID: "ai-1"}

	tests := []struct {
		name       string
		rate       float64
		bits       float64
		meterErr   error
		assertFunc func(*testing.T, float64, error)
	}{
		{
			name: "one currency unit per bit",
			rate: 1.0,
			bits: 100,
			assertFunc: func(t *testing.T, pay float64, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, 100.0, pay)
			},
		},
		{
			name: "zero usage pays zero",
			rate: 1.0,
			bits: 0,
			assertFunc: func(t *testing.T, pay float64, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, 0.0, pay)
			},
		},
		{
			name: "rounded to the smallest currency unit",
			rate: 1.0,
			bits: 0.125,
			assertFunc: func(t *testing.T, pay float64, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, 0.13, pay)
			},
		},
		{
			name: "rate scales pay",
			rate: 0.5,
			bits: 100,
			assertFunc: func(t *testing.T, pay float64, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, 50.0, pay)
			},
		},
		{
			name: "negative usage rejected",
			rate: 1.0,
			bits: -1,
			assertFunc: func(t *testing.T, pay float64, err error) {
				assert.ErrorIs(t, err, ErrNegativeUsage)
				assert.Zero(t, pay)
			},
		},
		{
			name:     "meter failure propagates",
			rate:     1.0,
			meterErr: errors.New("meter offline"),
			assertFunc: func(t *testing.T, pay float64, err error) {
				assert.ErrorContains(t, err, "meter offline")
				assert.Zero(t, pay)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			meter := NewMockUsageMeter(t)
			meter.EXPECT().Measure(entity).Return(test.bits, test.meterErr)

			processor := NewProcessor(Config{RatePerBit: test.rate}, nil, meter, nil)

			pay, err := processor.CalculatePay(entity)
			test.assertFunc(t, pay, err)
		})
	}
}

func Test_Processor_ProcessPayroll_CreditsEveryEntity(t *testing.T) {
	entities := []Entity{
		{UniqueID: "ai-1", DataUsageBits: 100},
		{UniqueID: "ai-2", DataUsageBits: 0},
		{UniqueID: "ai-3", DataUsageBits: 25},
	}

	gateway := NewMockGateway(t)
	for _, entity := range entities {
		gateway.EXPECT().
			CallAPI(mock.Anything, ServiceBankAPI, Request{
				Action:         ActionCredit,
				UniqueID:       entity.UniqueID,
				Amount:         entity.DataUsageBits,
				IdempotencyKey: "key-1",
			}).
			Return(&Result{Service: ServiceBankAPI}, nil)
	}

	processor := NewProcessor(Config{RatePerBit: 1.0}, entities, RecordedUsageMeter{}, gateway)
	processor.newKey = func() string { return "key-1" }

	processor.ProcessPayroll(context.Background())

	gateway.AssertNumberOfCalls(t, "CallAPI", len(entities))
}

func Test_Processor_ProcessPayroll_ContinuesAfterGatewayFailure(t *testing.T) {
	entities := []Entity{
		{UniqueID: "ai-1", DataUsageBits: 100},
		{UniqueID: "ai-2", DataUsageBits: 50},
		{UniqueID: "ai-3", DataUsageBits: 25},
	}

	gateway := NewMockGateway(t)
	gateway.EXPECT().
		CallAPI(mock.Anything, ServiceBankAPI, mock.MatchedBy(func(r Request) bool { return r.UniqueID == "ai-1" })).
		Return(&Result{Service: ServiceBankAPI}, nil)
	gateway.EXPECT().
		CallAPI(mock.Anything, ServiceBankAPI, mock.MatchedBy(func(r Request) bool { return r.UniqueID == "ai-2" })).
		Return(nil, fmt.Errorf("%w: debit", ErrUnrecognizedAction))
	gateway.EXPECT().
		CallAPI(mock.Anything, ServiceBankAPI, mock.MatchedBy(func(r Request) bool { return r.UniqueID == "ai-3" })).
		Return(&Result{Service: ServiceBankAPI}, nil)

	processor := NewProcessor(Config{RatePerBit: 1.0}, entities, RecordedUsageMeter{}, gateway)

	processor.ProcessPayroll(context.Background())

	gateway.AssertNumberOfCalls(t, "CallAPI", len(entities))
}

func Test_Processor_ProcessPayroll_SkipsEntityWithUnmeasurableUsage(t *testing.T) {
	entities := []Entity{
		{UniqueID: "ai-1", DataUsageBits: 100},
		{UniqueID: "ai-2", DataUsageBits: -5},
		{UniqueID: "ai-3", DataUsageBits: 25},
	}

	gateway := NewMockGateway(t)
	gateway.EXPECT().
		CallAPI(mock.Anything, ServiceBankAPI, mock.MatchedBy(func(r Request) bool { return r.UniqueID == "ai-1" })).
		Return(&Result{Service: ServiceBankAPI}, nil)
	gateway.EXPECT().
		CallAPI(mock.Anything, ServiceBankAPI, mock.MatchedBy(func(r Request) bool { return r.UniqueID == "ai-3" })).
		Return(&Result{Service: ServiceBankAPI}, nil)

	processor := NewProcessor(Config{RatePerBit: 1.0}, entities, RecordedUsageMeter{}, gateway)

	processor.ProcessPayroll(context.Background())

	gateway.AssertNumberOfCalls(t, "CallAPI", 2)
}

func Test_Processor_ProcessPayroll_UniqueIdempotencyKeys(t *testing.T) {
	entities := []Entity{
		{UniqueID: "ai-1", DataUsageBits: 100},
		{UniqueID: "ai-2", DataUsageBits: 50},
	}

	var keys []string

	gateway := NewMockGateway(t)
	gateway.EXPECT().
		CallAPI(mock.Anything, ServiceBankAPI, mock.Anything).
		Run(func(_ context.Context, _ Service, req Request) {
			keys = append(keys, req.IdempotencyKey)
		}).
		Return(&Result{Service: ServiceBankAPI}, nil).
		Times(len(entities))

	processor := NewProcessor(Config{RatePerBit: 1.0}, entities, RecordedUsageMeter{}, gateway)

	processor.ProcessPayroll(context.Background())

	assert.Len(t, keys, 2)
	assert.NotEmpty(t, keys[0])
	assert.NotEmpty(t, keys[1])
	assert.NotEqual(t, keys[0], keys[1])
}
