package tcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_response_String(t *testing.T) {
	tests := []struct {
		name     string
		response response
		expected string
	}{
		{
			name: "Accepted",
			response: response{
				status: Accepted,
				reason: "credit processed",
			},
			expected: "RESPONSE|ACCEPTED|Credit processed",
		},
		{
			name: "Rejected",
			response: response{
				status: Rejected,
				reason: "invalid amount",
			},
			expected: "RESPONSE|REJECTED|Invalid amount",
		},
		{
			name:     "Empty",
			response: response{},
			expected: "RESPONSE|ACCEPTED|",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.EqualValues(t, test.expected, test.response.String())
		})
	}
}
