package cpanel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneRecordValue(t *testing.T) {
	tests := []struct {
		name     string
		record   ZoneRecord
		expected string
	}{
		{
			name:     "A record uses address",
			record:   ZoneRecord{Type: "A", Address: "192.0.2.10"},
			expected: "192.0.2.10",
		},
		{
			name:     "CNAME record uses cname",
			record:   ZoneRecord{Type: "CNAME", CName: "web.example.com."},
			expected: "web.example.com.",
		},
		{
			name:     "TXT record uses txtdata",
			record:   ZoneRecord{Type: "TXT", TXTData: "v=spf1 -all"},
			expected: "v=spf1 -all",
		},
		{
			name:     "address wins when multiple fields are set",
			record:   ZoneRecord{Type: "A", Address: "192.0.2.10", TXTData: "stale"},
			expected: "192.0.2.10",
		},
		{
			name:     "empty record yields empty value",
			record:   ZoneRecord{Type: "NS"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Value())
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Param: "ttl", Message: "must be positive"}
	assert.Equal(t, "invalid ttl: must be positive", err.Error())

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestAPIError(t *testing.T) {
	err := &APIError{
		Namespace: "uapi",
		Function:  "add_pop",
		Message:   "You must specify a password.",
	}
	assert.Equal(t, "cpanel uapi add_pop: You must specify a password.", err.Error())
}
