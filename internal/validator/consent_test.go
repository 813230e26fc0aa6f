package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
)

func fields(err *serviceerror.ServiceError) []string {
	out := make([]string, 0, len(err.Details))
	for _, d := range err.Details {
		out = append(out, d.Field)
	}
	return out
}

func TestParseConsentRequest_Valid(t *testing.T) {
	input, err := ParseConsentRequest([]byte(`{
		"userIdentifier": "user-42",
		"purpose": "marketing",
		"action": "GRANTED",
		"ipAddress": "203.0.113.7",
		"userAgent": "Mozilla/5.0"
	}`))
	require.Nil(t, err)

	assert.Equal(t, "user-42", input.UserIdentifier)
	assert.Equal(t, "marketing", input.Purpose)
	assert.Equal(t, models.ConsentActionGranted, input.Action)
	require.NotNil(t, input.IPAddress)
	assert.Equal(t, "203.0.113.7", *input.IPAddress)
	require.NotNil(t, input.UserAgent)
	assert.Equal(t, "Mozilla/5.0", *input.UserAgent)
}

func TestParseConsentRequest_OptionalFieldsAbsent(t *testing.T) {
	input, err := ParseConsentRequest([]byte(`{"userIdentifier":"u","purpose":"analytics","action":"REVOKED","ipAddress":null}`))
	require.Nil(t, err)
	assert.Nil(t, input.IPAddress)
	assert.Nil(t, input.UserAgent)
	assert.Equal(t, models.ConsentActionRevoked, input.Action)
}

func TestParseConsentRequest_IgnoresUnknownFields(t *testing.T) {
	input, err := ParseConsentRequest([]byte(`{"userIdentifier":"u","purpose":"abc","action":"DENIED","extra":123}`))
	require.Nil(t, err)
	assert.Equal(t, models.ConsentActionDenied, input.Action)
}

func TestParseConsentRequest_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
		message  string
	}{
		{
			name:     "Purpose too short",
			body:     `{"userIdentifier":"u","purpose":"ab","action":"GRANTED"}`,
			expected: []string{"purpose"},
			message:  "must be at least 3 characters",
		},
		{
			name:     "Purpose counted in characters",
			body:     `{"userIdentifier":"u","purpose":"éé","action":"GRANTED"}`,
			expected: []string{"purpose"},
		},
		{
			name:     "Action outside enum",
			body:     `{"userIdentifier":"u","purpose":"marketing","action":"MAYBE"}`,
			expected: []string{"action"},
			message:  "must be one of GRANTED, DENIED, REVOKED",
		},
		{
			name:     "Action is case sensitive",
			body:     `{"userIdentifier":"u","purpose":"marketing","action":"granted"}`,
			expected: []string{"action"},
		},
		{
			name:     "Missing user identifier",
			body:     `{"purpose":"marketing","action":"GRANTED"}`,
			expected: []string{"userIdentifier"},
			message:  "is required",
		},
		{
			name:     "Empty user identifier",
			body:     `{"userIdentifier":"","purpose":"marketing","action":"GRANTED"}`,
			expected: []string{"userIdentifier"},
		},
		{
			name:     "Wrong types",
			body:     `{"userIdentifier":7,"purpose":"marketing","action":"GRANTED","ipAddress":false}`,
			expected: []string{"userIdentifier", "ipAddress"},
			message:  "must be a string",
		},
		{
			name:     "Every failing field reported in order",
			body:     `{"action":"NOPE","purpose":"x"}`,
			expected: []string{"userIdentifier", "purpose", "action"},
		},
		{
			name:     "Empty object",
			body:     `{}`,
			expected: []string{"userIdentifier", "purpose", "action"},
		},
		{
			name:     "Array body",
			body:     `[1,2]`,
			expected: []string{"body"},
		},
		{
			name:     "Empty body",
			body:     ``,
			expected: []string{"body"},
		},
		{
			name:     "Malformed JSON",
			body:     `{"userIdentifier":`,
			expected: []string{"body"},
		},
		{
			name:     "User agent too long",
			body:     `{"userIdentifier":"u","purpose":"abc","action":"GRANTED","userAgent":"` + strings.Repeat("a", 2049) + `"}`,
			expected: []string{"userAgent"},
			message:  "must be at most 2048 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := ParseConsentRequest([]byte(tt.body))
			assert.Nil(t, input)
			require.NotNil(t, err)
			assert.Equal(t, serviceerror.ValidationError.Code, err.Code)
			assert.Equal(t, tt.expected, fields(err))
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Details[0].Message)
			}
		})
	}
}
