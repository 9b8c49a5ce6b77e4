package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errsift/internal/classify"
)

func TestNewRecordTransport(t *testing.T) {
	occ := Occurrence{
		Operation: "load_user_data",
		Err: &classify.TransportError{
			Kind:       classify.TransportBadResponse,
			StatusCode: 404,
			URL:        "https://api.example.com/users/42",
		},
	}

	rec := newRecord(occ)

	assert.Equal(t, classify.CategoryClient, rec.Category)
	assert.Equal(t, classify.SeverityMedium, rec.Severity)
	assert.False(t, rec.Fatal)
	assert.Equal(t, "Network Error: load_user_data", rec.Reason)
	assert.NotEmpty(t, rec.ID)

	assert.Equal(t, "load_user_data", rec.Info["operation"])
	assert.Equal(t, "bad_response", rec.Info["transport_kind"])
	assert.Equal(t, "404", rec.Info["status_code"])
	// Endpoint derived from the transport error's target URL.
	assert.Equal(t, "https://api.example.com/users/42", rec.Info["endpoint"])
}

func TestNewRecordExplicitEndpointWins(t *testing.T) {
	occ := Occurrence{
		Operation: "sync",
		Endpoint:  "https://proxy.internal/sync",
		Err: &classify.TransportError{
			Kind: classify.TransportConnectionError,
			URL:  "https://api.example.com/sync",
		},
	}

	rec := newRecord(occ)
	assert.Equal(t, "https://proxy.internal/sync", rec.Info["endpoint"])
}

func TestNewRecordReason(t *testing.T) {
	var parsed map[string]any
	parseErr := json.Unmarshal([]byte("{"), &parsed)
	require.Error(t, parseErr)

	tests := []struct {
		name   string
		occ    Occurrence
		reason string
	}{
		{
			name:   "parsing phrasing preferred",
			occ:    Occurrence{Operation: "decode_profile", Err: parseErr},
			reason: "Parsing Error: decode_profile",
		},
		{
			name: "network phrasing second",
			occ: Occurrence{
				Operation: "fetch_feed",
				Err:       &classify.TransportError{Kind: classify.TransportReceiveTimeout},
			},
			reason: "Network Error: fetch_feed",
		},
		{
			name:   "generic phrasing last",
			occ:    Occurrence{Operation: "render", Message: "something odd happened"},
			reason: "Error in render",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason, newRecord(tt.occ).Reason)
		})
	}
}

func TestNewRecordContextCap(t *testing.T) {
	occ := Occurrence{
		Operation: "checkout",
		Message:   "something odd happened",
		Context: map[string]any{
			"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7,
		},
	}

	rec := newRecord(occ)

	extra := 0
	for k := range rec.Info {
		if len(k) == 1 {
			extra++
		}
	}
	assert.Equal(t, maxExtraContext, extra)
	// Deterministic pick: first five keys in sort order.
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		assert.Contains(t, rec.Info, k)
	}
	assert.NotContains(t, rec.Info, "f")
	assert.NotContains(t, rec.Info, "g")
}

func TestNewRecordContextCannotShadowFixedKeys(t *testing.T) {
	occ := Occurrence{
		Operation: "checkout",
		Message:   "something odd happened",
		Context:   map[string]any{"operation": "spoofed"},
	}

	rec := newRecord(occ)
	assert.Equal(t, "checkout", rec.Info["operation"])
}

func TestNewRecordPayloadPreview(t *testing.T) {
	payload := strings.Repeat("x", 500)
	occ := Occurrence{
		Operation:  "decode_profile",
		Message:    "unexpected character",
		DataType:   "UserProfile",
		RawPayload: payload,
	}

	rec := newRecord(occ)

	preview := rec.Info["payload_preview"]
	assert.Len(t, preview, maxPayloadPreview+len(truncationMarker))
	assert.True(t, strings.HasSuffix(preview, truncationMarker))
	assert.Equal(t, "500", rec.Info["payload_size"])
	assert.Equal(t, "UserProfile", rec.Info["data_type"])
}

func TestNewRecordShortPayloadNotTruncated(t *testing.T) {
	rec := newRecord(Occurrence{
		Operation:  "decode_profile",
		Message:    "unexpected character",
		RawPayload: "short",
	})
	assert.Equal(t, "short", rec.Info["payload_preview"])
	assert.Equal(t, "5", rec.Info["payload_size"])
}

func TestNewRecordSeverityOverride(t *testing.T) {
	low := classify.SeverityLow
	occ := Occurrence{
		Operation: "load_user_data",
		Err: &classify.TransportError{
			Kind:       classify.TransportBadResponse,
			StatusCode: 500,
		},
		Severity: &low,
	}

	rec := newRecord(occ)
	assert.Equal(t, classify.CategoryServer, rec.Category)
	assert.Equal(t, classify.SeverityLow, rec.Severity)
}

func TestNewRecordTimestamp(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	rec := newRecord(Occurrence{Operation: "op", Message: "m", Time: at})
	assert.Equal(t, "2026-03-14T09:26:53Z", rec.Info["timestamp"])
}

func TestNewRecordIdempotent(t *testing.T) {
	occ := Occurrence{
		Operation: "load_user_data",
		Err: &classify.TransportError{
			Kind:       classify.TransportBadResponse,
			StatusCode: 404,
			URL:        "https://api.example.com/users/42",
		},
		Time: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}

	first := newRecord(occ)
	second := newRecord(occ)

	assert.Equal(t, first.Category, second.Category)
	assert.Equal(t, first.Severity, second.Severity)
	assert.Equal(t, first.Fatal, second.Fatal)
	assert.Equal(t, first.Reason, second.Reason)
	assert.Equal(t, first.Info, second.Info)
	// IDs are per-record, not per-occurrence.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRecordInformation(t *testing.T) {
	rec := Record{
		Category: classify.CategoryClient,
		Severity: classify.SeverityMedium,
		Fatal:    false,
		Info: map[string]string{
			"operation": "load_user_data",
			"endpoint":  "https://api.example.com",
		},
	}

	info := rec.Information()
	require.Len(t, info, 5)
	assert.Equal(t, "category: ClientError", info[0])
	assert.Equal(t, "severity: medium", info[1])
	assert.Equal(t, "fatal: false", info[2])
	// Context entries follow in key order.
	assert.Equal(t, "endpoint: https://api.example.com", info[3])
	assert.Equal(t, "operation: load_user_data", info[4])
}
