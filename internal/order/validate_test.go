package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, body string) *WebhookPayload {
	t.Helper()
	p, err := DecodeWebhookPayload(strings.NewReader(body))
	require.NoError(t, err)
	return p
}

func TestValidate_FieldOrder(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string // "" means the payload passes
	}{
		{"all fields present", `{"id":"1001","customer":"Alice","total_price":49.5}`, ""},
		{"id absent", `{"customer":"Bob","total_price":10}`, "id"},
		{"id empty string", `{"id":"","customer":"Bob","total_price":10}`, "id"},
		{"id zero number", `{"id":0,"customer":"Bob","total_price":10}`, "id"},
		{"id null", `{"id":null,"customer":"Bob","total_price":10}`, "id"},
		{"customer absent", `{"id":"1001","total_price":10}`, "customer"},
		{"customer empty", `{"id":"1001","customer":"","total_price":10}`, "customer"},
		{"total_price absent", `{"id":"1001","customer":"Alice"}`, "total_price"},
		{"total_price null", `{"id":"1001","customer":"Alice","total_price":null}`, "total_price"},
		{"total_price zero is valid", `{"id":"1001","customer":"Alice","total_price":0}`, ""},
		// first failing check wins, later missing fields are not reported
		{"id and customer both missing", `{"total_price":10}`, "id"},
		{"customer and total_price both missing", `{"id":"1001"}`, "customer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(mustDecode(t, tt.body))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var mf *MissingFieldError
			require.ErrorAs(t, err, &mf)
			assert.Equal(t, tt.wantField, mf.Field)
		})
	}
}

func TestValidate_NumericStringIDPasses(t *testing.T) {
	p := mustDecode(t, `{"id":1001,"customer":"Alice","total_price":"19.99"}`)
	assert.NoError(t, Validate(p))
}

func TestDecodeWebhookPayload_IgnoresExtraFields(t *testing.T) {
	p := mustDecode(t, `{"id":"1001","customer":"Alice","total_price":10,"currency":"USD","line_items":[]}`)
	require.NoError(t, Validate(p))
	assert.Equal(t, "1001", p.ID)
}

func TestDecodeWebhookPayload_RejectsNonObjectBody(t *testing.T) {
	_, err := DecodeWebhookPayload(strings.NewReader(`"not an object"`))
	assert.Error(t, err)

	_, err = DecodeWebhookPayload(strings.NewReader(`{"id":`))
	assert.Error(t, err)
}
