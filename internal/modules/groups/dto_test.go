package groups

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumber_NeverFailsTheForm(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `{"quantity": 2.5}`, 2.5},
		{"numeric string", `{"quantity": "12"}`, 12},
		{"padded string", `{"quantity": " 3 "}`, 3},
		{"garbage falls back to zero", `{"quantity": "abc"}`, 0},
		{"empty string", `{"quantity": ""}`, 0},
		{"null", `{"quantity": null}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p ItemPayload
			require.NoError(t, json.Unmarshal([]byte(tc.in), &p))
			assert.Equal(t, tc.want, float64(p.Quantity))
		})
	}
}
