package chain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jupbuy/internal/chain"
)

func TestProgramErrorCode(t *testing.T) {
	tests := []struct {
		name string
		data any
		want *int64
	}{
		{
			name: "preflight data",
			data: map[string]any{"err": map[string]any{"InstructionError": []any{2.0, map[string]any{"Custom": 6001.0}}}},
			want: ptr(6001),
		},
		{
			name: "bare err",
			data: map[string]any{"InstructionError": []any{json.Number("0"), map[string]any{"Custom": json.Number("1")}}},
			want: ptr(1),
		},
		{
			name: "non custom instruction error",
			data: map[string]any{"err": map[string]any{"InstructionError": []any{0.0, "InvalidAccountData"}}},
		},
		{name: "string err", data: map[string]any{"err": "AccountNotFound"}},
		{name: "nil", data: nil},
		{name: "fractional", data: map[string]any{"InstructionError": []any{0.0, map[string]any{"Custom": 1.5}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chain.ProgramErrorCode(tt.data)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func ptr(v int64) *int64 { return &v }
