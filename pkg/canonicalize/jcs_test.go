package canonicalize

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJCS(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"sorted keys", map[string]any{"c": 3, "a": 1, "b": 2}, `{"a":1,"b":2,"c":3}`},
		{"nested sorting", map[string]any{"z": map[string]any{"y": "foo", "x": "bar"}, "a": 1}, `{"a":1,"z":{"x":"bar","y":"foo"}}`},
		{"no html escaping", map[string]string{"html": "<b> & </b>"}, `{"html":"<b> & </b>"}`},
		{"integral float", map[string]float64{"v": 2.0}, `{"v":2}`},
		{"struct tags", struct {
			B int `json:"b"`
			A int `json:"a,omitempty"`
		}{B: 1}, `{"b":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JCS(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestJCSIsStableAcrossMapOrder(t *testing.T) {
	a := map[string]any{}
	b := map[string]any{}
	keys := []string{"gold", "silver", "painite", "bauxite", "tritium"}
	for i, k := range keys {
		a[k] = i
	}
	for i := len(keys) - 1; i >= 0; i-- {
		b[keys[i]] = i
	}
	ha, err := CanonicalHash(a)
	require.NoError(t, err)
	hb, err := CanonicalHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
	assert.True(t, strings.HasPrefix(ha, "sha256:"))
}

func TestJCSRejectsUnmarshallable(t *testing.T) {
	_, err := JCS(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}

func FuzzJCS(f *testing.F) {
	f.Add([]byte(`{"a":1,"b":2}`))
	f.Add([]byte(`{"event":"Scan","BodyName":"Sol 3","MassEM":1.0}`))
	f.Add([]byte(`{"unicode":"こんにちは","escape":"line1\nline2"}`))
	f.Add([]byte(`[]`))

	f.Fuzz(func(t *testing.T, data []byte) {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			t.Skip("invalid JSON input")
		}
		b1, err := JCS(v)
		if err != nil {
			return
		}
		b2, err := JCS(v)
		require.NoError(t, err)
		require.Equal(t, b1, b2)

		var round any
		require.NoError(t, json.Unmarshal(b1, &round))
		b3, err := JCS(round)
		require.NoError(t, err)
		require.Equal(t, b1, b3, "canonical form must be a fixed point")
	})
}
