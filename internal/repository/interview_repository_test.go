package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceScoreRepresentations(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float64", float64(87.5), 87.5},
		{"float32", float32(50), 50},
		{"int64", int64(42), 42},
		{"int", 13, 13},
		{"numeric bytes", []byte("73.25"), 73.25},
		{"numeric string", "66", 66},
		{"garbage string", "not a number", 0},
		{"nil", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, coerceScore(tc.in), 0.0001)
		})
	}
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "abc", asString("abc"))
	assert.Equal(t, "abc", asString([]byte("abc")))
	assert.Equal(t, "", asString(nil))
	assert.Equal(t, "", asString(42))
}
