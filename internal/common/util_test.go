package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEther(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"nil", nil, "0"},
		{"zero", big.NewInt(0), "0"},
		{"whole", mustWei(t, "1"), "1"},
		{"fraction", mustWei(t, "1.5"), "1.5"},
		{"small", big.NewInt(1), "0.000000000000000001"},
		{"trimmed", big.NewInt(100000000000000000), "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEther(tt.wei))
		})
	}
}

func TestParseEther(t *testing.T) {
	got, err := ParseEther("2.5")
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("2500000000000000000", 10)
	assert.Equal(t, 0, got.Cmp(want))

	got, err = ParseEther("0.000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(big.NewInt(1)))
}

func TestParseEther_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "-1", "1.1234567890123456789"} {
		_, err := ParseEther(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseEther_RoundTrip(t *testing.T) {
	for _, s := range []string{"0.25", "10", "3.141592653589793238"} {
		wei, err := ParseEther(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatEther(wei))
	}
}

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "0x1234...cdef", ShortenAddress("0x1234567890abcdef1234567890abcdef1234cdef"))
	assert.Equal(t, "0xabc", ShortenAddress("0xabc"))
}

func mustWei(t *testing.T, s string) *big.Int {
	t.Helper()
	w, err := ParseEther(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return w
}
