package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"150000", "150000.00"},
		{"99.5", "99.50"},
		{"12.345", "12.345"},
		{"0012.10", "12.10"},
		{" 7.00 ", "7.00"},
		{"-0.5", "-0.50"},
		{"-0.00", "0.00"},
		{"0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMoney(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, m.String())
		})
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1e5", "1.", ".5", "1,5", "NaN"} {
		_, err := ParseMoney(in)
		assert.Error(t, err, in)
	}
}

func TestMoney_Equal(t *testing.T) {
	assert.True(t, MustParseMoney("1.5").Equal(MustParseMoney("1.500")))
	assert.True(t, MustParseMoney("100").Equal(MustParseMoney("100.00")))
	assert.False(t, MustParseMoney("100.01").Equal(MustParseMoney("100.00")))
	assert.Equal(t, "0.00", Money{}.String())
}

func TestMoney_KeepsPrecisionBeyondFloat(t *testing.T) {
	m := MustParseMoney("12345678901234567.89")
	assert.Equal(t, "12345678901234567.89", m.String())
}
