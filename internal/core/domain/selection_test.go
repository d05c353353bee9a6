package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectFlagged(t *testing.T) {
	universe := []string{"Springfield", "Shelbyville"}

	tests := []struct {
		name   string
		flags  map[string]string
		expect []string
	}{
		{"one set", map[string]string{"Springfield": "on"}, []string{"Springfield"}},
		{"none set", map[string]string{}, []string{}},
		{"nil flags", nil, []string{}},
		{"unknown key", map[string]string{"Nowhere": "on"}, []string{}},
		{"universe order kept", map[string]string{"Shelbyville": "on", "Springfield": "true"}, []string{"Springfield", "Shelbyville"}},
		{"falsy values", map[string]string{"Springfield": "", "Shelbyville": "off"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, SelectFlagged(universe, tt.flags))
		})
	}
}

func TestIsFlagSet(t *testing.T) {
	for _, v := range []string{"on", "1", "true", "yes", "Springfield"} {
		assert.True(t, IsFlagSet(v), v)
	}
	for _, v := range []string{"", " ", "0", "false", "FALSE", "off", "no"} {
		assert.False(t, IsFlagSet(v), v)
	}
}
