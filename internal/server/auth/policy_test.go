package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abc1!x", true},
		{"Abc123!x", true},
		{"Zz9#zz", true},
		{"abc123", false},  // no uppercase, no symbol
		{"ABC123!", false}, // no lowercase
		{"Abcdef!", false}, // no digit
		{"Abc123", false},  // no symbol
		{"Abc1^x", false},  // symbol outside the set
		{"Ab1!x", false},   // too short
		{"", false},
		{"Äbc1!x", false}, // non-ASCII uppercase does not count
		{"Abc1!é", true},  // six characters, not six bytes
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPassword(tt.password), "password %q", tt.password)
	}
}

func TestIsValidPassword_EverySymbolAccepted(t *testing.T) {
	for _, sym := range passwordSymbols {
		assert.True(t, IsValidPassword("Abc12"+string(sym)), "symbol %q", sym)
	}
}
