package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHost(t *testing.T) {
	assert.Equal(t, "example.cc", NormalizeHost("Example.CC:8080"))
	assert.Equal(t, "example.cc", NormalizeHost("example.cc."))
	assert.Equal(t, "example.cc", NormalizeHost("example.cc"))
}

func TestAccountFromHost(t *testing.T) {
	tests := []struct {
		host    string
		account string
		ok      bool
	}{
		{"example.cc", "example", true},
		{"sub.example.cc:443", "sub.example", true},
		{"example.com", "", false},
		{".cc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			account, ok := AccountFromHost(tt.host, ".cc")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.account, account)
		})
	}
}
