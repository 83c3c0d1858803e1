package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalTokenRoundTrip(t *testing.T) {
	token, err := GenerateTerminalToken("4", "secret", time.Hour)
	require.NoError(t, err)

	registerID, err := ParseTerminalToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "4", registerID)
}

func TestTerminalTokenWrongSecret(t *testing.T) {
	token, err := GenerateTerminalToken("4", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseTerminalToken(token, "other")
	assert.Error(t, err)
}

func TestTerminalTokenExpired(t *testing.T) {
	token, err := GenerateTerminalToken("4", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseTerminalToken(token, "secret")
	assert.Error(t, err)
}

func TestTerminalTokenGarbage(t *testing.T) {
	_, err := ParseTerminalToken("not-a-token", "secret")
	assert.Error(t, err)
}
