package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps/mumpstest"
)

func TestRunExample(t *testing.T) {
	m := mumpstest.NewModule("example")

	require.NoError(t, runExample(context.Background(), m, "demo", "secret", ""))

	assert.Equal(t, []string{"open", "login", "close"}, m.Calls())
	logins := m.Logins()
	require.Len(t, logins, 1)
	assert.Equal(t, "demo", logins[0].UID)
	assert.Equal(t, "secret", logins[0].Pass1)
	assert.Empty(t, logins[0].Pass2)
	assert.Len(t, logins[0].Key, 40)
}

func TestLogin_NoSession(t *testing.T) {
	m := mumpstest.NewModule("example")

	_, err := login(context.Background(), m.NewIKS(), "secret", "")
	assert.Error(t, err)
	assert.Empty(t, m.Logins())
}
