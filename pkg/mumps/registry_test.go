package mumps_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps/mumpstest"
)

func TestRegistry_Register(t *testing.T) {
	r := mumps.NewRegistry()
	m := mumpstest.NewModule("gtm")

	r.Register("gtm", m)

	got, err := r.Lookup("gtm")
	require.NoError(t, err)
	assert.Same(t, m, got)
}

func TestRegistry_Register_Replaces(t *testing.T) {
	r := mumps.NewRegistry()
	r.Register("gtm", mumpstest.NewModule("first"))
	second := mumpstest.NewModule("second")
	r.Register("gtm", second)

	got, err := r.Lookup("gtm")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestRegistry_Lookup_NotRegistered(t *testing.T) {
	r := mumps.NewRegistry()

	got, err := r.Lookup("missing")
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, mumps.ErrNotRegistered))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestRegistry_Installed(t *testing.T) {
	r := mumps.NewRegistry()
	r.Register("ydb", mumpstest.NewModule("ydb"))
	r.Register("gtm", mumpstest.NewModule("gtm"))

	assert.Equal(t, []string{"gtm", "ydb"}, r.Installed())
}

func TestRegistry_Installed_Empty(t *testing.T) {
	assert.Empty(t, mumps.NewRegistry().Installed())
}
