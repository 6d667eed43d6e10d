package mumps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMode_String(t *testing.T) {
	assert.Equal(t, "canonical", ModeCanonical.String())
	assert.Equal(t, "strict", ModeStrict.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestModeString(t *testing.T) {
	m, err := ModeString("STRICT")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, m)

	_, err = ModeString("loose")
	assert.Error(t, err)
}

func TestMode_YAML(t *testing.T) {
	var cfg struct {
		Mode Mode `yaml:"mode"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("mode: strict\n"), &cfg))
	assert.Equal(t, ModeStrict, cfg.Mode)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "mode: strict\n", string(out))
}
