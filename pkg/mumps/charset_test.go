package mumps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscoder_RoundTrip(t *testing.T) {
	tc, err := NewTranscoder("cp1251")
	require.NoError(t, err)
	assert.Equal(t, "cp1251", tc.Name())

	native := tc.Encode("привет")
	assert.Equal(t, []byte{0xef, 0xf0, 0xe8, 0xe2, 0xe5, 0xf2}, []byte(native))
	assert.Equal(t, "привет", tc.Decode(native))
}

func TestTranscoder_ASCIIUnchanged(t *testing.T) {
	tc, err := NewTranscoder("koi8-r")
	require.NoError(t, err)

	assert.Equal(t, "record 1", tc.Encode("record 1"))
	assert.Equal(t, "record 1", tc.Decode("record 1"))
}

func TestTranscoder_Unknown(t *testing.T) {
	_, err := NewTranscoder("no-such-charset")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestTranscoder_Unconvertible(t *testing.T) {
	tc, err := NewTranscoder("cp1251")
	require.NoError(t, err)

	assert.Equal(t, NoValue, tc.Encode("日本"))
	assert.Equal(t, "", tc.Encode(""))
}

func TestTranscoder_InvalidUTF8KeepsPrefix(t *testing.T) {
	tc, err := NewTranscoder("cp1251")
	require.NoError(t, err)

	assert.Equal(t, "a", tc.Encode("a\xffb"))
	assert.Equal(t, NoValue, tc.Encode("\xffb"))
}
