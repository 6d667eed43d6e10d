package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SplitsStreams(t *testing.T) {
	var errOut, infoOut bytes.Buffer
	s := New("nodem", &errOut, &infoOut, "info")

	s.Err.Error("load failed")
	s.Info.Info("try again")

	assert.Contains(t, errOut.String(), "[ERROR] nodem: load failed")
	assert.NotContains(t, errOut.String(), "try again")
	assert.Contains(t, infoOut.String(), "[INFO]  nodem: try again")
	assert.NotContains(t, infoOut.String(), "load failed")
}

func TestNew_Level(t *testing.T) {
	var errOut, infoOut bytes.Buffer
	s := New("nodem", &errOut, &infoOut, "info")

	s.Info.Debug("hidden")
	s.Err.Debug("hidden")

	assert.Empty(t, infoOut.String())
	assert.Empty(t, errOut.String())

	s = New("nodem", &errOut, &infoOut, "debug")
	s.Info.Debug("detail")
	assert.Contains(t, infoOut.String(), "[DEBUG] nodem: detail")
}

func TestNew_LevelNeverHidesDiagnostics(t *testing.T) {
	for _, level := range []string{"warn", "error", "off", "loud"} {
		t.Run(level, func(t *testing.T) {
			var errOut, infoOut bytes.Buffer
			s := New("nodem", &errOut, &infoOut, level)

			s.Err.Error("load failed")
			s.Info.Info("try again")
			s.Info.Debug("hidden")

			assert.Contains(t, errOut.String(), "load failed")
			assert.Contains(t, infoOut.String(), "try again")
			assert.NotContains(t, infoOut.String(), "hidden")
		})
	}
}

func TestDiscard(t *testing.T) {
	s := Discard()
	s.Err.Error("nothing")
	s.Info.Info("nothing")
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("WARN"))
	assert.False(t, ValidLevel("loud"))
	assert.False(t, ValidLevel(""))
}
