package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debugf("x %d", 1)
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
	})
}

func TestNew_LevelFollowsVerbose(t *testing.T) {
	var quiet bytes.Buffer
	l := New(&quiet, false)
	l.Debugf("hidden %s", "debug")
	l.Infof("hidden info")
	l.Warnf("shown %s", "warning")
	assert.NotContains(t, quiet.String(), "hidden")
	assert.Contains(t, quiet.String(), "shown warning")

	var loud bytes.Buffer
	l = New(&loud, true)
	l.Debugf("parsed %d values", 3)
	assert.Contains(t, loud.String(), "parsed 3 values")
	assert.Contains(t, loud.String(), "level=debug")
}
