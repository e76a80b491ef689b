package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsRouteToWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters("scene", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	l.Infof("generated %d voxels", 42)
	l.Warnf("fallback used")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[scene] INFO: generated 42 voxels")
	assert.Contains(t, errOut.String(), "[scene] WARN: fallback used")

	l.SetDebug(true)
	l.Debugf("shown")
	assert.Contains(t, out.String(), "[scene] DEBUG: shown")
}

func TestWithNestsPrefix(t *testing.T) {
	var out bytes.Buffer
	l := NewWithWriters("app", false, &out, &out).With("describe")
	l.Infof("ok")
	assert.Contains(t, out.String(), "[app/describe] INFO: ok")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
	l.Errorf("nothing %s", "happens")
}
