package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOptions(&out, &errOut, ColorNever), &out, &errOut
}

func TestErrorGoesToStderr(t *testing.T) {
	p, out, errOut := newTestPresenter()

	p.Error(errors.New("boom"), "syncing catalog")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "[ERROR] syncing catalog: boom")

	p.Error(nil, "ignored")
	assert.NotContains(t, errOut.String(), "ignored")
}

func TestMessages(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("done")
	p.Warning("careful")
	p.Info("plain")
	p.Section("Skills")

	output := out.String()
	assert.Contains(t, output, "✓ done")
	assert.Contains(t, output, "⚠ careful")
	assert.Contains(t, output, "plain")
	assert.Contains(t, output, "Skills\n------")
}

func TestQuietModeSuppressesOutput(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.SetQuiet(true)
	assert.True(t, p.IsQuiet())

	p.Success("done")
	p.Warning("careful")
	p.Info("plain")
	assert.Empty(t, out.String())

	// Errors are never suppressed.
	p.Error(errors.New("boom"), "")
	assert.Contains(t, errOut.String(), "boom")
}
