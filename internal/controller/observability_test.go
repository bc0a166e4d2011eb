package controller

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogMutationObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogMutationObserver(&buf)

	obs.ObserveMutation(MutationEvent{Action: "add_object", Label: "Add Box", Commands: 1})
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=mutation")
	assert.Contains(t, out, "action=add_object")

	buf.Reset()
	obs.ObserveMutation(MutationEvent{Action: "update_object", NoOp: true, Reason: "no-op edit"})
	out = buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=mutation_noop")
	assert.Contains(t, out, `reason="no-op edit"`)
}

func TestLogMutationObserver_NilWriter(t *testing.T) {
	obs := NewLogMutationObserver(nil)
	assert.IsType(t, NoopMutationObserver{}, obs)
}
