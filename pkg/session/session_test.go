package session_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/fernlang/fernc/pkg/session"
)

func TestSessionErrCount(t *testing.T) {
	var buf strings.Builder
	sess := session.New(zerolog.New(&buf))

	assert.False(t, sess.HasErrors())
	assert.NoError(t, sess.AbortIfErrors())

	sess.Errf("bad thing %d", 1)
	sess.Err(errors.New("bad thing 2"))
	sess.Warnf("just a warning")

	assert.Equal(t, 2, sess.ErrCount())
	assert.True(t, sess.HasErrors())

	err := sess.AbortIfErrors()
	assert.EqualError(t, err, "aborting due to 2 previous error(s)")

	out := buf.String()
	assert.Contains(t, out, "bad thing 1")
	assert.Contains(t, out, "bad thing 2")
	assert.Contains(t, out, "just a warning")
}
