package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a zerolog.Logger that forwards log output to the
// test log, so diagnostics produced during a test show up next to its
// failures.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t))
}
