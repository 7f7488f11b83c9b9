// Package session carries the per-compilation diagnostics state shared by
// all passes: an error counter and the logger diagnostics are written to.
package session

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Session accumulates diagnostics for one compilation.  Passes record errors
// as they find them and keep going; the driver checks AbortIfErrors between
// phases.
type Session struct {
	logger   zerolog.Logger
	errCount int
}

func New(logger zerolog.Logger) *Session {
	return &Session{logger: logger}
}

// Err records and logs a compilation error.
func (s *Session) Err(err error) {
	s.errCount++
	s.logger.Error().Msg(err.Error())
}

// Errf records and logs a compilation error.
func (s *Session) Errf(format string, args ...any) {
	s.errCount++
	s.logger.Error().Msgf(format, args...)
}

// Warnf logs a warning.  Warnings do not affect AbortIfErrors.
func (s *Session) Warnf(format string, args ...any) {
	s.logger.Warn().Msgf(format, args...)
}

// ErrCount returns the number of errors recorded so far.
func (s *Session) ErrCount() int {
	return s.errCount
}

// HasErrors reports whether any error has been recorded.
func (s *Session) HasErrors() bool {
	return s.errCount > 0
}

// AbortIfErrors returns a non-nil error if any error has been recorded,
// signalling the caller to stop the compilation.
func (s *Session) AbortIfErrors() error {
	if s.errCount == 0 {
		return nil
	}
	return fmt.Errorf("aborting due to %d previous error(s)", s.errCount)
}
