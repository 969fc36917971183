package log

import (
	"github.com/rs/zerolog"

	"github.com/go-smooth/smooth/pkg/errors"
)

// RedirectWarnings routes library warnings onto the given zerolog logger.
// Warnings that implement zerolog.LogObjectMarshaler are embedded as
// structured fields; others are logged by message only.
func RedirectWarnings(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.EmbedObject(m)
		}
		event.Msg(warning.Error())
	})
}
