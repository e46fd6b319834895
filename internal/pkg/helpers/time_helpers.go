package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, falling back to the default when
// the value is malformed
func ParseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn().Err(err).Str("value", raw).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return d
}
