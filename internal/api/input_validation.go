package api

import (
	"errors"
	"time"
)

func (handler *Handler) parseDayParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation(time.DateOnly, raw, handler.location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// parseOptionalDayParam distinguishes an absent bound (zero time) from
// a malformed one.
func (handler *Handler) parseOptionalDayParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return handler.parseDayParam(raw)
}
