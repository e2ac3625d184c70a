package domain

import "errors"

// ErrYardLineOutOfRange is returned when a staged write would place the ball
// outside the 0-100 field.
var ErrYardLineOutOfRange = errors.New("yard line out of range")

// ErrDownOutOfRange is returned when a staged write would set a down outside 1-4.
var ErrDownOutOfRange = errors.New("down out of range")

// ErrDistanceOutOfRange is returned when a staged write would set a negative
// or impossible yards-to-go.
var ErrDistanceOutOfRange = errors.New("yards to go out of range")

// ErrClockOutOfRange is returned when a staged write would set a negative
// clock or an invalid quarter.
var ErrClockOutOfRange = errors.New("clock out of range")

// ErrNegativePoints is returned when a staged write would award negative points.
var ErrNegativePoints = errors.New("points must be non-negative")

// ErrUnknownTeam is returned when a possession write names a team that is not
// part of the game.
var ErrUnknownTeam = errors.New("unknown team id")

// ErrAuditNotFound is returned by audit sinks when no snapshot exists for the
// requested game.
var ErrAuditNotFound = errors.New("audit snapshot not found")
