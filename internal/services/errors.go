package services

import "errors"

// Sentinel errors returned by services when a looked-up record is absent.
// Handlers translate these to 404 responses; they never escape as panics.
var (
	ErrPropertyNotFound       = errors.New("property not found")
	ErrRoomNotFound           = errors.New("room not found")
	ErrViewingRequestNotFound = errors.New("viewing request not found")
)
