package domain

import "errors"

var (
	ErrDayNotFound      = errors.New("workout day not found in plan")
	ErrSnapshotNotFound = errors.New("session snapshot not found")
)
