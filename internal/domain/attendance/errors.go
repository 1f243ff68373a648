package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance period not found")
	ErrInvalidPeriod      = errors.New("invalid attendance period")
)
