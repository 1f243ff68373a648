package schedule

import "errors"

var ErrScheduleNotFound = errors.New("run schedule not found")
