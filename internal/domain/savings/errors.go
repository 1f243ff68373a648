package savings

import "errors"

var ErrSavingsNotFound = errors.New("savings account not found")
