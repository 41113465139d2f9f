package customdesign

import "errors"

var ErrRequestNotFound = errors.New("custom design request not found")
