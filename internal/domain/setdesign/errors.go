package setdesign

import "errors"

var ErrSetDesignNotFound = errors.New("set design not found")
