package apperr

import "errors"

// Unavailable indicates that the underlying data store could not be
// reached or a computation failed mid-flight. Callers must treat it as
// "could not compute", never as an empty result.
var Unavailable = errors.New("data source unavailable")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")
