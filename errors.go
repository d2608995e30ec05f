package provenance

import "errors"

// ErrTagClaimed is returned when constructing a map whose provenance tag has
// already been claimed by another map at some point in the process's lifetime.
// Match it with errors.Is; the wrapped message names the offending tag type.
//
// This is the only error the package produces. Every other operation is total.
var ErrTagClaimed = errors.New("provenance tag already claimed")
