package idgen

import "github.com/google/uuid"

// NewFunc produces session and view identifiers; tests replace it for
// deterministic ids.
var NewFunc = func() string { return uuid.New().String() }

// New returns a fresh identifier.
func New() string { return NewFunc() }
