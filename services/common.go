package services

import "errors"

// ErrProfileNotSet gates every operation that needs body metrics or targets.
// Controllers translate it to a precondition failure for the shell to render
// as a "set up your profile first" warning.
var ErrProfileNotSet = errors.New("profile not set up")
