package models

import "errors"

// ErrInvalidArgument reports malformed input: negative quantities,
// out-of-range discounts, unknown order statuses.
var ErrInvalidArgument = errors.New("invalid argument")
