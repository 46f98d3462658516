package tier

import "errors"

var (
	ErrUnknownLevel   = errors.New("tier.errors.unknown_level")
	ErrDuplicateLevel = errors.New("tier.errors.duplicate_level")
	ErrInvalidLimit   = errors.New("tier.errors.invalid_limit")
)
