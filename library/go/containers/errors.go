package containers

import (
	"fmt"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// ErrInvalidArgument is matched by every error returned for a violated precondition.
var ErrInvalidArgument = xerrors.NewSentinel("invalid argument")

// ArgumentError describes a parameter that violates a precondition.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument.Error(), e.Arg, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == error(ErrInvalidArgument)
}

// InvalidArgument returns ArgumentError for parameter arg.
func InvalidArgument(arg, format string, args ...any) error {
	return &ArgumentError{Arg: arg, Reason: fmt.Sprintf(format, args...)}
}
