package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// ErrUnknownUser is returned when an operation names a username that has
	// never signed in.
	ErrUnknownUser = fmt.Errorf("unknown user")

	// ErrDeliveryTimeout is returned by a live sink whose consumer did not
	// drain its buffer within the configured delivery timeout.
	ErrDeliveryTimeout = fmt.Errorf("live delivery timed out")
)

// MapToGRPCError translates domain errors into gRPC status errors. Domain
// outcomes that the protocol carries as payload text (already connected,
// already following, ...) never reach this function; only genuine failures do.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnknownUser):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrDeliveryTimeout):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
