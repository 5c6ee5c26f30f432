package yandex

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const tokenHint = "the IAM token may be expired or lack access to the folder, " +
	"refresh it with `export TF_VAR_yc_iam_token=$(yc iam create-token)`"

// APIError wraps a failed compute API call.
type APIError struct {
	Op   string
	Code codes.Code
	Err  error
}

func newAPIError(op string, err error) *APIError {
	return &APIError{Op: op, Code: status.Code(err), Err: err}
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Err)
	if isAuthFailure(e.Code) {
		msg += " (" + tokenHint + ")"
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// isAuthFailure reports whether the code means the token was rejected.
func isAuthFailure(code codes.Code) bool {
	return code == codes.Unauthenticated || code == codes.PermissionDenied
}

// MalformedInstanceError is returned for an instance that cannot be turned
// into an inventory host.
type MalformedInstanceError struct {
	Instance string
	Reason   string
}

func (e *MalformedInstanceError) Error() string {
	return fmt.Sprintf("instance %s: %s", e.Instance, e.Reason)
}
