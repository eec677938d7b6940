//
// Date: 2026-01-14
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Error types for the OAuth token lifecycle.
//

package auth

import "errors"

// ErrStateMismatch is returned when the state echoed in the OAuth callback
// does not match the nonce sent with the authorization request. It means the
// callback cannot be trusted and the flow was aborted.
var ErrStateMismatch = errors.New("state mismatch")

// AuthError wraps a failure in the authorization flow with the lifecycle
// step that produced it.
type AuthError struct {
	// Op is the step that failed: "callback", "exchange", "refresh", or
	// "persist".
	Op  string
	Err error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return "auth " + e.Op + ": " + e.Err.Error()
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// authErr builds an AuthError for the given lifecycle step.
func authErr(op string, err error) *AuthError {
	return &AuthError{Op: op, Err: err}
}
