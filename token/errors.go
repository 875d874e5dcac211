/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors for token operations.
var (
	// ErrUnsupportedType indicates a token type with no synthesis rule.
	ErrUnsupportedType = errors.New("unsupported token type")

	// ErrMissingValue indicates a token is missing its $value.
	ErrMissingValue = errors.New("token missing $value")

	// ErrShapeMismatch indicates a value variant that does not match the token type.
	ErrShapeMismatch = errors.New("value shape mismatch")

	// ErrReferenceNotFound indicates a reference whose target does not exist.
	ErrReferenceNotFound = errors.New("referenced token not found")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrInvalidReference indicates a token reference is malformed.
	ErrInvalidReference = errors.New("invalid token reference")
)
