/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package clevercloud

import "fmt"

// ResponseError is the error body the PaaS API returns alongside a non-2xx status.
type ResponseError struct {
	ID      uint32 `json:"id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// StatusError wraps a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Body       ResponseError
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("clevercloud: request failed with status %d: %s", e.StatusCode, e.Body.Message)
}

// NotFound reports whether err represents an HTTP 404 from the PaaS API — the
// recoverable signal used throughout the add-on adoption flow.
func NotFound(err error) bool {
	statusErr, ok := err.(*StatusError)
	return ok && statusErr.StatusCode == 404
}

// RequestError distinguishes the stage at which a client call failed.
type RequestError struct {
	Stage string // "build", "transport", "read-body", "marshal", "unmarshal"
	Err   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("clevercloud: %s failed: %v", e.Stage, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// SignerError distinguishes the stage at which request signing failed.
type SignerError struct {
	Stage string // "digest", "clock"
	Err   error
}

func (e *SignerError) Error() string {
	return fmt.Sprintf("clevercloud: signer %s failed: %v", e.Stage, e.Err)
}

func (e *SignerError) Unwrap() error {
	return e.Err
}
