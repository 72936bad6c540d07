// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

// Package api provides the HTTP surface of the recommendation service:
// Chi routing, request validation and the standardized response
// envelope shared by all endpoints.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/solace-labs/solace/internal/logging"
)

// APIResponse is the response wrapper used by every endpoint.
type APIResponse struct {
	// Status is "success" or "error".
	Status string `json:"status"`

	// Data is the payload; null on error.
	Data interface{} `json:"data,omitempty"`

	// Error holds error details; null on success.
	Error *APIError `json:"error,omitempty"`

	// Metadata carries timing and tracing information.
	Metadata Metadata `json:"metadata"`
}

// APIError is the error half of the envelope.
type APIError struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable message.
	Message string `json:"message"`

	// Details carries structured error context, if any.
	Details interface{} `json:"details,omitempty"`
}

// Metadata is attached to every response.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error codes used across handlers.
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeCatalogLoad      = "CATALOG_LOAD_ERROR"
	ErrCodeRecommendation   = "RECOMMENDATION_ERROR"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         = "NOT_FOUND"
)

// respondJSON writes a success envelope.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeEnvelope(w, r, status, &APIResponse{
		Status: "success",
		Data:   data,
	})
}

// respondError writes an error envelope. details may be nil.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}) {
	writeEnvelope(w, r, status, &APIResponse{
		Status: "error",
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, resp *APIResponse) {
	resp.Metadata = Metadata{
		Timestamp: time.Now(),
		RequestID: logging.RequestIDFromContext(r.Context()),
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
