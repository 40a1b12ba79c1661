// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	middleware.FieldErrorResponse(w, http.StatusBadRequest, "name", "name is required")
	middleware.ParseJSONBody(r, &req)

FieldErrorResponse includes the offending form field so clients can
surface the error inline and move focus to the field.

# Request Wrappers

WithLogging logs request start/completion with method, path and
duration. RequireAuth enforces Basic Auth against the Argon2id
reset-guard credentials and passes through when the guard is disabled.
CORS handles cross-origin and preflight requests.
*/
package middleware
