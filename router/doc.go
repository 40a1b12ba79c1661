// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ method patterns.

NewRouter wires the handlers to a ServeMux:

	mux := router.NewRouter(st, creds)

All routes are wrapped with request logging. POST /reset is
additionally wrapped with Basic Auth against the reset-guard
credentials; when creds is nil (no auth file) the guard is disabled
for local development.
*/
package router
