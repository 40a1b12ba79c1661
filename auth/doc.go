// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides ID generation and the reset-guard credentials.

# ID Generation

GenerateID creates random hex identifiers:

	docID, err := auth.GenerateID(16) // 32 hex chars

# Reset Guard

The destructive reset endpoint is protected by Basic Auth backed by an
Argon2id password file (format: username:hash):

	creds, err := auth.LoadCredentials(cfg.AuthFile)

A missing auth file returns nil credentials and disables the guard;
this is intended for local development only and is logged loudly at
startup. The file is created with the hash-password subcommand, which
calls CreateAuthFile.

Password hashes use Argon2id with OWASP-recommended parameters and are
verified with constant-time comparisons.
*/
package auth
