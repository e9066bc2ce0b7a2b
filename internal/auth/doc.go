// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

/*
Package auth provides identity and credential management for the
mentoring API.

Key Components:

  - TokenManager: issues and verifies HS256-signed bearer and refresh
    token pairs
  - CredentialStore: Badger-backed records for password hashes and
    per-user claims (the super-admin flag)
  - Identity: the sign-up, sign-in and token refresh service, with
    per-client throttling of credential checks
  - Authenticate: global middleware resolving the bearer token to a
    request principal

Error Semantics:

Verification failures always surface as invalid-token, credential
mismatches as incorrect-credentials, and malformed refresh requests as
improper-payload. None of these errors reveals whether the underlying
account exists.

Passwords are hashed with bcrypt and checked against a strength policy
before an account is created.
*/
package auth
