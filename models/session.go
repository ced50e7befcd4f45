// SPDX-License-Identifier: Apache-2.0

package models

// Session is the transient reference to the currently authenticated account.
// It lives only in the volatile store for the lifetime of the process; there
// is at most one active session at a time.
type Session struct {
	// UserID is the ID of the account this session belongs to.
	UserID string `json:"user_id"`

	// Username is a denormalized copy of the account's username, kept so the
	// UI can greet the user without a second account lookup.
	Username string `json:"username"`

	// Token is the signed JWT backing this session. Its expiry bounds the
	// session lifetime even within a single process run.
	Token string `json:"token"`
}
