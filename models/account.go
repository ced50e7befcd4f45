// SPDX-License-Identifier: Apache-2.0

package models

// Account represents a registered user of the application.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// ID is the unique identifier of the account, assigned at registration.
	ID string `json:"id"`

	// Username is the short unique handle used for login.
	// Uniqueness is checked case-insensitively across the account collection.
	Username string `json:"username"`

	// Email is the unique e-mail address of the account, stored lowercased.
	Email string `json:"email"`

	// PasswordDigest is the bcrypt hash of the account password.
	// It MUST be a derived value, never plaintext, and is excluded from JSON
	// only when accounts leave the persistence layer.
	PasswordDigest string `json:"password_digest"`

	// FullName is the display name of the account holder.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name"`
}
