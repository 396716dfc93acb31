// Package sqlerr specifically handles database driver errors.
//
// It normalizes errors coming out of the data layer into a DatabaseError
// carrying a stable code (P2000..P2034), and translates that code into the
// HTTP status and the sanitized message clients are allowed to see
// (e.g., a unique constraint violation becomes a "Bad Request").
package sqlerr
