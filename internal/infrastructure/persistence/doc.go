// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store RSA key pairs in SQLite or PostgreSQL.
package persistence
