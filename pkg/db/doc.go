// Package db connects to PostgreSQL with pgx and applies the embedded goose
// migrations. The database is optional and only backs session.PostgresStore,
// which keeps a visitor's chosen locale across requests.
package db
