// Package queries holds the read side of the service. Handlers run raw SQL
// through GORM against the tables the postgres adapters own and return flat
// views; they never load aggregates.
//
// Every handler except ListMenu checks the caller's capability with the
// ports.Authorizer before touching the database.
package queries
