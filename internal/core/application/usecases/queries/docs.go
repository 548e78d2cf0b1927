// Package queries contains the read side of the application.
// Query handlers never open a unit of work; they read through small lister
// interfaces so the same handler serves the PostgreSQL and in-memory stores.
// The response types double as the HTTP read models for command results.
package queries
