// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and read the tables directly, returning read
// models shaped for the API: orders always come with their driver joined.
package queries
