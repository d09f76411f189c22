// Package service orchestrates transaction execution and entity lookup.
//
// Service selects a strategy per operation, executes it, records the
// resulting transaction in an append-only history, and fans the outcome out
// to registered observers in registration order. A failed execution is
// returned to the caller unchanged: history and observers are untouched.
//
// Directory is the keyed in-memory store for users and accounts that the
// transaction operations resolve entities from.
package service
