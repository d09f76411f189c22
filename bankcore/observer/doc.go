// Package observer defines the transaction observer contract and the two
// built-in observers: an ordered audit log and a per-account notification
// center with an optional simulated email side channel.
//
// Observers are invoked synchronously, in registration order, after a
// transaction completes. The failure hook exists on the contract but the
// service layer never invokes it from its public operations; a failed
// execution surfaces to the caller as an error instead.
package observer
