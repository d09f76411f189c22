// Package ledger defines the banking entities and typed domain errors.
//
// Core types:
//   - User and Account are plain data holders with validity predicates.
//   - Transaction records a single balance mutation with a kind-dependent
//     account shape (deposit: destination only; withdraw: source only;
//     transfer kinds: both, distinct).
//
// Entities are produced by the NewUser/NewAccount constructors, which
// validate input and reject bad data with typed errors.
package ledger
