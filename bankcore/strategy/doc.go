// Package strategy implements one self-contained algorithm per transaction
// kind.
//
// Core flow:
//   - Validate is a pure pre-check that never mutates balances.
//   - Execute re-validates, applies the balance mutation, and returns a
//     completed transaction or a typed ledger error.
//
// A new transaction kind is added by implementing Strategy; the service
// layer selects strategies at call sites.
package strategy
