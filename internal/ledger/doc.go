// Package ledger provides the core transaction types for fintrack.
//
// This package contains type definitions and pure conversion helpers only.
// All other internal packages import ledger; ledger imports nothing internal.
// This ensures the domain model remains the foundational layer with no
// circular dependencies.
//
// Key design constraints:
//   - Amounts are decimal.Decimal, never raw floats in domain code
//   - Dates are civil dates: UTC midnight time.Time values
//   - A nil Description is the explicit "no description" marker,
//     distinct from an empty string
package ledger
