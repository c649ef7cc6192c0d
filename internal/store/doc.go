// Package store provides durable SQLite storage for the transaction ledger.
//
// One table, one index. Every write is a single autocommitted statement;
// there are no multi-statement transactions, no retries, and no update
// operation (rows are inserted and deleted, never modified). Storage-engine
// errors propagate to the caller wrapped with operation context only.
package store
