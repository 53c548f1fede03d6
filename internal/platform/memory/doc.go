// Package memory provides the in-memory store implementations.
//
// Each store guards its map with a sync.RWMutex held across the whole
// check-then-act sequence of every operation, so single-store operations
// are atomic with respect to other callers. Entities are stored and
// returned by copy: a caller mutating a returned entity cannot change
// stored state without going back through Update.
//
// The stores are volatile by design; nothing survives a process restart.
package memory
