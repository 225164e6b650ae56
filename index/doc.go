// Package index implements the ordered key->value index: an in-memory,
// node-capacity-parameterised search tree (the "lookup tree") supporting
// ordered insertion with duplicate rejection, leaf/internal splits, anchor
// promotion to parents, and root promotion. It does not support deletion,
// range iteration, or rebalancing-on-delete.
//
// Tree is not safe for concurrent use. A caller needing concurrent access
// must provide its own external synchronization.
package index
