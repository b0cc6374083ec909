// Package canopy implements a persistent AVL-balanced ordered dictionary.
//
// Every node carries a balance tag recording which subtree is taller, and
// insertion threads a "subtree grew" signal back up the recursion so that at
// most one rotation per insert restores the height invariant. The structure
// is persistent: Insert and Update return a new tree handle and share every
// untouched subtree with the previous version, so old handles stay valid and
// may be read from multiple goroutines without locking.
//
// The dictionary grows only. There is no delete operation; a key, once
// inserted, can only have its value replaced.
//
// The base algorithm was described in an old book by Niklaus Wirth called
// Algorithms + Data Structures = Programs.
package canopy
