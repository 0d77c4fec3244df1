// Package retouch post-processes syntax trees produced by a cross-language
// source translator. A prioritized registry of rewrite rules is applied in
// batches, each batch driven to a fixpoint: every round recomputes semantic
// diagnostics for the current tree, collects candidate actions under an
// optional scope, and applies them in priority order until a round changes
// nothing. After all batches converge the result is reformatted.
//
// The engine guarantees termination through an optimistic change detector
// (the tree's modification marker) rather than structural diffing, and it
// tolerates rules invalidating each other's targets mid-round by forcing an
// extra recollection round whenever that happens.
package retouch
