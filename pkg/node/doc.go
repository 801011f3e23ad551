// Package node defines the compiled form of a chat template.
//
// A template compiles into a small immutable tree:
//
//	Literal      opaque formatted text, markup already applied
//	Sequence     ordered concatenation of children
//	Placeholder  a variable resolved at render time
//	Empty        present but intentionally blank
//
// A nil Node means "absent" (nothing configured) and is distinct from Empty.
// Trees are never mutated after construction, so a single tree may be
// rendered from any number of goroutines without synchronisation.
package node
