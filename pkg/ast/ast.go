// Package ast holds the subset of the item-tree surface that post-parse
// passes consume: items with their attached attributes, definition
// identities, and a visitor over the tree.
package ast

// Item is a top-level or nested declaration in a crate.
type Item struct {
	// ID is the item's node id, unique within its crate.
	ID NodeID
	// Name is the declared name of the item.
	Name string
	// Attrs is the ordered list of attributes attached to the item.
	Attrs []Attribute
	// Items holds nested declarations, e.g. items declared inside a module.
	Items []*Item
}

// Crate is the root of a parsed crate's item tree.
type Crate struct {
	Name  string
	Items []*Item
}
