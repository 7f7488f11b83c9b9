package ast

import "fmt"

// NodeID identifies a node within a single crate's item tree.  IDs are
// assigned by the parser and are stable for the lifetime of a compilation.
type NodeID uint32

// CrateNum identifies a crate within the build graph.  The crate currently
// being compiled is always LocalCrate; dependency crates are numbered by the
// crate loader in link order.
type CrateNum uint32

// LocalCrate is the crate number of the crate under compilation.
const LocalCrate CrateNum = 0

// DefID names a definition anywhere in the build graph: the crate it
// originates from plus its node within that crate.  Two DefIDs refer to the
// same definition iff both components are equal.
type DefID struct {
	Crate CrateNum
	Node  NodeID
}

// LocalDef returns the DefID for a node in the crate under compilation.
func LocalDef(node NodeID) DefID {
	return DefID{Crate: LocalCrate, Node: node}
}

// IsLocal reports whether the definition lives in the crate under compilation.
func (id DefID) IsLocal() bool {
	return id.Crate == LocalCrate
}

// String implements fmt.Stringer.
func (id DefID) String() string {
	return fmt.Sprintf("{crate=%d, node=%d}", id.Crate, id.Node)
}
