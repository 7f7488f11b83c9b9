// Package cstore tracks the dependency crates of a compilation after the
// crate loader has brought their metadata into memory.  Only the slice of
// metadata that post-load passes consume lives here; decoding the on-disk
// metadata format is the loader's business.
package cstore

import (
	"fmt"

	"github.com/fernlang/fernc/pkg/ast"
)

// LangItemEntry is one row of a dependency crate's exported language-item
// table: the slot it claims and the node within that crate that fills it.
type LangItemEntry struct {
	Slot int
	Node ast.NodeID
}

// Crate is the loaded metadata of one statically linked dependency.
type Crate struct {
	// Num is the crate number assigned by the loader.  Never LocalCrate.
	Num ast.CrateNum
	// Name is the declared name of the crate, for diagnostics.
	Name string
	// LangItems is the crate's exported language-item table, computed when
	// the crate itself was compiled.
	LangItems []LangItemEntry
}

// Store holds all loaded dependency crates, in link order.
type Store struct {
	crates []*Crate
	byNum  map[ast.CrateNum]*Crate
}

func NewStore() *Store {
	return &Store{byNum: make(map[ast.CrateNum]*Crate)}
}

// AddCrate records a loaded crate.  It is an error to add two crates with
// the same crate number, or to claim the local crate's number.
func (s *Store) AddCrate(crate *Crate) error {
	if crate.Num == ast.LocalCrate {
		return fmt.Errorf("crate %q: crate number %d is reserved for the local crate", crate.Name, crate.Num)
	}
	if existing, ok := s.byNum[crate.Num]; ok {
		return fmt.Errorf("crate number %d already assigned to %q", crate.Num, existing.Name)
	}
	s.byNum[crate.Num] = crate
	s.crates = append(s.crates, crate)
	return nil
}

// GetCrate returns the crate with the given number, if loaded.
func (s *Store) GetCrate(num ast.CrateNum) (*Crate, bool) {
	crate, ok := s.byNum[num]
	return crate, ok
}

// EachCrate visits every loaded crate in link order.  The callback returns
// false to stop the iteration early.
func (s *Store) EachCrate(fn func(*Crate) bool) {
	for _, crate := range s.crates {
		if !fn(crate) {
			return
		}
	}
}

// Len returns the number of loaded crates.
func (s *Store) Len() int {
	return len(s.crates)
}
