package langitems

import (
	"fmt"

	"github.com/fernlang/fernc/pkg/ast"
)

// DuplicateLangItemError is recorded when two different definitions claim
// the same language item, whether both local, both external, or one of
// each.  The message carries the marker name, never the slot number, so a
// library author can find the offending declarations.
type DuplicateLangItemError struct {
	Item   LangItem
	First  ast.DefID
	Second ast.DefID
}

func (e *DuplicateLangItemError) Error() string {
	return fmt.Sprintf("duplicate entry for `%s` language item: %v and %v", e.Item.Name(), e.First, e.Second)
}
