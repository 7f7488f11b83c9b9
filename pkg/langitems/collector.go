package langitems

import (
	"errors"

	"github.com/fernlang/fernc/pkg/ast"
	"github.com/fernlang/fernc/pkg/session"
)

// Collector accumulates language-item registrations from the local crate
// and from dependency metadata, then freezes them into a LangItemTable.
// Slots only go from empty to filled: re-registering the same definition is
// a no-op, and a different definition for a filled slot records a
// DuplicateLangItemError without disturbing the first registration.
// Collection keeps going past duplicates so every conflict is reported in
// one pass.
type Collector struct {
	sess  *session.Session
	items [NumLangItems]*ast.DefID
	errs  []error
}

func NewCollector(sess *session.Session) *Collector {
	return &Collector{sess: sess}
}

func (c *Collector) collectItem(it LangItem, id ast.DefID) {
	if existing := c.items[it]; existing != nil {
		if *existing == id {
			return
		}
		err := &DuplicateLangItemError{Item: it, First: *existing, Second: id}
		c.errs = append(c.errs, err)
		c.sess.Err(err)
		return
	}
	c.items[it] = &id
}

// Finish freezes the collected registrations.  If any duplicate was
// recorded, the joined errors are returned instead and no table is
// produced.  The collector must not be used again after Finish.
func (c *Collector) Finish() (*LangItemTable, error) {
	if len(c.errs) > 0 {
		return nil, errors.Join(c.errs...)
	}
	return &LangItemTable{items: c.items}, nil
}
