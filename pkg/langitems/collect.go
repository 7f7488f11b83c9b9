package langitems

import (
	"github.com/fernlang/fernc/pkg/ast"
	"github.com/fernlang/fernc/pkg/cstore"
	"github.com/fernlang/fernc/pkg/session"
)

// CollectLanguageItems runs both collection passes and returns the frozen
// table.  Duplicate registrations have already been reported to the session
// by the time the error is returned; the caller aborts the compilation.
func CollectLanguageItems(sess *session.Session, crate *ast.Crate, store *cstore.Store) (*LangItemTable, error) {
	c := NewCollector(sess)
	c.CollectLocal(crate)
	c.CollectExternal(store)
	return c.Finish()
}
