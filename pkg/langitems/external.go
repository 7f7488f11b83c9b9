package langitems

import (
	"github.com/fernlang/fernc/pkg/ast"
	"github.com/fernlang/fernc/pkg/cstore"
)

// CollectExternal merges the exported language-item table of every loaded
// dependency crate, in link order.  Each dependency resolved its own table
// when it was compiled; this pass is how an item declared in the runtime
// library becomes visible when compiling an unrelated downstream crate.
func (c *Collector) CollectExternal(store *cstore.Store) {
	store.EachCrate(func(crate *cstore.Crate) bool {
		for _, entry := range crate.LangItems {
			// A newer dependency may export slots this compiler does not
			// have.  Skip them rather than index out of range.
			if entry.Slot < 0 || entry.Slot >= int(NumLangItems) {
				c.sess.Warnf("crate %q exports unknown language item slot %d", crate.Name, entry.Slot)
				continue
			}
			c.collectItem(LangItem(entry.Slot), ast.DefID{Crate: crate.Num, Node: entry.Node})
		}
		return true
	})
}
