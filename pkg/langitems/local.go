package langitems

import "github.com/fernlang/fernc/pkg/ast"

// langItemVisitor registers every marker-tagged item it sees.  Marker
// values the catalog does not know are ignored, not rejected: nothing stops
// other code from using the `lang` attribute for its own purposes, and a
// newer library may carry markers an older compiler has no slot for yet.
type langItemVisitor struct {
	collector *Collector
}

func (v *langItemVisitor) VisitItem(item *ast.Item) {
	value, ok := Extract(item.Attrs)
	if !ok {
		return
	}
	if it, ok := LookupItem(value); ok {
		v.collector.collectItem(it, ast.LocalDef(item.ID))
	}
}

// CollectLocal walks the crate under compilation and registers every item
// tagged with a known `lang` marker.
func (c *Collector) CollectLocal(crate *ast.Crate) {
	ast.Walk(&langItemVisitor{collector: c}, crate)
}
