package langitems

import "github.com/fernlang/fernc/pkg/ast"

// MarkerAttrName is the reserved attribute that tags a declaration as
// filling a language-item role.
const MarkerAttrName = "lang"

// Extract returns the value of the first `lang` attribute in the list, if
// any.  Items without one are not language items.
func Extract(attrs []ast.Attribute) (string, bool) {
	for _, attr := range attrs {
		if attr.Name == MarkerAttrName {
			return attr.Value, true
		}
	}
	return "", false
}
