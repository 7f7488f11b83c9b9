package ast

// Attribute is a key/value pair attached to an item, e.g. `#[lang = "add"]`.
// Attribute syntax and parsing are owned by the parser; consumers only see
// the extracted name/value form.
type Attribute struct {
	Name  string
	Value string
}
