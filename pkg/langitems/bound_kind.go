package langitems

// BoundKind is one of the built-in capability bounds the type system treats
// specially.  The traits behind them are ordinary library declarations
// located through the language-item machinery.
type BoundKind int

const (
	BoundFreeze BoundKind = iota
	BoundSend
	BoundSized
)

// String implements fmt.Stringer.
func (k BoundKind) String() string {
	switch k {
	case BoundFreeze:
		return "freeze"
	case BoundSend:
		return "send"
	case BoundSized:
		return "sized"
	default:
		return "???"
	}
}
