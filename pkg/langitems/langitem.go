package langitems

// LangItem enumerates the known language items.  Each variant owns one slot
// in the LangItemTable.
type LangItem int

const (
	FreezeTrait LangItem = iota
	SendTrait
	SizedTrait

	DropTrait

	AddTrait
	SubTrait
	MulTrait
	DivTrait
	RemTrait
	NegTrait
	NotTrait
	BitXorTrait
	BitAndTrait
	BitOrTrait
	ShlTrait
	ShrTrait
	IndexTrait

	EqTrait
	OrdTrait

	StrEqFn
	UniqStrEqFn
	FailFn
	FailBoundsCheckFn
	ExchangeMallocFn
	ClosureExchangeMallocFn
	ExchangeFreeFn
	MallocFn
	FreeFn
	BorrowAsImmFn
	BorrowAsMutFn
	ReturnToMutFn
	CheckNotBorrowedFn
	StrDupUniqFn
	RecordBorrowFn
	UnrecordBorrowFn

	StartFn

	TyDescStruct
	TyVisitorTrait
	OpaqueStruct

	EventLoopFactory

	// NumLangItems must remain the last entry.
	NumLangItems
)

// itemNames is the catalog: the 1:1 association between slots and marker
// names.  Adding a language item means adding a constant above, its name
// here, and a typed accessor on LangItemTable; nothing else needs to change.
var itemNames = [NumLangItems]string{
	FreezeTrait: "freeze",
	SendTrait:   "send",
	SizedTrait:  "sized",

	DropTrait: "drop",

	AddTrait:    "add",
	SubTrait:    "sub",
	MulTrait:    "mul",
	DivTrait:    "div",
	RemTrait:    "rem",
	NegTrait:    "neg",
	NotTrait:    "not",
	BitXorTrait: "bitxor",
	BitAndTrait: "bitand",
	BitOrTrait:  "bitor",
	ShlTrait:    "shl",
	ShrTrait:    "shr",
	IndexTrait:  "index",

	EqTrait:  "eq",
	OrdTrait: "ord",

	StrEqFn:                 "str_eq",
	UniqStrEqFn:             "uniq_str_eq",
	FailFn:                  "fail_",
	FailBoundsCheckFn:       "fail_bounds_check",
	ExchangeMallocFn:        "exchange_malloc",
	ClosureExchangeMallocFn: "closure_exchange_malloc",
	ExchangeFreeFn:          "exchange_free",
	MallocFn:                "malloc",
	FreeFn:                  "free",
	BorrowAsImmFn:           "borrow_as_imm",
	BorrowAsMutFn:           "borrow_as_mut",
	ReturnToMutFn:           "return_to_mut",
	CheckNotBorrowedFn:      "check_not_borrowed",
	StrDupUniqFn:            "strdup_uniq",
	RecordBorrowFn:          "record_borrow",
	UnrecordBorrowFn:        "unrecord_borrow",

	StartFn: "start",

	TyDescStruct:   "ty_desc",
	TyVisitorTrait: "ty_visitor",
	OpaqueStruct:   "opaque",

	EventLoopFactory: "event_loop_factory",
}

// itemIndex is the inverse of itemNames, for marker-name lookup during
// collection.
var itemIndex = func() map[string]LangItem {
	index := make(map[string]LangItem, NumLangItems)
	for i, name := range itemNames {
		index[name] = LangItem(i)
	}
	return index
}()

// Name returns the marker name of the item, or "???" if the value is out of
// range.
func (it LangItem) Name() string {
	if it < 0 || it >= NumLangItems {
		return "???"
	}
	return itemNames[it]
}

// String implements fmt.Stringer.
func (it LangItem) String() string {
	return it.Name()
}

// LookupItem returns the language item with the given marker name.
func LookupItem(name string) (LangItem, bool) {
	it, ok := itemIndex[name]
	return it, ok
}
