package langitems

import (
	"github.com/fernlang/fernc/pkg/ast"
)

// LangItemTable is the frozen result of collection: one optional definition
// identity per language item.  Tables are built by a Collector and are
// read-only from then on; they are shared by every downstream pass for the
// rest of the compilation.
type LangItemTable struct {
	items [NumLangItems]*ast.DefID
}

// Get returns the definition registered for the item, if any.
func (t *LangItemTable) Get(it LangItem) (ast.DefID, bool) {
	if it < 0 || it >= NumLangItems {
		return ast.DefID{}, false
	}
	if id := t.items[it]; id != nil {
		return *id, true
	}
	return ast.DefID{}, false
}

// GetByName returns the definition registered under the given marker name,
// if the name is in the catalog and its slot is filled.
func (t *LangItemTable) GetByName(name string) (ast.DefID, bool) {
	if it, ok := LookupItem(name); ok {
		return t.Get(it)
	}
	return ast.DefID{}, false
}

// Require returns the definition registered for the item, or a
// *MissingLangItemError if no library declared it.  Callers use Require at
// the point the item is actually needed; a program that never exercises a
// feature never pays for its missing hook.
func (t *LangItemTable) Require(it LangItem) (ast.DefID, error) {
	if id, ok := t.Get(it); ok {
		return id, nil
	}
	return ast.DefID{}, &MissingLangItemError{Item: it}
}

// BuiltinBoundKind reports which built-in bound, if any, the given
// definition stands for.  The set is small and fixed, so this is a plain
// equality check against the three bound-trait slots.
func (t *LangItemTable) BuiltinBoundKind(id ast.DefID) (BoundKind, bool) {
	if freeze, ok := t.FreezeTrait(); ok && freeze == id {
		return BoundFreeze, true
	}
	if send, ok := t.SendTrait(); ok && send == id {
		return BoundSend, true
	}
	if sized, ok := t.SizedTrait(); ok && sized == id {
		return BoundSized, true
	}
	return 0, false
}

func (t *LangItemTable) FreezeTrait() (ast.DefID, bool) {
	return t.Get(FreezeTrait)
}

func (t *LangItemTable) SendTrait() (ast.DefID, bool) {
	return t.Get(SendTrait)
}

func (t *LangItemTable) SizedTrait() (ast.DefID, bool) {
	return t.Get(SizedTrait)
}

func (t *LangItemTable) DropTrait() (ast.DefID, bool) {
	return t.Get(DropTrait)
}

func (t *LangItemTable) AddTrait() (ast.DefID, bool) {
	return t.Get(AddTrait)
}

func (t *LangItemTable) SubTrait() (ast.DefID, bool) {
	return t.Get(SubTrait)
}

func (t *LangItemTable) MulTrait() (ast.DefID, bool) {
	return t.Get(MulTrait)
}

func (t *LangItemTable) DivTrait() (ast.DefID, bool) {
	return t.Get(DivTrait)
}

func (t *LangItemTable) RemTrait() (ast.DefID, bool) {
	return t.Get(RemTrait)
}

func (t *LangItemTable) NegTrait() (ast.DefID, bool) {
	return t.Get(NegTrait)
}

func (t *LangItemTable) NotTrait() (ast.DefID, bool) {
	return t.Get(NotTrait)
}

func (t *LangItemTable) BitXorTrait() (ast.DefID, bool) {
	return t.Get(BitXorTrait)
}

func (t *LangItemTable) BitAndTrait() (ast.DefID, bool) {
	return t.Get(BitAndTrait)
}

func (t *LangItemTable) BitOrTrait() (ast.DefID, bool) {
	return t.Get(BitOrTrait)
}

func (t *LangItemTable) ShlTrait() (ast.DefID, bool) {
	return t.Get(ShlTrait)
}

func (t *LangItemTable) ShrTrait() (ast.DefID, bool) {
	return t.Get(ShrTrait)
}

func (t *LangItemTable) IndexTrait() (ast.DefID, bool) {
	return t.Get(IndexTrait)
}

func (t *LangItemTable) EqTrait() (ast.DefID, bool) {
	return t.Get(EqTrait)
}

func (t *LangItemTable) OrdTrait() (ast.DefID, bool) {
	return t.Get(OrdTrait)
}

func (t *LangItemTable) StrEqFn() (ast.DefID, bool) {
	return t.Get(StrEqFn)
}

func (t *LangItemTable) UniqStrEqFn() (ast.DefID, bool) {
	return t.Get(UniqStrEqFn)
}

func (t *LangItemTable) FailFn() (ast.DefID, bool) {
	return t.Get(FailFn)
}

func (t *LangItemTable) FailBoundsCheckFn() (ast.DefID, bool) {
	return t.Get(FailBoundsCheckFn)
}

func (t *LangItemTable) ExchangeMallocFn() (ast.DefID, bool) {
	return t.Get(ExchangeMallocFn)
}

func (t *LangItemTable) ClosureExchangeMallocFn() (ast.DefID, bool) {
	return t.Get(ClosureExchangeMallocFn)
}

func (t *LangItemTable) ExchangeFreeFn() (ast.DefID, bool) {
	return t.Get(ExchangeFreeFn)
}

func (t *LangItemTable) MallocFn() (ast.DefID, bool) {
	return t.Get(MallocFn)
}

func (t *LangItemTable) FreeFn() (ast.DefID, bool) {
	return t.Get(FreeFn)
}

func (t *LangItemTable) BorrowAsImmFn() (ast.DefID, bool) {
	return t.Get(BorrowAsImmFn)
}

func (t *LangItemTable) BorrowAsMutFn() (ast.DefID, bool) {
	return t.Get(BorrowAsMutFn)
}

func (t *LangItemTable) ReturnToMutFn() (ast.DefID, bool) {
	return t.Get(ReturnToMutFn)
}

func (t *LangItemTable) CheckNotBorrowedFn() (ast.DefID, bool) {
	return t.Get(CheckNotBorrowedFn)
}

func (t *LangItemTable) StrDupUniqFn() (ast.DefID, bool) {
	return t.Get(StrDupUniqFn)
}

func (t *LangItemTable) RecordBorrowFn() (ast.DefID, bool) {
	return t.Get(RecordBorrowFn)
}

func (t *LangItemTable) UnrecordBorrowFn() (ast.DefID, bool) {
	return t.Get(UnrecordBorrowFn)
}

func (t *LangItemTable) StartFn() (ast.DefID, bool) {
	return t.Get(StartFn)
}

func (t *LangItemTable) TyDesc() (ast.DefID, bool) {
	return t.Get(TyDescStruct)
}

func (t *LangItemTable) TyVisitor() (ast.DefID, bool) {
	return t.Get(TyVisitorTrait)
}

func (t *LangItemTable) Opaque() (ast.DefID, bool) {
	return t.Get(OpaqueStruct)
}

func (t *LangItemTable) EventLoopFactory() (ast.DefID, bool) {
	return t.Get(EventLoopFactory)
}
