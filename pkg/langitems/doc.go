// Package langitems detects language items.
//
// Language items are declarations that represent concepts intrinsic to the
// language itself, located by the `lang` marker attribute rather than by
// ordinary name resolution.  Examples are:
//
//   - traits that specify kinds, e.g. "freeze", "send";
//   - traits that represent operators, e.g. "add", "sub", "index";
//   - functions called by compiled code, e.g. "exchange_malloc", "fail_".
//
// These declarations live in the standard and runtime libraries, so their
// concrete identities have to be discovered at compile time.  Collection
// runs in two passes: a visitor over the crate under compilation, then a
// merge of every dependency crate's exported language-item table.  The
// result is a frozen LangItemTable the rest of the compiler queries.
package langitems
