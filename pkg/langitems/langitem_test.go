package langitems_test

import (
	"testing"

	"github.com/fernlang/fernc/pkg/langitems"
)

func TestCatalogRoundTrip(t *testing.T) {
	seen := make(map[string]langitems.LangItem)
	for it := langitems.LangItem(0); it < langitems.NumLangItems; it++ {
		name := it.Name()
		if name == "" || name == "???" {
			t.Fatalf("slot %d has no name", it)
		}
		if prev, ok := seen[name]; ok {
			t.Fatalf("name %q assigned to both slot %d and slot %d", name, prev, it)
		}
		seen[name] = it

		got, ok := langitems.LookupItem(name)
		if !ok {
			t.Fatalf("LookupItem(%q) missed", name)
		}
		if got != it {
			t.Errorf("LookupItem(%q) = %d, want %d", name, got, it)
		}
	}
}

func TestLookupItem(t *testing.T) {
	for name, tc := range map[string]struct {
		name   string
		want   langitems.LangItem
		wantOK bool
	}{
		"bound trait": {name: "freeze", want: langitems.FreezeTrait, wantOK: true},
		"operator":    {name: "add", want: langitems.AddTrait, wantOK: true},
		"runtime fn":  {name: "exchange_malloc", want: langitems.ExchangeMallocFn, wantOK: true},
		"last slot":   {name: "event_loop_factory", want: langitems.EventLoopFactory, wantOK: true},
		"unknown":     {name: "not_a_real_item", wantOK: false},
		"empty":       {name: "", wantOK: false},
	} {
		t.Run(name, func(t *testing.T) {
			got, ok := langitems.LookupItem(tc.name)
			if ok != tc.wantOK {
				t.Fatalf("LookupItem(%q) ok = %v, want %v", tc.name, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("LookupItem(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestItemNameOutOfRange(t *testing.T) {
	if got := langitems.NumLangItems.Name(); got != "???" {
		t.Errorf("NumLangItems.Name() = %q, want ???", got)
	}
	if got := langitems.LangItem(-1).Name(); got != "???" {
		t.Errorf("LangItem(-1).Name() = %q, want ???", got)
	}
}

func TestCatalogCount(t *testing.T) {
	if langitems.NumLangItems != 40 {
		t.Errorf("NumLangItems = %d, want 40", langitems.NumLangItems)
	}
}
