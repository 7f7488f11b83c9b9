package langitems

import "fmt"

// MissingLangItemError is returned by LangItemTable.Require when a pass
// needs a language item that no linked library declared.  Whether that is
// fatal is the caller's call; it usually is, since it means the supporting
// library is incomplete or mismatched.
type MissingLangItemError struct {
	Item LangItem
}

func (e *MissingLangItemError) Error() string {
	return fmt.Sprintf("requires `%s` language item", e.Item.Name())
}
