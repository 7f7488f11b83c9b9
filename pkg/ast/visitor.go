package ast

// Visitor is implemented by passes that want to see every item in a crate.
type Visitor interface {
	VisitItem(item *Item)
}

// Walk visits every item in the crate exactly once, in preorder.
func Walk(v Visitor, crate *Crate) {
	for _, item := range crate.Items {
		WalkItem(v, item)
	}
}

// WalkItem visits the item and then its nested items, in preorder.
func WalkItem(v Visitor, item *Item) {
	v.VisitItem(item)
	for _, child := range item.Items {
		WalkItem(v, child)
	}
}
