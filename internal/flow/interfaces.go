package flow

import "heartnote/internal/dom"

// Surface is what the greeting draws on. Operations naming an element that
// does not exist must be no-ops; CreateAndAppend returns "" in that case.
type Surface interface {
	Exists(id string) bool
	Activate(id string)
	Deactivate(id string)
	SetText(id, text string)
	SetAttribute(id, key, value string)
	SetClass(id, class string, on bool)
	CreateAndAppend(parent string, kind dom.Kind) string
	Remove(id string)
	ClearChildren(parent string)
}

var _ Surface = (*dom.Document)(nil)
