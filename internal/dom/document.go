// Package dom is the in-memory rendering surface the greeting mutates. It
// keeps a tree of identified elements with text, attributes, classes and an
// active flag; the terminal view reads it back to draw each frame.
//
// Every operation that names an element which does not exist is a no-op.
package dom

import (
	"fmt"
	"sort"
)

type Kind string

const (
	KindRoot      Kind = "root"
	KindScreen    Kind = "screen"
	KindBlock     Kind = "block"
	KindText      Kind = "text"
	KindButton    Kind = "button"
	KindTapHeart  Kind = "tap-heart"
	KindBurst     Kind = "heart-burst"
	KindConfetti  Kind = "confetti"
	KindBgHeart   Kind = "bg-heart"
	KindContainer Kind = "container"
)

const RootID = "body"

type Element struct {
	ID       string
	Kind     Kind
	Parent   string
	Text     string
	Active   bool
	Attrs    map[string]string
	Classes  map[string]bool
	Children []string
}

func (e *Element) Attr(key string) string {
	if e == nil {
		return ""
	}
	return e.Attrs[key]
}

func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	return e.Classes[class]
}

// Document is not safe for concurrent use. The view owns it and every
// mutation happens on the UI event loop.
type Document struct {
	elems map[string]*Element
	seq   int
}

func New() *Document {
	d := &Document{elems: map[string]*Element{}}
	d.elems[RootID] = newElement(RootID, KindRoot, "")
	return d
}

func newElement(id string, kind Kind, parent string) *Element {
	return &Element{
		ID:      id,
		Kind:    kind,
		Parent:  parent,
		Attrs:   map[string]string{},
		Classes: map[string]bool{},
	}
}

// Define creates a named element under parent. Redefining an existing id or
// naming a missing parent returns false.
func (d *Document) Define(id, parent string, kind Kind) bool {
	if id == "" {
		return false
	}
	if _, ok := d.elems[id]; ok {
		return false
	}
	p, ok := d.elems[parent]
	if !ok {
		return false
	}
	d.elems[id] = newElement(id, kind, parent)
	p.Children = append(p.Children, id)
	return true
}

func (d *Document) Get(id string) *Element {
	return d.elems[id]
}

func (d *Document) Exists(id string) bool {
	_, ok := d.elems[id]
	return ok
}

func (d *Document) Activate(id string) {
	if e, ok := d.elems[id]; ok {
		e.Active = true
	}
}

func (d *Document) Deactivate(id string) {
	if e, ok := d.elems[id]; ok {
		e.Active = false
	}
}

func (d *Document) SetText(id, text string) {
	if e, ok := d.elems[id]; ok {
		e.Text = text
	}
}

func (d *Document) SetAttribute(id, key, value string) {
	e, ok := d.elems[id]
	if !ok {
		return
	}
	if value == "" {
		delete(e.Attrs, key)
		return
	}
	e.Attrs[key] = value
}

func (d *Document) SetClass(id, class string, on bool) {
	e, ok := d.elems[id]
	if !ok {
		return
	}
	if on {
		e.Classes[class] = true
		return
	}
	delete(e.Classes, class)
}

// CreateAndAppend adds an anonymous child of the given kind and returns its
// generated id, or "" when parent does not exist.
func (d *Document) CreateAndAppend(parent string, kind Kind) string {
	p, ok := d.elems[parent]
	if !ok {
		return ""
	}
	d.seq++
	id := fmt.Sprintf("%s-%d", kind, d.seq)
	d.elems[id] = newElement(id, kind, parent)
	p.Children = append(p.Children, id)
	return id
}

// Remove deletes the element and its whole subtree.
func (d *Document) Remove(id string) {
	e, ok := d.elems[id]
	if !ok || id == RootID {
		return
	}
	if p, ok := d.elems[e.Parent]; ok {
		for i, c := range p.Children {
			if c == id {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
	}
	d.drop(e)
}

func (d *Document) drop(e *Element) {
	for _, c := range e.Children {
		if child, ok := d.elems[c]; ok {
			d.drop(child)
		}
	}
	delete(d.elems, e.ID)
}

func (d *Document) ClearChildren(parent string) {
	p, ok := d.elems[parent]
	if !ok {
		return
	}
	for _, c := range p.Children {
		if child, ok := d.elems[c]; ok {
			d.drop(child)
		}
	}
	p.Children = nil
}

// Children returns the live child elements of parent in insertion order.
func (d *Document) Children(parent string) []*Element {
	p, ok := d.elems[parent]
	if !ok {
		return nil
	}
	out := make([]*Element, 0, len(p.Children))
	for _, c := range p.Children {
		if e, ok := d.elems[c]; ok {
			out = append(out, e)
		}
	}
	return out
}

// ActiveOf lists the ids of active elements of a kind, sorted.
func (d *Document) ActiveOf(kind Kind) []string {
	var ids []string
	for id, e := range d.elems {
		if e.Kind == kind && e.Active {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (d *Document) Len() int {
	return len(d.elems)
}
