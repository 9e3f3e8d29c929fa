// Package codec maps registry entities to and from namespace-qualified
// element trees.
//
// Each entity type is described once by a [Descriptor]: its element name,
// its attributes, its text content and its child fields in schema order.
// One generic engine interprets every descriptor, so decoding always checks
// for faults first and encoding always emits children in the declared order.
package codec

import (
	"github.com/beevik/etree"

	"github.com/uddiwire/uddi/pkg/types"
	"github.com/uddiwire/uddi/pkg/xmltree"
)

// Codec decodes an element into a *T and encodes a *T as a new child element.
type Codec[T any] interface {
	// Tag is the local element name, fixed per entity type.
	Tag() string
	// Decode fails only with a *fault.Error. Absent structure leaves fields
	// absent, and unknown children are ignored.
	Decode(env *Env, el *etree.Element) (*T, error)
	// Encode appends a new element for v as the last child of parent.
	Encode(env *Env, v *T, parent *etree.Element)
}

// AttrMode selects how an absent attribute is decoded.
type AttrMode int

const (
	// Lookup reads the attribute value directly; absence decodes as Some("").
	Lookup AttrMode = iota
	// Specified decodes absence as None; only attributes present in the
	// document produce a value.
	Specified
)

// Attr describes one attribute of an entity.
type Attr[T any] struct {
	Name string
	Mode AttrMode
	Ref  func(*T) *types.String
}

func (a Attr[T]) decode(el *etree.Element, v *T) {
	value, ok := xmltree.LookupAttr(el, a.Name)
	switch {
	case ok:
		*a.Ref(v) = types.Some(value)
	case a.Mode == Specified:
		*a.Ref(v) = types.None()
	default:
		*a.Ref(v) = types.Some("")
	}
}

func (a Attr[T]) encode(el *etree.Element, v *T) {
	if s := *a.Ref(v); !s.Blank() {
		el.CreateAttr(a.Name, s.Value())
	}
}

// Field is one child slot of an entity: a singular or repeated nested
// entity, or a text-only child element. Fields are built with One, Many,
// TextChild and TextChildren.
type Field[T any] interface {
	decode(env *Env, el *etree.Element, v *T) error
	encode(env *Env, v *T, parent *etree.Element)
}

// Descriptor is the declarative codec of one entity type.
type Descriptor[T any] struct {
	// Element is the local tag name.
	Element string
	// Generic, when set, points at the version marker of a top-level
	// message. An empty marker is encoded as the schema's generic version.
	Generic func(*T) *types.String
	Attrs   []Attr[T]
	// Text holds the element's own text content, for text-bearing entities.
	Text   func(*T) *types.String
	Fields []Field[T]
}

func (d *Descriptor[T]) Tag() string {
	return d.Element
}

func (d *Descriptor[T]) Decode(env *Env, el *etree.Element) (*T, error) {
	if err := env.Check(el); err != nil {
		return nil, err
	}

	v := new(T)
	if d.Generic != nil {
		*d.Generic(v) = types.Some(xmltree.Attr(el, genericAttr))
	}
	for _, a := range d.Attrs {
		a.decode(el, v)
	}
	if d.Text != nil {
		*d.Text(v) = types.Some(xmltree.Text(el))
	}
	for _, f := range d.Fields {
		if err := f.decode(env, el, v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (d *Descriptor[T]) Encode(env *Env, v *T, parent *etree.Element) {
	el := env.Create(parent, d.Element)
	if d.Generic != nil {
		generic := d.Generic(v).Value()
		if generic == "" {
			generic = env.Schema().Generic
		}
		el.CreateAttr(genericAttr, generic)
	}
	for _, a := range d.Attrs {
		a.encode(el, v)
	}
	if d.Text != nil {
		if text := *d.Text(v); !text.Blank() {
			xmltree.CreateText(el, text.Value())
		}
	}
	for _, f := range d.Fields {
		f.encode(env, v, el)
	}
}

const genericAttr = "generic"
