package codec

import (
	"github.com/beevik/etree"

	"github.com/uddiwire/uddi/pkg/types"
	"github.com/uddiwire/uddi/pkg/xmltree"
)

// OneField is an optional singular nested entity.
type OneField[T, S any] struct {
	codec    Codec[S]
	ref      func(*T) **S
	override func(*S)
}

// One declares a singular child decoded and encoded with c. Only the first
// matching child is decoded; a missing child leaves the field nil.
func One[T, S any](c Codec[S], ref func(*T) **S) *OneField[T, S] {
	return &OneField[T, S]{codec: c, ref: ref}
}

// Override installs a hook applied to the decoded child and to a copy of
// the child before it is encoded, for constraints the enclosing entity
// places on a reusable nested entity.
func (f *OneField[T, S]) Override(fn func(*S)) *OneField[T, S] {
	f.override = fn
	return f
}

func (f *OneField[T, S]) decode(env *Env, el *etree.Element, v *T) error {
	kids := env.Children(el, f.codec.Tag())
	if len(kids) == 0 {
		*f.ref(v) = nil
		return nil
	}
	child, err := f.codec.Decode(env, kids[0])
	if err != nil {
		return err
	}
	if f.override != nil {
		f.override(child)
	}
	*f.ref(v) = child
	return nil
}

func (f *OneField[T, S]) encode(env *Env, v *T, parent *etree.Element) {
	child := *f.ref(v)
	if child == nil {
		return
	}
	if f.override != nil {
		c := *child
		f.override(&c)
		child = &c
	}
	f.codec.Encode(env, child, parent)
}

// ManyField is a repeated nested entity.
type ManyField[T any, S types.Equaler[S]] struct {
	codec Codec[S]
	ref   func(*T) *types.List[S]
}

// Many declares a repeated child decoded in document order and encoded in
// container order.
func Many[T any, S types.Equaler[S]](c Codec[S], ref func(*T) *types.List[S]) *ManyField[T, S] {
	return &ManyField[T, S]{codec: c, ref: ref}
}

func (f *ManyField[T, S]) decode(env *Env, el *etree.Element, v *T) error {
	kids := env.Children(el, f.codec.Tag())
	items := make(types.List[S], 0, len(kids))
	for _, kid := range kids {
		item, err := f.codec.Decode(env, kid)
		if err != nil {
			return err
		}
		items = append(items, *item)
	}
	*f.ref(v) = items
	return nil
}

func (f *ManyField[T, S]) encode(env *Env, v *T, parent *etree.Element) {
	items := *f.ref(v)
	for i := range items {
		f.codec.Encode(env, &items[i], parent)
	}
}

// TextChildField is a child element holding only text, such as a key or
// an authentication token.
type TextChildField[T any] struct {
	element string
	ref     func(*T) *types.String
}

// TextChild declares a singular text-only child. A missing child decodes as
// None; a present value is always encoded, even when empty.
func TextChild[T any](element string, ref func(*T) *types.String) *TextChildField[T] {
	return &TextChildField[T]{element: element, ref: ref}
}

func (f *TextChildField[T]) decode(env *Env, el *etree.Element, v *T) error {
	kids := env.Children(el, f.element)
	if len(kids) == 0 {
		*f.ref(v) = types.None()
		return nil
	}
	if err := env.Check(kids[0]); err != nil {
		return err
	}
	*f.ref(v) = types.Some(xmltree.Text(kids[0]))
	return nil
}

func (f *TextChildField[T]) encode(env *Env, v *T, parent *etree.Element) {
	s, ok := f.ref(v).Get()
	if !ok {
		return
	}
	el := env.Create(parent, f.element)
	if s != "" {
		xmltree.CreateText(el, s)
	}
}

// TextChildrenField is a repeated text-only child.
type TextChildrenField[T any] struct {
	element string
	ref     func(*T) *[]string
}

func TextChildren[T any](element string, ref func(*T) *[]string) *TextChildrenField[T] {
	return &TextChildrenField[T]{element: element, ref: ref}
}

func (f *TextChildrenField[T]) decode(env *Env, el *etree.Element, v *T) error {
	kids := env.Children(el, f.element)
	values := make([]string, 0, len(kids))
	for _, kid := range kids {
		if err := env.Check(kid); err != nil {
			return err
		}
		values = append(values, xmltree.Text(kid))
	}
	*f.ref(v) = values
	return nil
}

func (f *TextChildrenField[T]) encode(env *Env, v *T, parent *etree.Element) {
	for _, s := range *f.ref(v) {
		el := env.Create(parent, f.element)
		if s != "" {
			xmltree.CreateText(el, s)
		}
	}
}
