package models

import (
	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/types"
)

// KeyedReference is a name/value pair qualified by the tModel defining it.
//
// keyName is read with the Specified convention: a document that omits it
// decodes as None, unlike tModelKey and keyValue which decode as "".
type KeyedReference struct {
	TModelKey types.String
	KeyName   types.String
	KeyValue  types.String
}

func NewKeyedReference(tModelKey, keyName, keyValue string) KeyedReference {
	return KeyedReference{
		TModelKey: types.Some(tModelKey),
		KeyName:   types.Some(keyName),
		KeyValue:  types.Some(keyValue),
	}
}

func (r KeyedReference) Equal(o KeyedReference) bool {
	return r.TModelKey.Equal(o.TModelKey) &&
		r.KeyName.Equal(o.KeyName) &&
		r.KeyValue.Equal(o.KeyValue)
}

// IdentifierBag groups identifiers such as D-U-N-S numbers.
type IdentifierBag struct {
	KeyedReferences types.List[KeyedReference]
}

func (b IdentifierBag) Equal(o IdentifierBag) bool {
	return b.KeyedReferences.Equal(o.KeyedReferences)
}

// CategoryBag groups taxonomy classifications.
type CategoryBag struct {
	KeyedReferences types.List[KeyedReference]
}

func (b CategoryBag) Equal(o CategoryBag) bool {
	return b.KeyedReferences.Equal(o.KeyedReferences)
}

var KeyedReferenceCodec codec.Codec[KeyedReference] = &codec.Descriptor[KeyedReference]{
	Element: "keyedReference",
	Attrs: []codec.Attr[KeyedReference]{
		{Name: "tModelKey", Ref: func(r *KeyedReference) *types.String { return &r.TModelKey }},
		{Name: "keyName", Mode: codec.Specified, Ref: func(r *KeyedReference) *types.String { return &r.KeyName }},
		{Name: "keyValue", Ref: func(r *KeyedReference) *types.String { return &r.KeyValue }},
	},
}

var IdentifierBagCodec codec.Codec[IdentifierBag] = &codec.Descriptor[IdentifierBag]{
	Element: "identifierBag",
	Fields: []codec.Field[IdentifierBag]{
		codec.Many(KeyedReferenceCodec, func(b *IdentifierBag) *types.List[KeyedReference] { return &b.KeyedReferences }),
	},
}

var CategoryBagCodec codec.Codec[CategoryBag] = &codec.Descriptor[CategoryBag]{
	Element: "categoryBag",
	Fields: []codec.Field[CategoryBag]{
		codec.Many(KeyedReferenceCodec, func(b *CategoryBag) *types.List[KeyedReference] { return &b.KeyedReferences }),
	},
}
