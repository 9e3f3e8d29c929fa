package models

import (
	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/types"
)

// PublisherAssertion relates two business entities through a keyed reference.
type PublisherAssertion struct {
	FromKey        types.String
	ToKey          types.String
	KeyedReference *KeyedReference
}

// NewPublisherAssertion requires all three parts of the assertion.
func NewPublisherAssertion(fromKey, toKey string, ref KeyedReference) *PublisherAssertion {
	return &PublisherAssertion{
		FromKey:        types.Some(fromKey),
		ToKey:          types.Some(toKey),
		KeyedReference: &ref,
	}
}

func (a PublisherAssertion) Equal(o PublisherAssertion) bool {
	return a.FromKey.Equal(o.FromKey) &&
		a.ToKey.Equal(o.ToKey) &&
		types.PtrEqual(a.KeyedReference, o.KeyedReference)
}

var PublisherAssertionCodec codec.Codec[PublisherAssertion] = &codec.Descriptor[PublisherAssertion]{
	Element: "publisherAssertion",
	Fields: []codec.Field[PublisherAssertion]{
		codec.TextChild("fromKey", func(a *PublisherAssertion) *types.String { return &a.FromKey }),
		codec.TextChild("toKey", func(a *PublisherAssertion) *types.String { return &a.ToKey }),
		codec.One(KeyedReferenceCodec, func(a *PublisherAssertion) **KeyedReference { return &a.KeyedReference }),
	},
}
