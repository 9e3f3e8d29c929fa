package models

import (
	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/types"
)

// TModel is a technical model: a reusable concept such as an interface
// specification or a taxonomy, identified by its key.
//
// Its name never carries a locale. Any xml:lang found on decode is
// dropped, and a locale set on Name is not encoded.
type TModel struct {
	Key            types.String
	Operator       types.String
	AuthorizedName types.String
	Name           *Name
	Descriptions   types.List[Description]
	OverviewDoc    *OverviewDoc
	IdentifierBag  *IdentifierBag
	CategoryBag    *CategoryBag
}

// NewTModel builds a tModel for a save request. An empty key asks the
// registry to assign one.
func NewTModel(key, name string) *TModel {
	return &TModel{
		Key:  types.Some(key),
		Name: NewName(name),
	}
}

func (t TModel) Equal(o TModel) bool {
	return t.Key.Equal(o.Key) &&
		t.Operator.Equal(o.Operator) &&
		t.AuthorizedName.Equal(o.AuthorizedName) &&
		types.PtrEqual(t.Name, o.Name) &&
		t.Descriptions.Equal(o.Descriptions) &&
		types.PtrEqual(t.OverviewDoc, o.OverviewDoc) &&
		types.PtrEqual(t.IdentifierBag, o.IdentifierBag) &&
		types.PtrEqual(t.CategoryBag, o.CategoryBag)
}

// NameText returns the name's text, or "" when unnamed.
func (t *TModel) NameText() string {
	if t.Name == nil {
		return ""
	}
	return t.Name.Text.Value()
}

// SetName replaces the name.
func (t *TModel) SetName(text string) {
	t.Name = NewName(text)
}

// DefaultDescription returns the primary-locale description, if any.
func (t *TModel) DefaultDescription() (Description, bool) {
	return t.Descriptions.Default()
}

func (t *TModel) SetDefaultDescription(d Description) {
	t.Descriptions.SetDefault(d)
}

func (t *TModel) AddDescription(d ...Description) {
	t.Descriptions.Append(d...)
}

// TModelCodec encodes attributes tModelKey, operator, authorizedName, then
// name, description*, overviewDoc, identifierBag and categoryBag in that order.
var TModelCodec codec.Codec[TModel] = &codec.Descriptor[TModel]{
	Element: "tModel",
	Attrs: []codec.Attr[TModel]{
		{Name: "tModelKey", Ref: func(t *TModel) *types.String { return &t.Key }},
		{Name: "operator", Ref: func(t *TModel) *types.String { return &t.Operator }},
		{Name: "authorizedName", Ref: func(t *TModel) *types.String { return &t.AuthorizedName }},
	},
	Fields: []codec.Field[TModel]{
		codec.One(NameCodec, func(t *TModel) **Name { return &t.Name }).Override(withoutLang),
		codec.Many(DescriptionCodec, func(t *TModel) *types.List[Description] { return &t.Descriptions }),
		codec.One(OverviewDocCodec, func(t *TModel) **OverviewDoc { return &t.OverviewDoc }),
		codec.One(IdentifierBagCodec, func(t *TModel) **IdentifierBag { return &t.IdentifierBag }),
		codec.One(CategoryBagCodec, func(t *TModel) **CategoryBag { return &t.CategoryBag }),
	},
}
