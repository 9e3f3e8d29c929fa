package models

import (
	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/types"
)

const langAttr = "xml:lang"

// Name is a human readable name with an optional xml:lang locale.
type Name struct {
	Text types.String
	Lang types.String
}

func NewName(text string) *Name {
	return &Name{Text: types.Some(text)}
}

// NewLocalizedName returns a Name in the given locale.
func NewLocalizedName(text, lang string) *Name {
	return &Name{Text: types.Some(text), Lang: types.Some(lang)}
}

func (n Name) Equal(o Name) bool {
	return n.Text.Equal(o.Text) && n.Lang.Equal(o.Lang)
}

// Description is a locale-tagged free text description.
type Description struct {
	Text types.String
	Lang types.String
}

func NewDescription(text string) Description {
	return Description{Text: types.Some(text)}
}

func NewLocalizedDescription(text, lang string) Description {
	return Description{Text: types.Some(text), Lang: types.Some(lang)}
}

func (d Description) Equal(o Description) bool {
	return d.Text.Equal(o.Text) && d.Lang.Equal(o.Lang)
}

// OverviewURL points at a document describing a technical model.
type OverviewURL struct {
	Text types.String
}

func NewOverviewURL(url string) *OverviewURL {
	return &OverviewURL{Text: types.Some(url)}
}

func (u OverviewURL) Equal(o OverviewURL) bool {
	return u.Text.Equal(o.Text)
}

var NameCodec codec.Codec[Name] = &codec.Descriptor[Name]{
	Element: "name",
	Attrs: []codec.Attr[Name]{
		{Name: langAttr, Ref: func(n *Name) *types.String { return &n.Lang }},
	},
	Text: func(n *Name) *types.String { return &n.Text },
}

var DescriptionCodec codec.Codec[Description] = &codec.Descriptor[Description]{
	Element: "description",
	Attrs: []codec.Attr[Description]{
		{Name: langAttr, Ref: func(d *Description) *types.String { return &d.Lang }},
	},
	Text: func(d *Description) *types.String { return &d.Text },
}

var OverviewURLCodec codec.Codec[OverviewURL] = &codec.Descriptor[OverviewURL]{
	Element: "overviewURL",
	Text:    func(u *OverviewURL) *types.String { return &u.Text },
}

// withoutLang strips the locale from names whose schema type has none.
func withoutLang(n *Name) {
	n.Lang = types.None()
}
