package models

import (
	"slices"

	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/types"
)

// FindQualifiers alter the default search behaviour of find calls,
// e.g. exactNameMatch or sortByNameAsc.
type FindQualifiers struct {
	Qualifiers []string
}

func (q FindQualifiers) Equal(o FindQualifiers) bool {
	return slices.Equal(q.Qualifiers, o.Qualifiers)
}

// FindTModel is the find_tModel inquiry.
type FindTModel struct {
	Generic        types.String
	MaxRows        types.String
	FindQualifiers *FindQualifiers
	Name           *Name
	IdentifierBag  *IdentifierBag
	CategoryBag    *CategoryBag
}

// NewFindTModel searches tModels by name prefix.
func NewFindTModel(name string) *FindTModel {
	return &FindTModel{Name: NewName(name)}
}

func (f FindTModel) Equal(o FindTModel) bool {
	return f.Generic.Equal(o.Generic) &&
		f.MaxRows.Equal(o.MaxRows) &&
		types.PtrEqual(f.FindQualifiers, o.FindQualifiers) &&
		types.PtrEqual(f.Name, o.Name) &&
		types.PtrEqual(f.IdentifierBag, o.IdentifierBag) &&
		types.PtrEqual(f.CategoryBag, o.CategoryBag)
}

// TModelInfo is a search hit: a key and a name.
type TModelInfo struct {
	Key  types.String
	Name *Name
}

func (i TModelInfo) Equal(o TModelInfo) bool {
	return i.Key.Equal(o.Key) && types.PtrEqual(i.Name, o.Name)
}

type TModelInfos struct {
	Infos types.List[TModelInfo]
}

func (i TModelInfos) Equal(o TModelInfos) bool {
	return i.Infos.Equal(o.Infos)
}

// TModelList answers find_tModel.
type TModelList struct {
	Generic     types.String
	Operator    types.String
	Truncated   types.String
	TModelInfos *TModelInfos
}

func (l TModelList) Equal(o TModelList) bool {
	return l.Generic.Equal(o.Generic) &&
		l.Operator.Equal(o.Operator) &&
		l.Truncated.Equal(o.Truncated) &&
		types.PtrEqual(l.TModelInfos, o.TModelInfos)
}

// Infos returns the search hits, or nil when the list carries none.
func (l *TModelList) Infos() types.List[TModelInfo] {
	if l.TModelInfos == nil {
		return nil
	}
	return l.TModelInfos.Infos
}

// GetTModelDetail is the get_tModelDetail inquiry.
type GetTModelDetail struct {
	Generic    types.String
	TModelKeys []string
}

func NewGetTModelDetail(keys ...string) *GetTModelDetail {
	return &GetTModelDetail{TModelKeys: keys}
}

func (g GetTModelDetail) Equal(o GetTModelDetail) bool {
	return g.Generic.Equal(o.Generic) && slices.Equal(g.TModelKeys, o.TModelKeys)
}

// TModelDetail answers get_tModelDetail and save_tModel.
type TModelDetail struct {
	Generic   types.String
	Operator  types.String
	Truncated types.String
	TModels   types.List[TModel]
}

func (d TModelDetail) Equal(o TModelDetail) bool {
	return d.Generic.Equal(o.Generic) &&
		d.Operator.Equal(o.Operator) &&
		d.Truncated.Equal(o.Truncated) &&
		d.TModels.Equal(o.TModels)
}

// Lookup returns the tModel with the given key, if present.
func (d *TModelDetail) Lookup(key string) (*TModel, bool) {
	for i := range d.TModels {
		if d.TModels[i].Key.Value() == key {
			return &d.TModels[i], true
		}
	}
	return nil, false
}

var FindQualifiersCodec codec.Codec[FindQualifiers] = &codec.Descriptor[FindQualifiers]{
	Element: "findQualifiers",
	Fields: []codec.Field[FindQualifiers]{
		codec.TextChildren("findQualifier", func(q *FindQualifiers) *[]string { return &q.Qualifiers }),
	},
}

var FindTModelCodec codec.Codec[FindTModel] = &codec.Descriptor[FindTModel]{
	Element: "find_tModel",
	Generic: func(f *FindTModel) *types.String { return &f.Generic },
	Attrs: []codec.Attr[FindTModel]{
		{Name: "maxRows", Mode: codec.Specified, Ref: func(f *FindTModel) *types.String { return &f.MaxRows }},
	},
	Fields: []codec.Field[FindTModel]{
		codec.One(FindQualifiersCodec, func(f *FindTModel) **FindQualifiers { return &f.FindQualifiers }),
		codec.One(NameCodec, func(f *FindTModel) **Name { return &f.Name }).Override(withoutLang),
		codec.One(IdentifierBagCodec, func(f *FindTModel) **IdentifierBag { return &f.IdentifierBag }),
		codec.One(CategoryBagCodec, func(f *FindTModel) **CategoryBag { return &f.CategoryBag }),
	},
}

var TModelInfoCodec codec.Codec[TModelInfo] = &codec.Descriptor[TModelInfo]{
	Element: "tModelInfo",
	Attrs: []codec.Attr[TModelInfo]{
		{Name: "tModelKey", Ref: func(i *TModelInfo) *types.String { return &i.Key }},
	},
	Fields: []codec.Field[TModelInfo]{
		codec.One(NameCodec, func(i *TModelInfo) **Name { return &i.Name }).Override(withoutLang),
	},
}

var TModelInfosCodec codec.Codec[TModelInfos] = &codec.Descriptor[TModelInfos]{
	Element: "tModelInfos",
	Fields: []codec.Field[TModelInfos]{
		codec.Many(TModelInfoCodec, func(i *TModelInfos) *types.List[TModelInfo] { return &i.Infos }),
	},
}

var TModelListCodec codec.Codec[TModelList] = &codec.Descriptor[TModelList]{
	Element: "tModelList",
	Generic: func(l *TModelList) *types.String { return &l.Generic },
	Attrs: []codec.Attr[TModelList]{
		{Name: "operator", Ref: func(l *TModelList) *types.String { return &l.Operator }},
		{Name: "truncated", Mode: codec.Specified, Ref: func(l *TModelList) *types.String { return &l.Truncated }},
	},
	Fields: []codec.Field[TModelList]{
		codec.One(TModelInfosCodec, func(l *TModelList) **TModelInfos { return &l.TModelInfos }),
	},
}

var GetTModelDetailCodec codec.Codec[GetTModelDetail] = &codec.Descriptor[GetTModelDetail]{
	Element: "get_tModelDetail",
	Generic: func(g *GetTModelDetail) *types.String { return &g.Generic },
	Fields: []codec.Field[GetTModelDetail]{
		codec.TextChildren("tModelKey", func(g *GetTModelDetail) *[]string { return &g.TModelKeys }),
	},
}

var TModelDetailCodec codec.Codec[TModelDetail] = &codec.Descriptor[TModelDetail]{
	Element: "tModelDetail",
	Generic: func(d *TModelDetail) *types.String { return &d.Generic },
	Attrs: []codec.Attr[TModelDetail]{
		{Name: "operator", Ref: func(d *TModelDetail) *types.String { return &d.Operator }},
		{Name: "truncated", Mode: codec.Specified, Ref: func(d *TModelDetail) *types.String { return &d.Truncated }},
	},
	Fields: []codec.Field[TModelDetail]{
		codec.Many(TModelCodec, func(d *TModelDetail) *types.List[TModel] { return &d.TModels }),
	},
}
