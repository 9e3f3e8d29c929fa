package models

import (
	"slices"

	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/types"
)

// GetAuthToken requests a publisher session token.
type GetAuthToken struct {
	Generic types.String
	UserID  types.String
	Cred    types.String
}

func NewGetAuthToken(userID, cred string) *GetAuthToken {
	return &GetAuthToken{UserID: types.Some(userID), Cred: types.Some(cred)}
}

func (g GetAuthToken) Equal(o GetAuthToken) bool {
	return g.Generic.Equal(o.Generic) && g.UserID.Equal(o.UserID) && g.Cred.Equal(o.Cred)
}

// AuthToken carries the authInfo string passed to publish calls.
type AuthToken struct {
	Generic  types.String
	Operator types.String
	AuthInfo types.String
}

func (a AuthToken) Equal(o AuthToken) bool {
	return a.Generic.Equal(o.Generic) && a.Operator.Equal(o.Operator) && a.AuthInfo.Equal(o.AuthInfo)
}

// DiscardAuthToken ends a publisher session.
type DiscardAuthToken struct {
	Generic  types.String
	AuthInfo types.String
}

func NewDiscardAuthToken(authInfo string) *DiscardAuthToken {
	return &DiscardAuthToken{AuthInfo: types.Some(authInfo)}
}

func (d DiscardAuthToken) Equal(o DiscardAuthToken) bool {
	return d.Generic.Equal(o.Generic) && d.AuthInfo.Equal(o.AuthInfo)
}

// SaveTModel registers or updates tModels.
type SaveTModel struct {
	Generic  types.String
	AuthInfo types.String
	TModels  types.List[TModel]
}

func NewSaveTModel(authInfo string, tModels ...TModel) *SaveTModel {
	return &SaveTModel{AuthInfo: types.Some(authInfo), TModels: tModels}
}

func (s SaveTModel) Equal(o SaveTModel) bool {
	return s.Generic.Equal(o.Generic) && s.AuthInfo.Equal(o.AuthInfo) && s.TModels.Equal(o.TModels)
}

// DeleteTModel hides tModels from find results.
type DeleteTModel struct {
	Generic    types.String
	AuthInfo   types.String
	TModelKeys []string
}

func NewDeleteTModel(authInfo string, keys ...string) *DeleteTModel {
	return &DeleteTModel{AuthInfo: types.Some(authInfo), TModelKeys: keys}
}

func (d DeleteTModel) Equal(o DeleteTModel) bool {
	return d.Generic.Equal(o.Generic) && d.AuthInfo.Equal(o.AuthInfo) && slices.Equal(d.TModelKeys, o.TModelKeys)
}

// AddPublisherAssertions adds relationship assertions for the publisher.
type AddPublisherAssertions struct {
	Generic             types.String
	AuthInfo            types.String
	PublisherAssertions types.List[PublisherAssertion]
}

func NewAddPublisherAssertions(authInfo string, assertions ...PublisherAssertion) *AddPublisherAssertions {
	return &AddPublisherAssertions{AuthInfo: types.Some(authInfo), PublisherAssertions: assertions}
}

func (a AddPublisherAssertions) Equal(o AddPublisherAssertions) bool {
	return a.Generic.Equal(o.Generic) &&
		a.AuthInfo.Equal(o.AuthInfo) &&
		a.PublisherAssertions.Equal(o.PublisherAssertions)
}

var GetAuthTokenCodec codec.Codec[GetAuthToken] = &codec.Descriptor[GetAuthToken]{
	Element: "get_authToken",
	Generic: func(g *GetAuthToken) *types.String { return &g.Generic },
	Attrs: []codec.Attr[GetAuthToken]{
		{Name: "userID", Ref: func(g *GetAuthToken) *types.String { return &g.UserID }},
		{Name: "cred", Ref: func(g *GetAuthToken) *types.String { return &g.Cred }},
	},
}

var AuthTokenCodec codec.Codec[AuthToken] = &codec.Descriptor[AuthToken]{
	Element: "authToken",
	Generic: func(a *AuthToken) *types.String { return &a.Generic },
	Attrs: []codec.Attr[AuthToken]{
		{Name: "operator", Ref: func(a *AuthToken) *types.String { return &a.Operator }},
	},
	Fields: []codec.Field[AuthToken]{
		codec.TextChild("authInfo", func(a *AuthToken) *types.String { return &a.AuthInfo }),
	},
}

var DiscardAuthTokenCodec codec.Codec[DiscardAuthToken] = &codec.Descriptor[DiscardAuthToken]{
	Element: "discard_authToken",
	Generic: func(d *DiscardAuthToken) *types.String { return &d.Generic },
	Fields: []codec.Field[DiscardAuthToken]{
		codec.TextChild("authInfo", func(d *DiscardAuthToken) *types.String { return &d.AuthInfo }),
	},
}

var SaveTModelCodec codec.Codec[SaveTModel] = &codec.Descriptor[SaveTModel]{
	Element: "save_tModel",
	Generic: func(s *SaveTModel) *types.String { return &s.Generic },
	Fields: []codec.Field[SaveTModel]{
		codec.TextChild("authInfo", func(s *SaveTModel) *types.String { return &s.AuthInfo }),
		codec.Many(TModelCodec, func(s *SaveTModel) *types.List[TModel] { return &s.TModels }),
	},
}

var DeleteTModelCodec codec.Codec[DeleteTModel] = &codec.Descriptor[DeleteTModel]{
	Element: "delete_tModel",
	Generic: func(d *DeleteTModel) *types.String { return &d.Generic },
	Fields: []codec.Field[DeleteTModel]{
		codec.TextChild("authInfo", func(d *DeleteTModel) *types.String { return &d.AuthInfo }),
		codec.TextChildren("tModelKey", func(d *DeleteTModel) *[]string { return &d.TModelKeys }),
	},
}

var AddPublisherAssertionsCodec codec.Codec[AddPublisherAssertions] = &codec.Descriptor[AddPublisherAssertions]{
	Element: "add_publisherAssertions",
	Generic: func(a *AddPublisherAssertions) *types.String { return &a.Generic },
	Fields: []codec.Field[AddPublisherAssertions]{
		codec.TextChild("authInfo", func(a *AddPublisherAssertions) *types.String { return &a.AuthInfo }),
		codec.Many(PublisherAssertionCodec, func(a *AddPublisherAssertions) *types.List[PublisherAssertion] {
			return &a.PublisherAssertions
		}),
	},
}
