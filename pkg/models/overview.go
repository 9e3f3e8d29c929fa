package models

import (
	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/types"
)

// OverviewDoc references remote documentation, with optional descriptions.
type OverviewDoc struct {
	Descriptions types.List[Description]
	OverviewURL  *OverviewURL
}

func (d OverviewDoc) Equal(o OverviewDoc) bool {
	return d.Descriptions.Equal(o.Descriptions) &&
		types.PtrEqual(d.OverviewURL, o.OverviewURL)
}

// DefaultDescription returns the primary-locale description, if any.
func (d *OverviewDoc) DefaultDescription() (Description, bool) {
	return d.Descriptions.Default()
}

func (d *OverviewDoc) SetDefaultDescription(desc Description) {
	d.Descriptions.SetDefault(desc)
}

var OverviewDocCodec codec.Codec[OverviewDoc] = &codec.Descriptor[OverviewDoc]{
	Element: "overviewDoc",
	Fields: []codec.Field[OverviewDoc]{
		codec.Many(DescriptionCodec, func(d *OverviewDoc) *types.List[Description] { return &d.Descriptions }),
		codec.One(OverviewURLCodec, func(d *OverviewDoc) **OverviewURL { return &d.OverviewURL }),
	},
}
