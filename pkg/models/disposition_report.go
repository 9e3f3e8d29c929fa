package models

import (
	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/types"
)

// ErrInfo is the error code and message of a result.
type ErrInfo struct {
	ErrCode types.String
	Text    types.String
}

func (e ErrInfo) Equal(o ErrInfo) bool {
	return e.ErrCode.Equal(o.ErrCode) && e.Text.Equal(o.Text)
}

// Result is one outcome entry of a disposition report.
type Result struct {
	Errno   types.String
	KeyType types.String
	ErrInfo *ErrInfo
}

func (r Result) Equal(o Result) bool {
	return r.Errno.Equal(o.Errno) && r.KeyType.Equal(o.KeyType) && types.PtrEqual(r.ErrInfo, o.ErrInfo)
}

// Success reports whether the result carries errno 0.
func (r Result) Success() bool {
	return r.Errno.Value() == "0"
}

// DispositionReport is the reply of calls that return no entity. Reports
// with a non-zero errno are classified as faults before they get here.
type DispositionReport struct {
	Generic   types.String
	Operator  types.String
	Truncated types.String
	Results   types.List[Result]
}

func (d DispositionReport) Equal(o DispositionReport) bool {
	return d.Generic.Equal(o.Generic) &&
		d.Operator.Equal(o.Operator) &&
		d.Truncated.Equal(o.Truncated) &&
		d.Results.Equal(o.Results)
}

// Success reports whether every result succeeded.
func (d *DispositionReport) Success() bool {
	for _, r := range d.Results {
		if !r.Success() {
			return false
		}
	}
	return true
}

var ErrInfoCodec codec.Codec[ErrInfo] = &codec.Descriptor[ErrInfo]{
	Element: "errInfo",
	Attrs: []codec.Attr[ErrInfo]{
		{Name: "errCode", Ref: func(e *ErrInfo) *types.String { return &e.ErrCode }},
	},
	Text: func(e *ErrInfo) *types.String { return &e.Text },
}

var ResultCodec codec.Codec[Result] = &codec.Descriptor[Result]{
	Element: "result",
	Attrs: []codec.Attr[Result]{
		{Name: "keyType", Mode: codec.Specified, Ref: func(r *Result) *types.String { return &r.KeyType }},
		{Name: "errno", Ref: func(r *Result) *types.String { return &r.Errno }},
	},
	Fields: []codec.Field[Result]{
		codec.One(ErrInfoCodec, func(r *Result) **ErrInfo { return &r.ErrInfo }),
	},
}

var DispositionReportCodec codec.Codec[DispositionReport] = &codec.Descriptor[DispositionReport]{
	Element: "dispositionReport",
	Generic: func(d *DispositionReport) *types.String { return &d.Generic },
	Attrs: []codec.Attr[DispositionReport]{
		{Name: "operator", Ref: func(d *DispositionReport) *types.String { return &d.Operator }},
		{Name: "truncated", Mode: codec.Specified, Ref: func(d *DispositionReport) *types.String { return &d.Truncated }},
	},
	Fields: []codec.Field[DispositionReport]{
		codec.Many(ResultCodec, func(d *DispositionReport) *types.List[Result] { return &d.Results }),
	},
}

// NewSuccessReport returns a report with a single errno 0 result.
func NewSuccessReport(operator string) *DispositionReport {
	return &DispositionReport{
		Operator: types.Some(operator),
		Results: types.List[Result]{{
			Errno:   types.Some("0"),
			ErrInfo: &ErrInfo{ErrCode: types.Some("E_success"), Text: types.Some("")},
		}},
	}
}
