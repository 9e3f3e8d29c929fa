// Package fault classifies elements that carry a registry error report
// instead of the entity a caller asked for.
//
// Two shapes are recognised: a SOAP 1.1 Fault, and a dispositionReport whose
// result carries a non-zero errno. Either may show up wherever an entity was
// expected, so every decode path consults a Detector before reading fields.
package fault

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/xmltree"
)

const (
	faultTag             = "Fault"
	dispositionReportTag = "dispositionReport"
	resultTag            = "result"
	errInfoTag           = "errInfo"
	successErrno         = "0"
)

// Detector decides whether an element is fault-shaped and extracts its detail.
type Detector interface {
	IsFault(el *etree.Element) bool
	Detail(el *etree.Element) *Detail
}

// Result is one result entry of a disposition report.
type Result struct {
	Errno   string
	ErrCode string
	Message string
}

// Detail is what a caller gets back from a fault-shaped element.
type Detail struct {
	Code    string
	String  string
	Actor   string
	Results []Result
}

// ErrCode returns the error code of the first result, or "".
func (d *Detail) ErrCode() string {
	if d == nil || len(d.Results) == 0 {
		return ""
	}
	return d.Results[0].ErrCode
}

// Error is returned by every decode that meets a fault-shaped element.
type Error struct {
	Detail *Detail
}

func (e *Error) Error() string {
	if e.Detail == nil {
		return constants.ErrFault.Error()
	}
	msg := e.Detail.String
	if len(e.Detail.Results) > 0 {
		r := e.Detail.Results[0]
		msg = fmt.Sprintf("%s (errno=%s): %s", r.ErrCode, r.Errno, r.Message)
	}
	if e.Detail.Code != "" {
		return fmt.Sprintf("%s: %s: %s", constants.ErrFault, e.Detail.Code, msg)
	}
	return fmt.Sprintf("%s: %s", constants.ErrFault, msg)
}

// Is makes errors.Is(err, constants.ErrFault) hold.
func (e *Error) Is(target error) bool {
	return target == constants.ErrFault
}

// StandardDetector recognises SOAP faults and failing disposition reports
// in the given schema namespace.
type StandardDetector struct {
	Namespace string
}

// NewDetector returns a StandardDetector for the schema namespace.
func NewDetector(namespace string) *StandardDetector {
	return &StandardDetector{Namespace: namespace}
}

func (d *StandardDetector) IsFault(el *etree.Element) bool {
	if el == nil {
		return false
	}
	if el.Tag == faultTag && el.NamespaceURI() == constants.SOAPNamespace {
		return true
	}
	if el.Tag == dispositionReportTag && el.NamespaceURI() == d.Namespace {
		return d.failing(el)
	}
	return false
}

func (d *StandardDetector) Detail(el *etree.Element) *Detail {
	detail := &Detail{}
	report := el
	if el.Tag == faultTag {
		detail.Code = xmltree.Text(xmltree.ChildByLocalName(el, "faultcode"))
		detail.String = xmltree.Text(xmltree.ChildByLocalName(el, "faultstring"))
		detail.Actor = xmltree.Text(xmltree.ChildByLocalName(el, "faultactor"))
		report = xmltree.FirstChild(xmltree.ChildByLocalName(el, "detail"), d.Namespace, dispositionReportTag)
	}
	if report == nil {
		return detail
	}
	for _, r := range xmltree.SelectChildren(report, d.Namespace, resultTag) {
		res := Result{Errno: xmltree.Attr(r, "errno")}
		if info := xmltree.FirstChild(r, d.Namespace, errInfoTag); info != nil {
			res.ErrCode = xmltree.Attr(info, "errCode")
			res.Message = xmltree.Text(info)
		}
		detail.Results = append(detail.Results, res)
	}
	return detail
}

func (d *StandardDetector) failing(report *etree.Element) bool {
	for _, r := range xmltree.SelectChildren(report, d.Namespace, resultTag) {
		if errno := strings.TrimSpace(xmltree.Attr(r, "errno")); errno != "" && errno != successErrno {
			return true
		}
	}
	return false
}
