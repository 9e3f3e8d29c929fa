// Package soap wraps registry messages in SOAP 1.1 envelopes and ships
// them over HTTP.
package soap

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/xmltree"
)

// Transport sends a request envelope and returns the reply envelope.
// SOAP faults are part of a reply, not a transport error.
type Transport interface {
	RoundTrip(ctx context.Context, req *etree.Document) (*etree.Document, error)
}

// NewEnvelope returns an empty envelope document and its Body element, to
// which the request message is encoded.
func NewEnvelope() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	envelope := xmltree.CreateElement(&doc.Element, constants.SOAPNamespace, constants.SOAPPrefix, "Envelope")
	body := xmltree.CreateElement(envelope, constants.SOAPNamespace, constants.SOAPPrefix, "Body")
	return doc, body
}

// Body returns the Body element of an envelope document.
func Body(doc *etree.Document) (*etree.Element, error) {
	root := doc.Root()
	if root == nil || root.Tag != "Envelope" || root.NamespaceURI() != constants.SOAPNamespace {
		return nil, fmt.Errorf("%w: missing envelope", constants.ErrMissingBody)
	}
	body := xmltree.FirstChild(root, constants.SOAPNamespace, "Body")
	if body == nil {
		return nil, constants.ErrMissingBody
	}
	return body, nil
}

// Payload returns the first element inside the envelope's Body: the reply
// message or a Fault.
func Payload(doc *etree.Document) (*etree.Element, error) {
	body, err := Body(doc)
	if err != nil {
		return nil, err
	}
	kids := body.ChildElements()
	if len(kids) == 0 {
		return nil, constants.ErrEmptyBody
	}
	return kids[0], nil
}

// Parse reads an envelope document from raw bytes.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse soap envelope: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("failed to parse soap envelope: %w", constants.ErrMissingBody)
	}
	return doc, nil
}
