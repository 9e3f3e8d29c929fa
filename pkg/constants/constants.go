package constants

import "time"

// Registry wire constants for the version 2 message vocabulary.
const (
	SchemaNamespace = "urn:uddi-org:api_v2"
	SchemaPrefix    = "u"
	GenericVersion  = "2.0"

	SOAPNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	SOAPPrefix    = "soap"
)

const (
	DefaultHTTPTimeout = 10 * time.Second
	ContentTypeXML     = "text/xml; charset=utf-8"
)
