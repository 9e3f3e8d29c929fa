// Package models holds the registry entities exchanged with version 2
// registry servers, each paired with the codec that maps it to and from
// its XML element.
//
// Entities are plain values. Decoding never enforces required fields;
// constructors such as [NewTModel] and [NewPublisherAssertion] take the
// required fields as parameters when building a request.
//
// Every entity has an Equal method: fields are compared pairwise, an absent
// field never equals a present one, and repeated fields compare in order.
package models
