// Package uddi is a client for UDDI version 2 registries.
//
// # Messages
//
// Every request and reply is a plain Go value from [github.com/uddiwire/uddi/pkg/models],
// converted to and from namespace-qualified XML by the codecs in the same package.
// Optional attributes and text are [types.String] values that keep an absent value
// apart from a present empty one.
//
// # Faults
//
// A registry reports errors as a SOAP Fault or as a dispositionReport with a non-zero
// errno. Either shape is surfaced as a [*fault.Error]; use errors.Is(err, constants.ErrFault)
// to test for it and errors.As to read the errno and errCode.
//
// # Endpoints
//
// Inquiry calls (find_*, get_*) and publish calls (save_*, delete_*, the auth token calls)
// go to separate endpoints. Build a client from a [config.Config] with [New], or supply
// transports directly with [NewWithTransports].
//
// [types.String]: https://pkg.go.dev/github.com/uddiwire/uddi/pkg/types#String
// [*fault.Error]: https://pkg.go.dev/github.com/uddiwire/uddi/pkg/fault#Error
// [config.Config]: https://pkg.go.dev/github.com/uddiwire/uddi/pkg/config#Config
package uddi
