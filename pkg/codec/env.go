package codec

import (
	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/fault"
	"github.com/uddiwire/uddi/pkg/xmltree"
)

// Schema names the message vocabulary: its namespace URI, the prefix used
// on encoded elements and the generic version marker of top-level messages.
type Schema struct {
	Namespace string
	Prefix    string
	Generic   string
}

// DefaultSchema returns the version 2 vocabulary.
func DefaultSchema() Schema {
	return Schema{
		Namespace: constants.SchemaNamespace,
		Prefix:    constants.SchemaPrefix,
		Generic:   constants.GenericVersion,
	}
}

// Env is the read-only configuration threaded through every Decode and
// Encode call. It is safe to share between goroutines.
type Env struct {
	schema Schema
	faults fault.Detector
	logger zerolog.Logger
}

type Option func(*Env)

// WithSchema overrides the default schema.
func WithSchema(s Schema) Option {
	return func(e *Env) {
		e.schema = s
	}
}

// WithDetector overrides the fault detector. Without it, a
// fault.StandardDetector for the schema namespace is used.
func WithDetector(d fault.Detector) Option {
	return func(e *Env) {
		e.faults = d
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Env) {
		e.logger = l
	}
}

// NewEnv builds an Env from the default schema and the given options.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		schema: DefaultSchema(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.faults == nil {
		e.faults = fault.NewDetector(e.schema.Namespace)
	}
	return e
}

func (e *Env) Schema() Schema {
	return e.schema
}

func (e *Env) Logger() zerolog.Logger {
	return e.logger
}

// Check returns a *fault.Error when el is fault-shaped.
func (e *Env) Check(el *etree.Element) error {
	if !e.faults.IsFault(el) {
		return nil
	}
	detail := e.faults.Detail(el)
	e.logger.Debug().
		Str("element", el.FullTag()).
		Str("faultcode", detail.Code).
		Str("errCode", detail.ErrCode()).
		Msg("fault detected while decoding")
	return &fault.Error{Detail: detail}
}

// Children selects the immediate children of el with the given local name
// in the schema namespace.
func (e *Env) Children(el *etree.Element, local string) []*etree.Element {
	return xmltree.SelectChildren(el, e.schema.Namespace, local)
}

// Create appends a new schema element named local to parent.
func (e *Env) Create(parent *etree.Element, local string) *etree.Element {
	return xmltree.CreateElement(parent, e.schema.Namespace, e.schema.Prefix, local)
}
