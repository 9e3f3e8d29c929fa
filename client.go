package uddi

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/uddiwire/uddi/pkg/cache"
	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/config"
	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/logger"
	"github.com/uddiwire/uddi/pkg/models"
	"github.com/uddiwire/uddi/pkg/soap"
)

// Client talks to one registry through its inquiry and publish endpoints.
type Client struct {
	env     *codec.Env
	inquiry soap.Transport
	publish soap.Transport
	cache   *cache.TModels
	logger  zerolog.Logger
	logData *logger.LogData
}

// Option configures a Client built by NewWithTransports.
type Option func(*Client)

// WithEnv replaces the default codec environment.
func WithEnv(env *codec.Env) Option {
	return func(c *Client) {
		c.env = env
	}
}

// WithCache keeps tModels returned by GetTModel and SaveTModel.
func WithCache(tc *cache.TModels) Option {
	return func(c *Client) {
		c.cache = tc
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewWithTransports builds a client over caller supplied transports. Either
// may be nil when the corresponding calls are not used.
func NewWithTransports(inquiry, publish soap.Transport, opts ...Option) *Client {
	c := &Client{
		inquiry: inquiry,
		publish: publish,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.env == nil {
		c.env = codec.NewEnv(codec.WithLogger(c.logger))
	}
	return c
}

// New builds a client with HTTP transports from cfg.
func New(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	build := logger.New().WithLevel(level)
	if cfg.Log.Path != "" {
		build = build.FromPath(cfg.Log.Path)
	}
	logData, err := build.Make()
	if err != nil {
		return nil, err
	}
	l := logData.Logger

	opts := []Option{
		WithLogger(l),
		WithEnv(codec.NewEnv(codec.WithSchema(cfg.CodecSchema()), codec.WithLogger(l))),
	}
	if cfg.Cache {
		opts = append(opts, WithCache(cache.New()))
	}

	var inquiry, publish soap.Transport
	if cfg.InquiryURL != "" {
		inquiry = soap.NewHTTPTransport(cfg.InquiryURL).SetTimeout(cfg.Timeout).SetLogger(l)
	}
	if cfg.PublishURL != "" {
		publish = soap.NewHTTPTransport(cfg.PublishURL).SetTimeout(cfg.Timeout).SetLogger(l)
	}

	c := NewWithTransports(inquiry, publish, opts...)
	c.logData = logData
	return c, nil
}

// Close releases the log file opened by New, if any.
func (c *Client) Close() error {
	if c.logData == nil {
		return nil
	}
	return c.logData.Close()
}

func (c *Client) Env() *codec.Env {
	return c.env
}

// FindTModel searches tModels.
func (c *Client) FindTModel(ctx context.Context, req *models.FindTModel) (*models.TModelList, error) {
	return call(ctx, c, c.inquiry, models.FindTModelCodec, req, models.TModelListCodec)
}

// GetTModelDetail fetches full tModels by key.
func (c *Client) GetTModelDetail(ctx context.Context, keys ...string) (*models.TModelDetail, error) {
	return call(ctx, c, c.inquiry, models.GetTModelDetailCodec, models.NewGetTModelDetail(keys...), models.TModelDetailCodec)
}

// GetTModel fetches a single tModel, consulting the cache first when the
// client has one.
func (c *Client) GetTModel(ctx context.Context, key string) (*models.TModel, error) {
	if c.cache != nil {
		t, err := c.cache.Get(key)
		if err == nil {
			c.logger.Debug().Str("tModelKey", key).Msg("tModel cache hit")
			return t, nil
		}
		if !errors.Is(err, constants.ErrCacheMiss) {
			return nil, err
		}
	}

	detail, err := c.GetTModelDetail(ctx, key)
	if err != nil {
		return nil, err
	}
	t, ok := detail.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: tModel %s not in reply", constants.ErrUnexpectedResponse, key)
	}
	c.remember(t)
	return t, nil
}

// GetAuthToken opens a publisher session and returns its authInfo.
func (c *Client) GetAuthToken(ctx context.Context, userID, cred string) (string, error) {
	tok, err := call(ctx, c, c.publish, models.GetAuthTokenCodec, models.NewGetAuthToken(userID, cred), models.AuthTokenCodec)
	if err != nil {
		return "", err
	}
	if tok.AuthInfo.Blank() {
		return "", fmt.Errorf("%w: authInfo", constants.ErrMissingField)
	}
	return tok.AuthInfo.Value(), nil
}

func (c *Client) DiscardAuthToken(ctx context.Context, authInfo string) (*models.DispositionReport, error) {
	return call(ctx, c, c.publish, models.DiscardAuthTokenCodec, models.NewDiscardAuthToken(authInfo), models.DispositionReportCodec)
}

// SaveTModel registers or updates tModels and returns them as stored by the
// registry, with keys assigned.
func (c *Client) SaveTModel(ctx context.Context, authInfo string, tModels ...models.TModel) (*models.TModelDetail, error) {
	detail, err := call(ctx, c, c.publish, models.SaveTModelCodec, models.NewSaveTModel(authInfo, tModels...), models.TModelDetailCodec)
	if err != nil {
		return nil, err
	}
	for i := range detail.TModels {
		c.remember(&detail.TModels[i])
	}
	return detail, nil
}

func (c *Client) DeleteTModel(ctx context.Context, authInfo string, keys ...string) (*models.DispositionReport, error) {
	if c.cache != nil {
		c.cache.Delete(keys...)
	}
	return call(ctx, c, c.publish, models.DeleteTModelCodec, models.NewDeleteTModel(authInfo, keys...), models.DispositionReportCodec)
}

func (c *Client) AddPublisherAssertions(ctx context.Context, authInfo string, assertions ...models.PublisherAssertion) (*models.DispositionReport, error) {
	req := models.NewAddPublisherAssertions(authInfo, assertions...)
	return call(ctx, c, c.publish, models.AddPublisherAssertionsCodec, req, models.DispositionReportCodec)
}

func (c *Client) remember(t *models.TModel) {
	if c.cache == nil || t.Key.Blank() {
		return
	}
	if err := c.cache.Put(t); err != nil {
		c.logger.Warn().Err(err).Str("tModelKey", t.Key.Value()).Msg("failed to cache tModel")
	}
}

// call encodes req into an envelope, sends it and decodes the reply with
// resp. Fault-shaped replies come back as *fault.Error.
func call[Req, Resp any](
	ctx context.Context,
	c *Client,
	tr soap.Transport,
	req codec.Codec[Req],
	v *Req,
	resp codec.Codec[Resp],
) (*Resp, error) {
	if tr == nil {
		return nil, fmt.Errorf("%s: %w", req.Tag(), constants.ErrNoEndpoint)
	}

	doc, body := soap.NewEnvelope()
	req.Encode(c.env, v, body)

	reply, err := tr.RoundTrip(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Tag(), err)
	}
	payload, err := soap.Payload(reply)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Tag(), err)
	}
	if err := c.env.Check(payload); err != nil {
		return nil, err
	}
	if payload.Tag != resp.Tag() || payload.NamespaceURI() != c.env.Schema().Namespace {
		return nil, fmt.Errorf("%w: %s answered with %s", constants.ErrUnexpectedResponse, req.Tag(), payload.FullTag())
	}

	c.logger.Debug().Str("request", req.Tag()).Str("reply", resp.Tag()).Msg("registry call")
	return resp.Decode(c.env, payload)
}
