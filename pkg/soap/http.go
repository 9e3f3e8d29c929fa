package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/uddiwire/uddi/pkg/constants"
)

const maxReplyBytes = 16 << 20

// HTTPTransport posts envelopes to a single registry endpoint.
type HTTPTransport struct {
	URL string

	httpClient *http.Client
	logger     zerolog.Logger
}

func NewHTTPTransport(url string) *HTTPTransport {
	return &HTTPTransport{
		URL: url,
		httpClient: &http.Client{
			Timeout: constants.DefaultHTTPTimeout, // Set a default timeout to avoid hanging requests
		},
		logger: zerolog.Nop(),
	}
}

func (h *HTTPTransport) SetTimeout(timeout time.Duration) *HTTPTransport {
	h.httpClient.Timeout = timeout
	return h
}

func (h *HTTPTransport) SetHTTPClient(client *http.Client) *HTTPTransport {
	h.httpClient = client
	return h
}

func (h *HTTPTransport) SetLogger(l zerolog.Logger) *HTTPTransport {
	h.logger = l
	return h
}

func (h *HTTPTransport) RoundTrip(ctx context.Context, req *etree.Document) (*etree.Document, error) {
	if h.URL == "" {
		return nil, constants.ErrNoEndpoint
	}

	reqBody, err := req.WriteToBytes()
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", constants.ContentTypeXML)
	httpReq.Header.Set("Accept", "text/xml")
	httpReq.Header.Set("SOAPAction", `""`)

	respData, status, err := h.MakeRequest(httpReq)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(respData)
	if err != nil {
		// Only a 2xx or a SOAP fault (500) is expected to carry an envelope.
		if status < 200 || status >= 300 {
			return nil, fmt.Errorf("%w: http status %d", constants.ErrUnexpectedResponse, status)
		}
		return nil, err
	}
	return doc, nil
}

// MakeRequest performs the request and returns the reply body and status.
func (h *HTTPTransport) MakeRequest(req *http.Request) ([]byte, int, error) {
	start := time.Now()
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("soap request to %s failed: %w", req.URL, err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			h.logger.Warn().Err(err).Msg("failed to close reply body")
		}
	}(resp.Body)

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, resp.StatusCode, err
	}

	h.logger.Debug().
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Int("bytes", len(respBytes)).
		Dur("elapsed", time.Since(start)).
		Msg("soap round trip")

	return respBytes, resp.StatusCode, nil
}
