// Package client sends IPP requests to a printer over a pluggable
// transport and decodes the responses.
//
// A Client is bound to one printer URI:
//
//	c, err := client.New("ipp://192.168.1.10/ipp/print")
//	resp, err := c.Send(ctx, request.GetPrinterAttributes(c.URI()))
//	if err := resp.Err(); err != nil {
//	    // the printer rejected the request
//	}
//
// The zero configuration uses an HTTP transport; WithTransport swaps in
// any other carrier. Multiple requests may be in flight concurrently;
// the client holds no per-request state.
package client

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/arloliu/ipp/internal/options"
	"github.com/arloliu/ipp/message"
	"github.com/arloliu/ipp/request"
)

// Option configures a Client.
type Option = options.Option[*Client]

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) Option {
	return options.NoError(func(c *Client) {
		c.transport = t
	})
}

// WithHTTPClient supplies the http.Client backing the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return options.NoError(func(c *Client) {
		c.httpClient = hc
	})
}

// WithRequestTimeout bounds each round trip, payload upload included.
// It takes precedence over the Timeout of a client supplied via
// WithHTTPClient.
func WithRequestTimeout(d time.Duration) Option {
	return options.NoError(func(c *Client) {
		c.timeout = d
	})
}

// WithIgnoreTLSErrors disables TLS certificate verification. Printers
// routinely present self-signed certificates.
//
// The setting applies to the default HTTP transport, cloning any
// *http.Transport a caller-supplied http.Client carries; a client with
// a non-standard RoundTripper gets a fresh http.Transport instead.
func WithIgnoreTLSErrors() Option {
	return options.NoError(func(c *Client) {
		c.ignoreTLSErrors = true
	})
}

// WithDecodeOptions passes decoder options applied to every response,
// e.g. message.WithMaxCollectionDepth.
func WithDecodeOptions(opts ...message.Option) Option {
	return options.NoError(func(c *Client) {
		c.decodeOpts = opts
	})
}

// Client sends IPP operations to the printer at a fixed URI.
type Client struct {
	uri             string
	transport       Transport
	httpClient      *http.Client
	timeout         time.Duration
	ignoreTLSErrors bool
	decodeOpts      []message.Option
}

// New creates a client for the printer at uri. The URI is validated
// eagerly so misconfiguration fails at construction, not on first send.
func New(uri string, opts ...Option) (*Client, error) {
	if _, err := TranslateURI(uri); err != nil {
		return nil, err
	}

	c := &Client{uri: uri}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.transport == nil {
		c.transport = NewHTTPTransport(c.buildHTTPClient())
	}

	return c, nil
}

// buildHTTPClient assembles the http.Client backing the default
// transport. A caller-supplied client is shallow-copied before the
// timeout or TLS settings are layered on, so the caller's client and
// any transport it carries are never mutated.
func (c *Client) buildHTTPClient() *http.Client {
	hc := &http.Client{}
	if c.httpClient != nil {
		clone := *c.httpClient
		hc = &clone
	}
	if c.timeout != 0 {
		hc.Timeout = c.timeout
	}

	if c.ignoreTLSErrors {
		tr := &http.Transport{}
		if base, ok := hc.Transport.(*http.Transport); ok {
			tr = base.Clone()
		}
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = &tls.Config{} //nolint:gosec
		}
		tr.TLSClientConfig.InsecureSkipVerify = true
		hc.Transport = tr
	}

	return hc
}

// URI returns the printer URI the client is bound to.
func (c *Client) URI() string { return c.uri }

// Send builds the request and performs the round trip.
func (c *Client) Send(ctx context.Context, b *request.Builder) (*request.Response, error) {
	msg, err := b.Build()
	if err != nil {
		return nil, err
	}

	return c.Do(ctx, msg)
}

// Do encodes msg, sends it through the transport and decodes the
// response. The message header and groups are encoded into memory; the
// payload stream is handed to the transport untouched for streaming.
//
// IPP responses carry no document payload, so the response stream is
// fully consumed and closed before returning.
func (c *Client) Do(ctx context.Context, msg *message.Message) (*request.Response, error) {
	head := *msg
	head.Payload = nil

	reqBytes, err := message.EncodeBytes(&head)
	if err != nil {
		return nil, err
	}

	respBody, err := c.transport.Send(ctx, c.uri, reqBytes, msg.Payload)
	if err != nil {
		return nil, err
	}
	defer respBody.Close()

	opts := append([]message.Option{message.WithoutPayload()}, c.decodeOpts...)

	return request.Decode(respBody, opts...)
}
