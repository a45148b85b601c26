package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/arloliu/ipp/errs"
)

// Transport delivers an encoded IPP request to a printer and returns the
// response byte stream. The default implementation speaks HTTP; tests and
// alternative carriers (e.g. IPP-over-USB) supply their own.
//
// Implementations are responsible for delivery concerns: connection
// reuse, TLS, timeouts. Cancelling ctx must stop consumption of the
// payload stream.
type Transport interface {
	// Send posts the encoded request bytes followed by the optional
	// document payload stream to uri and returns the response stream.
	Send(ctx context.Context, uri string, request []byte, payload io.Reader) (io.ReadCloser, error)
}

// TransportError is a delivery failure reported by the HTTP layer, as
// opposed to an IPP status error or a codec error.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ipp: unexpected http status %d", e.StatusCode)
}

// ContentType is the media type of IPP message bodies.
const ContentType = "application/ipp"

// HTTPTransport sends IPP requests as HTTP POST bodies.
type HTTPTransport struct {
	client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates an HTTP transport backed by hc, or by
// http.DefaultClient when hc is nil.
func NewHTTPTransport(hc *http.Client) *HTTPTransport {
	if hc == nil {
		hc = http.DefaultClient
	}

	return &HTTPTransport{client: hc}
}

// Send posts request and payload to uri with the application/ipp content
// type. The payload is streamed, never buffered. The caller owns the
// returned body and must close it.
func (t *HTTPTransport) Send(ctx context.Context, uri string, request []byte, payload io.Reader) (io.ReadCloser, error) {
	httpURI, err := TranslateURI(uri)
	if err != nil {
		return nil, err
	}

	body := io.Reader(bytes.NewReader(request))
	if payload != nil {
		body = io.MultiReader(body, payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, httpURI, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", ContentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}

// TranslateURI maps the ipp and ipps URI schemes onto their HTTP
// carriers, adding the default IPP port 631 when none is given. Plain
// http and https URIs pass through.
func TranslateURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrInvalidURI, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", errs.ErrInvalidURI, uri)
	}

	switch u.Scheme {
	case "ipp":
		u.Scheme = "http"
		if u.Port() == "" {
			u.Host += ":631"
		}
	case "ipps":
		u.Scheme = "https"
		if u.Port() == "" {
			u.Host += ":631"
		}
	case "http", "https":
	default:
		return "", fmt.Errorf("%w: scheme %q", errs.ErrInvalidURI, u.Scheme)
	}

	return u.String(), nil
}
