package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/message"
	"github.com/arloliu/ipp/request"
	"github.com/arloliu/ipp/tag"
	"github.com/arloliu/ipp/values"
)

func TestTranslateURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"ipp://printer.local/ipp/print", "http://printer.local:631/ipp/print"},
		{"ipp://printer.local:8080/ipp/print", "http://printer.local:8080/ipp/print"},
		{"ipps://printer.local/ipp/print", "https://printer.local:631/ipp/print"},
		{"http://printer.local/ipp/print", "http://printer.local/ipp/print"},
		{"https://printer.local:443/ipp/print", "https://printer.local:443/ipp/print"},
	}
	for _, tt := range tests {
		got, err := TranslateURI(tt.uri)
		require.NoError(t, err, tt.uri)
		require.Equal(t, tt.want, got)
	}
}

func TestTranslateURI_Invalid(t *testing.T) {
	for _, uri := range []string{"", "ftp://host/file", "ipp://", ":bad:"} {
		_, err := TranslateURI(uri)
		require.ErrorIs(t, err, errs.ErrInvalidURI, uri)
	}
}

func TestNew_InvalidURI(t *testing.T) {
	_, err := New("gopher://printer")
	require.ErrorIs(t, err, errs.ErrInvalidURI)
}

// ippHandler decodes the request it receives and answers with a canned
// IPP response, capturing the request for assertions.
type ippHandler struct {
	t          *testing.T
	status     tag.Status
	jobID      int32
	gotMsg     *message.Message
	gotPayload []byte
	gotHeader  http.Header
}

func (h *ippHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.gotHeader = r.Header.Clone()

	msg, err := message.DecodeBytes(mustReadAll(h.t, r.Body))
	require.NoError(h.t, err)
	h.gotMsg = msg
	h.gotPayload = mustReadAll(h.t, msg.Payload)

	resp := message.NewResponse(message.DefaultVersion, h.status, msg.RequestID)
	resp.Add(tag.OperationAttributes, message.MustAttribute(tag.AttrAttributesCharset, values.Charset("utf-8")))
	resp.Add(tag.OperationAttributes, message.MustAttribute(tag.AttrAttributesNaturalLanguage, values.NaturalLanguage("en")))
	if h.jobID != 0 {
		resp.Add(tag.JobAttributes, message.MustAttribute(tag.AttrJobID, values.Integer(h.jobID)))
	}

	data, err := message.EncodeBytes(resp)
	require.NoError(h.t, err)

	w.Header().Set("Content-Type", ContentType)
	_, _ = w.Write(data)
}

func mustReadAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	if r == nil {
		return nil
	}
	data, err := io.ReadAll(r)
	require.NoError(t, err)

	return data
}

func TestClient_Send(t *testing.T) {
	handler := &ippHandler{t: t, status: tag.StatusOk, jobID: 42}
	srv := httptest.NewServer(handler)
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)
	require.Equal(t, srv.URL, c.URI())

	resp, err := c.Send(context.Background(),
		request.PrintJob(c.URI(), strings.NewReader("%PDF-1.4 hello")).
			RequestID(7).
			JobName("hello"))
	require.NoError(t, err)
	require.NoError(t, resp.Err())
	require.Equal(t, uint32(7), resp.RequestID())

	id, err := resp.JobID()
	require.NoError(t, err)
	require.Equal(t, int32(42), id)

	// The server saw the full request: header, groups, then the document
	// payload streamed after the terminator.
	require.Equal(t, ContentType, handler.gotHeader.Get("Content-Type"))
	require.Equal(t, tag.OpPrintJob, handler.gotMsg.Operation())
	require.Equal(t, "%PDF-1.4 hello", string(handler.gotPayload))

	a, ok := handler.gotMsg.Attr(tag.OperationAttributes, tag.AttrJobName)
	require.True(t, ok)
	require.Equal(t, values.Name("hello"), a.Values[0])
}

func TestClient_SendStatusError(t *testing.T) {
	handler := &ippHandler{t: t, status: tag.StatusErrorNotFound}
	srv := httptest.NewServer(handler)
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	resp, err := c.Send(context.Background(), request.GetPrinterAttributes(c.URI()))
	require.NoError(t, err)
	require.Equal(t, tag.ClassClientError, resp.StatusClass())

	var statusErr *request.StatusError
	require.ErrorAs(t, resp.Err(), &statusErr)
	require.Equal(t, tag.StatusErrorNotFound, statusErr.Code)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Send(context.Background(), request.GetPrinterAttributes(c.URI()))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Send(ctx, request.GetPrinterAttributes(c.URI()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_DoesNotMutateSuppliedHTTPClient(t *testing.T) {
	base := &http.Transport{MaxIdleConns: 7}
	hc := &http.Client{Transport: base, Timeout: time.Minute}

	c, err := New("ipps://printer.local/ipp/print",
		WithHTTPClient(hc),
		WithIgnoreTLSErrors(),
		WithRequestTimeout(5*time.Second))
	require.NoError(t, err)

	// The caller's client is untouched.
	require.Same(t, base, hc.Transport)
	require.Nil(t, base.TLSClientConfig)
	require.Equal(t, time.Minute, hc.Timeout)

	// The client's own copy carries the settings, keeping the supplied
	// transport's configuration.
	ht, ok := c.transport.(*HTTPTransport)
	require.True(t, ok)
	require.Equal(t, 5*time.Second, ht.client.Timeout)

	tr, ok := ht.client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotSame(t, base, tr)
	require.Equal(t, 7, tr.MaxIdleConns)
	require.NotNil(t, tr.TLSClientConfig)
	require.True(t, tr.TLSClientConfig.InsecureSkipVerify)
}

func TestNew_TimeoutAppliesToSuppliedClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}

	c, err := New("ipp://printer.local/ipp/print",
		WithHTTPClient(hc),
		WithRequestTimeout(2*time.Second))
	require.NoError(t, err)

	ht, ok := c.transport.(*HTTPTransport)
	require.True(t, ok)
	require.Equal(t, 2*time.Second, ht.client.Timeout)
	require.Equal(t, time.Minute, hc.Timeout)
}

// memTransport loops requests back through an in-process responder,
// standing in for a non-HTTP carrier.
type memTransport struct {
	respond func(msg *message.Message) *message.Message
}

func (m *memTransport) Send(_ context.Context, _ string, req []byte, payload io.Reader) (io.ReadCloser, error) {
	msg, err := message.DecodeBytes(req)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		if _, err := io.Copy(io.Discard, payload); err != nil {
			return nil, err
		}
	}

	data, err := message.EncodeBytes(m.respond(msg))
	if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func TestClient_CustomTransport(t *testing.T) {
	tr := &memTransport{respond: func(msg *message.Message) *message.Message {
		resp := message.NewResponse(msg.Version, tag.StatusOk, msg.RequestID)
		resp.Add(tag.OperationAttributes, message.MustAttribute(tag.AttrAttributesCharset, values.Charset("utf-8")))
		resp.Add(tag.PrinterAttributes, message.MustAttribute(tag.AttrPrinterName, values.Name("office")))

		return resp
	}}

	c, err := New("ipp://printer.local/ipp/print", WithTransport(tr))
	require.NoError(t, err)

	resp, err := c.Send(context.Background(), request.GetPrinterAttributes(c.URI()))
	require.NoError(t, err)
	require.NoError(t, resp.Err())

	printers := resp.Groups(tag.PrinterAttributes)
	require.Len(t, printers, 1)

	a, ok := printers[0].Get(tag.AttrPrinterName)
	require.True(t, ok)
	require.Equal(t, values.Name("office"), a.Values[0])
}

func TestClient_DecodeOptions(t *testing.T) {
	deep := func(depth int) values.Value {
		v := values.Value(values.Integer(1))
		for i := 0; i < depth; i++ {
			v = values.Collection{{Name: "level", Value: v}}
		}

		return v
	}

	tr := &memTransport{respond: func(msg *message.Message) *message.Message {
		resp := message.NewResponse(msg.Version, tag.StatusOk, msg.RequestID)
		resp.Add(tag.PrinterAttributes, message.MustAttribute("media-col-database", deep(3)))

		return resp
	}}

	c, err := New("ipp://printer.local/ipp/print",
		WithTransport(tr),
		WithDecodeOptions(message.WithMaxCollectionDepth(2)))
	require.NoError(t, err)

	_, err = c.Send(context.Background(), request.GetPrinterAttributes(c.URI()))
	require.ErrorIs(t, err, errs.ErrCollectionTooDeep)
}
