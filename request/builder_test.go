package request

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ipp/compress"
	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/message"
	"github.com/arloliu/ipp/tag"
	"github.com/arloliu/ipp/values"
)

const printerURI = "ipp://localhost/printers/test"

// A Print-Job request must open its operation group with exactly
// attributes-charset, attributes-natural-language and printer-uri in
// that order, with caller attributes appended after.
func TestPrintJob_MandatoryAttributeOrder(t *testing.T) {
	msg, err := PrintJob(printerURI, strings.NewReader("%PDF-1.4")).
		UserName("alice").
		JobName("report").
		Build()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0002), msg.Code)
	require.Equal(t, uint32(1), msg.RequestID)

	data, err := message.EncodeBytes(msg)
	require.NoError(t, err)

	decoded, err := message.DecodeBytes(data)
	require.NoError(t, err)

	ops := decoded.GroupsOf(tag.OperationAttributes)
	require.Len(t, ops, 1)

	attrs := ops[0].Attrs
	require.GreaterOrEqual(t, len(attrs), 5)
	require.Equal(t, tag.AttrAttributesCharset, attrs[0].Name)
	require.Equal(t, values.Charset("utf-8"), attrs[0].Values[0])
	require.Equal(t, tag.AttrAttributesNaturalLanguage, attrs[1].Name)
	require.Equal(t, values.NaturalLanguage("en"), attrs[1].Values[0])
	require.Equal(t, tag.AttrPrinterURI, attrs[2].Name)
	require.Equal(t, values.URI(printerURI), attrs[2].Values[0])

	// Caller attributes follow in the order they were added.
	require.Equal(t, tag.AttrRequestingUserName, attrs[3].Name)
	require.Equal(t, tag.AttrJobName, attrs[4].Name)
}

func TestBuilder_CallerSuppliedMandatoryNotDuplicated(t *testing.T) {
	msg, err := GetPrinterAttributes(printerURI).
		OperationAttribute(message.MustAttribute(tag.AttrAttributesCharset, values.Charset("us-ascii"))).
		Build()
	require.NoError(t, err)

	ops := msg.GroupsOf(tag.OperationAttributes)
	require.Len(t, ops, 1)

	var charsets []values.Value
	for _, a := range ops[0].Attrs {
		if a.Name == tag.AttrAttributesCharset {
			charsets = append(charsets, a.Values[0])
		}
	}
	require.Equal(t, []values.Value{values.Charset("us-ascii")}, charsets)
}

func TestBuilder_JobAttributesGroup(t *testing.T) {
	msg, err := PrintJob(printerURI, nil).
		JobAttribute(message.MustAttribute("copies", values.Integer(3))).
		JobAttribute(message.MustAttribute("media", values.Keyword("iso_a4_210x297mm"))).
		Build()
	require.NoError(t, err)

	jobs := msg.GroupsOf(tag.JobAttributes)
	require.Len(t, jobs, 1)
	require.Equal(t, "copies", jobs[0].Attrs[0].Name)
	require.Equal(t, "media", jobs[0].Attrs[1].Name)
}

func TestBuilder_ZeroRequestID(t *testing.T) {
	_, err := PrintJob(printerURI, nil).RequestID(0).Build()
	require.ErrorIs(t, err, errs.ErrZeroRequestID)
}

func TestBuilder_EmptyURI(t *testing.T) {
	_, err := PrintJob("", nil).Build()
	require.ErrorIs(t, err, errs.ErrInvalidURI)
}

func TestSendDocument_Attributes(t *testing.T) {
	msg, err := SendDocument(printerURI, 123, strings.NewReader("doc"), true).Build()
	require.NoError(t, err)

	a, ok := msg.Attr(tag.OperationAttributes, tag.AttrJobID)
	require.True(t, ok)
	require.Equal(t, values.Integer(123), a.Values[0])

	a, ok = msg.Attr(tag.OperationAttributes, tag.AttrLastDocument)
	require.True(t, ok)
	require.Equal(t, values.Boolean(true), a.Values[0])
}

func TestGetPrinterAttributes_Requested(t *testing.T) {
	msg, err := GetPrinterAttributes(printerURI).
		RequestedAttributes("printer-name", "printer-state").
		Build()
	require.NoError(t, err)
	require.Equal(t, uint16(0x000b), msg.Code)

	a, ok := msg.Attr(tag.OperationAttributes, tag.AttrRequestedAttributes)
	require.True(t, ok)
	require.Equal(t, []values.Value{
		values.Keyword("printer-name"),
		values.Keyword("printer-state"),
	}, a.Values)
}

func TestGetJobs_Modifiers(t *testing.T) {
	msg, err := GetJobs(printerURI).MyJobs(true).Limit(10).UserName("bob").Build()
	require.NoError(t, err)

	a, ok := msg.Attr(tag.OperationAttributes, tag.AttrMyJobs)
	require.True(t, ok)
	require.Equal(t, values.Boolean(true), a.Values[0])

	a, ok = msg.Attr(tag.OperationAttributes, tag.AttrLimit)
	require.True(t, ok)
	require.Equal(t, values.Integer(10), a.Values[0])
}

func TestBuilder_Compression(t *testing.T) {
	payload := strings.Repeat("compressible document ", 200)

	msg, err := PrintJob(printerURI, strings.NewReader(payload)).
		Compression(compress.KeywordGzip).
		Build()
	require.NoError(t, err)

	a, ok := msg.Attr(tag.OperationAttributes, tag.AttrCompression)
	require.True(t, ok)
	require.Equal(t, values.Keyword("gzip"), a.Values[0])

	codec, err := compress.GetCodec(compress.KeywordGzip)
	require.NoError(t, err)
	zr, err := codec.Decompress(msg.Payload)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.Equal(t, payload, string(got))
}

func TestBuilder_UnknownCompression(t *testing.T) {
	_, err := PrintJob(printerURI, strings.NewReader("x")).Compression("lzma").Build()
	require.Error(t, err)
}

func TestResponse_StatusClassification(t *testing.T) {
	resp := responseWithStatus(t, tag.StatusErrorBadRequest, "bad charset")

	require.Equal(t, tag.ClassClientError, resp.StatusClass())
	require.Equal(t, "bad charset", resp.StatusMessage())

	err := resp.Err()
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, tag.StatusErrorBadRequest, statusErr.Code)
	require.Equal(t, "bad charset", statusErr.StatusMessage)
	require.Contains(t, statusErr.Error(), "client-error-bad-request")
}

func TestResponse_UnknownStatusSurfaced(t *testing.T) {
	resp := responseWithStatus(t, tag.Status(0x0300), "")

	require.Equal(t, tag.ClassUnknown, resp.StatusClass())
	require.Equal(t, tag.Status(0x0300), resp.Status())
	require.Error(t, resp.Err())
}

func TestResponse_Success(t *testing.T) {
	resp := responseWithStatus(t, tag.StatusOk, "")
	require.NoError(t, resp.Err())
	require.Equal(t, "", resp.StatusMessage())
}

func TestResponse_JobID(t *testing.T) {
	msg := message.NewResponse(message.DefaultVersion, tag.StatusOk, 1)
	msg.Add(tag.OperationAttributes, message.MustAttribute(tag.AttrAttributesCharset, values.Charset("utf-8")))
	msg.Add(tag.JobAttributes, message.MustAttribute(tag.AttrJobID, values.Integer(77)))

	resp := NewResponse(msg)
	id, err := resp.JobID()
	require.NoError(t, err)
	require.Equal(t, int32(77), id)
}

func TestResponse_JobIDErrors(t *testing.T) {
	msg := message.NewResponse(message.DefaultVersion, tag.StatusOk, 1)
	resp := NewResponse(msg)

	_, err := resp.JobID()
	require.ErrorIs(t, err, errs.ErrMissingAttribute)

	msg.Add(tag.JobAttributes, message.MustAttribute(tag.AttrJobID, values.Keyword("oops")))
	_, err = resp.JobID()
	require.ErrorIs(t, err, errs.ErrInvalidAttributeType)
}

// responseWithStatus round-trips a response through the codec so the
// interpretation path sees decoded wire data.
func responseWithStatus(t *testing.T, status tag.Status, statusMessage string) *Response {
	t.Helper()

	msg := message.NewResponse(message.DefaultVersion, status, 1)
	op := message.Group{Tag: tag.OperationAttributes}
	op.Add(message.MustAttribute(tag.AttrAttributesCharset, values.Charset("utf-8")))
	op.Add(message.MustAttribute(tag.AttrAttributesNaturalLanguage, values.NaturalLanguage("en")))
	if statusMessage != "" {
		op.Add(message.MustAttribute(tag.AttrStatusMessage, values.Text(statusMessage)))
	}
	msg.Groups = append(msg.Groups, op)

	data, err := message.EncodeBytes(msg)
	require.NoError(t, err)

	resp, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	return resp
}
