// Package request assembles IPP request messages for the standard
// operations and interprets response messages into structured results.
//
// A Builder collects operation and job attributes, prepends the mandatory
// operation attributes (attributes-charset, attributes-natural-language
// and the target URI, in the fixed order the protocol requires) and
// produces a ready-to-send message:
//
//	msg, err := request.PrintJob("ipp://host/printers/office", file).
//	    UserName("alice").
//	    JobName("report.pdf").
//	    Build()
//
// Caller-supplied attributes keep their relative order; the builder only
// prepends mandatory attributes the caller did not supply.
package request

import (
	"fmt"
	"io"

	"github.com/arloliu/ipp/compress"
	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/message"
	"github.com/arloliu/ipp/tag"
	"github.com/arloliu/ipp/values"
)

// Defaults for the mandatory operation attributes.
const (
	DefaultCharset         = "utf-8"
	DefaultNaturalLanguage = "en"
)

// Builder assembles a request message for one IPP operation. Builders are
// created by the operation constructors (PrintJob, CreateJob, ...) or by
// NewBuilder for operations without a dedicated constructor.
type Builder struct {
	op          tag.Op
	uri         string
	useJobURI   bool
	version     message.Version
	requestID   uint32
	charset     string
	language    string
	opAttrs     []message.Attribute
	jobAttrs    []message.Attribute
	payload     io.Reader
	compression string
	err         error
}

// NewBuilder creates a builder for an arbitrary operation targeting the
// printer at uri.
func NewBuilder(op tag.Op, uri string) *Builder {
	return &Builder{
		op:        op,
		uri:       uri,
		version:   message.DefaultVersion,
		requestID: 1,
		charset:   DefaultCharset,
		language:  DefaultNaturalLanguage,
	}
}

// PrintJob creates a Print-Job request carrying the document payload.
func PrintJob(uri string, payload io.Reader) *Builder {
	b := NewBuilder(tag.OpPrintJob, uri)
	b.payload = payload

	return b
}

// PrintURI creates a Print-URI request referencing a document by URI.
func PrintURI(uri, documentURI string) *Builder {
	b := NewBuilder(tag.OpPrintURI, uri)

	return b.OperationAttribute(message.MustAttribute(tag.AttrDocumentURI, values.URI(documentURI)))
}

// ValidateJob creates a Validate-Job request.
func ValidateJob(uri string) *Builder {
	return NewBuilder(tag.OpValidateJob, uri)
}

// CreateJob creates a Create-Job request. Documents follow via
// SendDocument using the job-id from the response.
func CreateJob(uri string) *Builder {
	return NewBuilder(tag.OpCreateJob, uri)
}

// SendDocument creates a Send-Document request for an existing job. Set
// last for the final document of the job.
func SendDocument(uri string, jobID int32, payload io.Reader, last bool) *Builder {
	b := NewBuilder(tag.OpSendDocument, uri)
	b.payload = payload
	b.OperationAttribute(message.MustAttribute(tag.AttrJobID, values.Integer(jobID)))
	b.OperationAttribute(message.MustAttribute(tag.AttrLastDocument, values.Boolean(last)))

	return b
}

// SendURI creates a Send-URI request for an existing job.
func SendURI(uri string, jobID int32, documentURI string, last bool) *Builder {
	b := NewBuilder(tag.OpSendURI, uri)
	b.OperationAttribute(message.MustAttribute(tag.AttrJobID, values.Integer(jobID)))
	b.OperationAttribute(message.MustAttribute(tag.AttrDocumentURI, values.URI(documentURI)))
	b.OperationAttribute(message.MustAttribute(tag.AttrLastDocument, values.Boolean(last)))

	return b
}

// CancelJob creates a Cancel-Job request.
func CancelJob(uri string, jobID int32) *Builder {
	b := NewBuilder(tag.OpCancelJob, uri)

	return b.OperationAttribute(message.MustAttribute(tag.AttrJobID, values.Integer(jobID)))
}

// GetJobAttributes creates a Get-Job-Attributes request.
func GetJobAttributes(uri string, jobID int32) *Builder {
	b := NewBuilder(tag.OpGetJobAttributes, uri)

	return b.OperationAttribute(message.MustAttribute(tag.AttrJobID, values.Integer(jobID)))
}

// GetJobs creates a Get-Jobs request.
func GetJobs(uri string) *Builder {
	return NewBuilder(tag.OpGetJobs, uri)
}

// GetPrinterAttributes creates a Get-Printer-Attributes request. Use
// RequestedAttributes to limit the returned set.
func GetPrinterAttributes(uri string) *Builder {
	return NewBuilder(tag.OpGetPrinterAttributes, uri)
}

// PurgeJobs creates a Purge-Jobs request.
func PurgeJobs(uri string) *Builder {
	return NewBuilder(tag.OpPurgeJobs, uri)
}

// CupsGetDefault creates a CUPS-Get-Default request.
func CupsGetDefault(uri string) *Builder {
	return NewBuilder(tag.OpCupsGetDefault, uri)
}

// CupsGetPrinters creates a CUPS-Get-Printers request.
func CupsGetPrinters(uri string) *Builder {
	return NewBuilder(tag.OpCupsGetPrinters, uri)
}

// Version overrides the protocol version, which defaults to 1.1.
func (b *Builder) Version(v message.Version) *Builder {
	b.version = v

	return b
}

// RequestID sets the caller-assigned correlation token. It must be
// non-zero; the default is 1.
func (b *Builder) RequestID(id uint32) *Builder {
	if id == 0 {
		return b.fail(errs.ErrZeroRequestID)
	}
	b.requestID = id

	return b
}

// Charset overrides the attributes-charset value.
func (b *Builder) Charset(charset string) *Builder {
	b.charset = charset

	return b
}

// NaturalLanguage overrides the attributes-natural-language value.
func (b *Builder) NaturalLanguage(lang string) *Builder {
	b.language = lang

	return b
}

// JobTarget addresses the operation at a job-uri instead of a
// printer-uri.
func (b *Builder) JobTarget() *Builder {
	b.useJobURI = true

	return b
}

// UserName sets the requesting-user-name operation attribute.
func (b *Builder) UserName(name string) *Builder {
	return b.OperationAttribute(message.MustAttribute(tag.AttrRequestingUserName, values.Name(name)))
}

// JobName sets the job-name operation attribute.
func (b *Builder) JobName(name string) *Builder {
	return b.OperationAttribute(message.MustAttribute(tag.AttrJobName, values.Name(name)))
}

// DocumentFormat sets the document-format operation attribute.
func (b *Builder) DocumentFormat(mime string) *Builder {
	return b.OperationAttribute(message.MustAttribute(tag.AttrDocumentFormat, values.MimeMediaType(mime)))
}

// RequestedAttributes sets the requested-attributes operation attribute.
func (b *Builder) RequestedAttributes(names ...string) *Builder {
	if len(names) == 0 {
		return b
	}
	vals := make([]values.Value, len(names))
	for i, n := range names {
		vals[i] = values.Keyword(n)
	}
	attr, err := message.NewAttribute(tag.AttrRequestedAttributes, vals...)
	if err != nil {
		return b.fail(err)
	}

	return b.OperationAttribute(attr)
}

// MyJobs sets the my-jobs operation attribute for Get-Jobs.
func (b *Builder) MyJobs(v bool) *Builder {
	return b.OperationAttribute(message.MustAttribute(tag.AttrMyJobs, values.Boolean(v)))
}

// Limit sets the limit operation attribute for Get-Jobs.
func (b *Builder) Limit(n int32) *Builder {
	return b.OperationAttribute(message.MustAttribute(tag.AttrLimit, values.Integer(n)))
}

// Compression declares the compression operation attribute and, at Build
// time, wraps the payload stream in the matching codec.
func (b *Builder) Compression(keyword string) *Builder {
	if _, err := compress.GetCodec(keyword); err != nil {
		return b.fail(err)
	}
	b.compression = keyword

	return b
}

// OperationAttribute appends a caller-supplied operation attribute. The
// builder preserves the order of appended attributes.
func (b *Builder) OperationAttribute(a message.Attribute) *Builder {
	b.opAttrs = append(b.opAttrs, a)

	return b
}

// JobAttribute appends an attribute to the job-attributes group, e.g.
// copies or media.
func (b *Builder) JobAttribute(a message.Attribute) *Builder {
	b.jobAttrs = append(b.jobAttrs, a)

	return b
}

// Payload attaches or replaces the document payload stream.
func (b *Builder) Payload(r io.Reader) *Builder {
	b.payload = r

	return b
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}

	return b
}

// Build assembles the request message. The operation-attributes group
// opens with attributes-charset, attributes-natural-language and the
// target URI in that fixed order, unless the caller supplied one of them
// explicitly; caller attributes follow in their original order. A
// non-empty job-attributes group is appended after the operation group.
func (b *Builder) Build() (*message.Message, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.uri == "" {
		return nil, fmt.Errorf("%w: empty", errs.ErrInvalidURI)
	}

	msg := message.NewRequest(b.version, b.op, b.requestID)

	op, err := message.NewGroup(tag.OperationAttributes)
	if err != nil {
		return nil, err
	}

	if !b.hasOpAttr(tag.AttrAttributesCharset) {
		op.Add(message.MustAttribute(tag.AttrAttributesCharset, values.Charset(b.charset)))
	}
	if !b.hasOpAttr(tag.AttrAttributesNaturalLanguage) {
		op.Add(message.MustAttribute(tag.AttrAttributesNaturalLanguage, values.NaturalLanguage(b.language)))
	}

	target := tag.AttrPrinterURI
	if b.useJobURI {
		target = tag.AttrJobURI
	}
	if !b.hasOpAttr(target) {
		attr, err := message.NewAttribute(target, values.URI(b.uri))
		if err != nil {
			return nil, err
		}
		op.Add(attr)
	}

	if b.compression != "" && b.compression != compress.KeywordNone {
		op.Add(message.MustAttribute(tag.AttrCompression, values.Keyword(b.compression)))
	}

	op.Attrs = append(op.Attrs, b.opAttrs...)
	msg.Groups = append(msg.Groups, op)

	if len(b.jobAttrs) > 0 {
		job, err := message.NewGroup(tag.JobAttributes, b.jobAttrs...)
		if err != nil {
			return nil, err
		}
		msg.Groups = append(msg.Groups, job)
	}

	msg.Payload = b.payload
	if b.payload != nil && b.compression != "" {
		compressed, err := compress.NewReader(b.compression, b.payload)
		if err != nil {
			return nil, err
		}
		msg.Payload = compressed
	}

	return msg, nil
}

func (b *Builder) hasOpAttr(name string) bool {
	for _, a := range b.opAttrs {
		if a.Name == name {
			return true
		}
	}

	return false
}
