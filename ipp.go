// Package ipp implements the Internet Printing Protocol: the attribute
// value model, the binary message codec, and the request/response
// orchestration that drives print operations over a transport.
//
// # Core Features
//
//   - Complete tagged value model (integers, strings, dateTime,
//     resolution, ranges, nested collections, out-of-band markers) with
//     byte-exact round-trip encoding, including unknown tags
//   - Streaming message encoder/decoder: document payloads are never
//     buffered in full, response groups decode before trailing data
//     arrives, truncated input is detected rather than misread
//   - Request builders for the RFC 8011 operations and common CUPS
//     extensions, with the mandatory operation attributes prepended in
//     protocol order
//   - Optional gzip/deflate document compression via the "compression"
//     operation attribute
//   - Pluggable transport; the default speaks HTTP POST with the
//     application/ipp content type and maps ipp:// and ipps:// URIs
//
// # Basic Usage
//
// Submitting a document:
//
//	import "github.com/arloliu/ipp"
//
//	file, _ := os.Open("report.pdf")
//	defer file.Close()
//
//	jobID, err := ipp.Print(ctx, "ipp://printer.local/ipp/print",
//	    ipp.NewPrintJob("ipp://printer.local/ipp/print", file).
//	        UserName("alice").
//	        JobName("report.pdf"))
//
// Querying printer attributes:
//
//	c, _ := ipp.NewClient("ipp://printer.local/ipp/print")
//	resp, err := c.Send(ctx, ipp.NewGetPrinterAttributes(c.URI()).
//	    RequestedAttributes("printer-name", "printer-state"))
//	if err == nil && resp.Err() == nil {
//	    for _, g := range resp.Groups(tag.PrinterAttributes) {
//	        for _, a := range g.Attrs {
//	            fmt.Println(a)
//	        }
//	    }
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the client
// and request packages, simplifying the most common use cases. For
// fine-grained control use the subpackages directly: tag (registries),
// values (value model), message (wire codec), request (builders and
// response interpretation), client (transport), compress (document
// compression).
package ipp

import (
	"context"
	"io"

	"github.com/arloliu/ipp/client"
	"github.com/arloliu/ipp/request"
)

// NewClient creates a client bound to the printer at uri.
func NewClient(uri string, opts ...client.Option) (*client.Client, error) {
	return client.New(uri, opts...)
}

// NewPrintJob creates a Print-Job request builder carrying document.
func NewPrintJob(uri string, document io.Reader) *request.Builder {
	return request.PrintJob(uri, document)
}

// NewCreateJob creates a Create-Job request builder.
func NewCreateJob(uri string) *request.Builder {
	return request.CreateJob(uri)
}

// NewSendDocument creates a Send-Document request builder for a job
// created with NewCreateJob.
func NewSendDocument(uri string, jobID int32, document io.Reader, last bool) *request.Builder {
	return request.SendDocument(uri, jobID, document, last)
}

// NewCancelJob creates a Cancel-Job request builder.
func NewCancelJob(uri string, jobID int32) *request.Builder {
	return request.CancelJob(uri, jobID)
}

// NewGetJobAttributes creates a Get-Job-Attributes request builder.
func NewGetJobAttributes(uri string, jobID int32) *request.Builder {
	return request.GetJobAttributes(uri, jobID)
}

// NewGetPrinterAttributes creates a Get-Printer-Attributes request
// builder.
func NewGetPrinterAttributes(uri string) *request.Builder {
	return request.GetPrinterAttributes(uri)
}

// Print submits a document with a single Print-Job round trip and
// returns the job-id the printer assigned. The builder b is typically
// NewPrintJob with user and job names attached; it is sent as-is.
func Print(ctx context.Context, uri string, b *request.Builder) (int32, error) {
	c, err := client.New(uri)
	if err != nil {
		return 0, err
	}

	resp, err := c.Send(ctx, b)
	if err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, err
	}

	return resp.JobID()
}
