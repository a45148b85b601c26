package tag

import "fmt"

// Status is a 2-byte IPP status code carried in the code field of a
// response message.
type Status uint16

// Successful status codes (RFC 8011 appendix B).
const (
	StatusOk                    Status = 0x0000 // successful-ok
	StatusOkIgnoredAttributes   Status = 0x0001 // successful-ok-ignored-or-substituted-attributes
	StatusOkConflictingAttrs    Status = 0x0002 // successful-ok-conflicting-attributes
	StatusOkIgnoredSubscription Status = 0x0003 // successful-ok-ignored-subscriptions
)

// Client error status codes.
const (
	StatusErrorBadRequest          Status = 0x0400 // client-error-bad-request
	StatusErrorForbidden           Status = 0x0401 // client-error-forbidden
	StatusErrorNotAuthenticated    Status = 0x0402 // client-error-not-authenticated
	StatusErrorNotAuthorized       Status = 0x0403 // client-error-not-authorized
	StatusErrorNotPossible         Status = 0x0404 // client-error-not-possible
	StatusErrorTimeout             Status = 0x0405 // client-error-timeout
	StatusErrorNotFound            Status = 0x0406 // client-error-not-found
	StatusErrorGone                Status = 0x0407 // client-error-gone
	StatusErrorRequestEntity       Status = 0x0408 // client-error-request-entity-too-large
	StatusErrorRequestValue        Status = 0x0409 // client-error-request-value-too-long
	StatusErrorDocumentFormat      Status = 0x040a // client-error-document-format-not-supported
	StatusErrorAttributesOrValues  Status = 0x040b // client-error-attributes-or-values-not-supported
	StatusErrorURIScheme           Status = 0x040c // client-error-uri-scheme-not-supported
	StatusErrorCharset             Status = 0x040d // client-error-charset-not-supported
	StatusErrorConflictingAttrs    Status = 0x040e // client-error-conflicting-attributes
	StatusErrorCompressionNotSupp  Status = 0x040f // client-error-compression-not-supported
	StatusErrorCompressionErr      Status = 0x0410 // client-error-compression-error
	StatusErrorDocumentFormatErr   Status = 0x0411 // client-error-document-format-error
	StatusErrorDocumentAccessError Status = 0x0412 // client-error-document-access-error
)

// Server error status codes.
const (
	StatusErrorInternal             Status = 0x0500 // server-error-internal-error
	StatusErrorOperationNotSupp     Status = 0x0501 // server-error-operation-not-supported
	StatusErrorServiceUnavailable   Status = 0x0502 // server-error-service-unavailable
	StatusErrorVersionNotSupp       Status = 0x0503 // server-error-version-not-supported
	StatusErrorDevice               Status = 0x0504 // server-error-device-error
	StatusErrorTemporary            Status = 0x0505 // server-error-temporary-error
	StatusErrorNotAccepting         Status = 0x0506 // server-error-not-accepting-jobs
	StatusErrorBusy                 Status = 0x0507 // server-error-busy
	StatusErrorJobCanceled          Status = 0x0508 // server-error-job-canceled
	StatusErrorMultipleDocsNotSupp  Status = 0x0509 // server-error-multiple-document-jobs-not-supported
	StatusErrorPrinterIsDeactivated Status = 0x050a // server-error-printer-is-deactivated
)

// StatusClass partitions the status code space.
type StatusClass uint8

const (
	ClassSuccessful  StatusClass = iota // 0x0000-0x00ff
	ClassClientError                    // 0x0400-0x04ff
	ClassServerError                    // 0x0500-0x05ff
	ClassUnknown                        // anything else, surfaced not rejected
)

// Class classifies s into the ranges defined by RFC 8011 appendix B.
// Codes outside the known ranges classify as ClassUnknown; they are
// surfaced to the caller rather than rejected.
func (s Status) Class() StatusClass {
	switch {
	case s <= 0x00ff:
		return ClassSuccessful
	case s >= 0x0400 && s <= 0x04ff:
		return ClassClientError
	case s >= 0x0500 && s <= 0x05ff:
		return ClassServerError
	default:
		return ClassUnknown
	}
}

func (c StatusClass) String() string {
	switch c {
	case ClassSuccessful:
		return "successful"
	case ClassClientError:
		return "client-error"
	case ClassServerError:
		return "server-error"
	default:
		return "unknown"
	}
}

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "successful-ok"
	case StatusOkIgnoredAttributes:
		return "successful-ok-ignored-or-substituted-attributes"
	case StatusOkConflictingAttrs:
		return "successful-ok-conflicting-attributes"
	case StatusErrorBadRequest:
		return "client-error-bad-request"
	case StatusErrorForbidden:
		return "client-error-forbidden"
	case StatusErrorNotAuthenticated:
		return "client-error-not-authenticated"
	case StatusErrorNotAuthorized:
		return "client-error-not-authorized"
	case StatusErrorNotPossible:
		return "client-error-not-possible"
	case StatusErrorTimeout:
		return "client-error-timeout"
	case StatusErrorNotFound:
		return "client-error-not-found"
	case StatusErrorGone:
		return "client-error-gone"
	case StatusErrorRequestEntity:
		return "client-error-request-entity-too-large"
	case StatusErrorRequestValue:
		return "client-error-request-value-too-long"
	case StatusErrorDocumentFormat:
		return "client-error-document-format-not-supported"
	case StatusErrorAttributesOrValues:
		return "client-error-attributes-or-values-not-supported"
	case StatusErrorURIScheme:
		return "client-error-uri-scheme-not-supported"
	case StatusErrorCharset:
		return "client-error-charset-not-supported"
	case StatusErrorConflictingAttrs:
		return "client-error-conflicting-attributes"
	case StatusErrorCompressionNotSupp:
		return "client-error-compression-not-supported"
	case StatusErrorCompressionErr:
		return "client-error-compression-error"
	case StatusErrorDocumentFormatErr:
		return "client-error-document-format-error"
	case StatusErrorDocumentAccessError:
		return "client-error-document-access-error"
	case StatusErrorInternal:
		return "server-error-internal-error"
	case StatusErrorOperationNotSupp:
		return "server-error-operation-not-supported"
	case StatusErrorServiceUnavailable:
		return "server-error-service-unavailable"
	case StatusErrorVersionNotSupp:
		return "server-error-version-not-supported"
	case StatusErrorDevice:
		return "server-error-device-error"
	case StatusErrorTemporary:
		return "server-error-temporary-error"
	case StatusErrorNotAccepting:
		return "server-error-not-accepting-jobs"
	case StatusErrorBusy:
		return "server-error-busy"
	case StatusErrorJobCanceled:
		return "server-error-job-canceled"
	case StatusErrorMultipleDocsNotSupp:
		return "server-error-multiple-document-jobs-not-supported"
	case StatusErrorPrinterIsDeactivated:
		return "server-error-printer-is-deactivated"
	default:
		return fmt.Sprintf("status-0x%04x", uint16(s))
	}
}
