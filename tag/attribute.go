package tag

// Well-known attribute names used by the request builders and response
// helpers. The full registry lives at IANA; only names this module touches
// are listed.
const (
	AttrAttributesCharset         = "attributes-charset"
	AttrAttributesNaturalLanguage = "attributes-natural-language"
	AttrPrinterURI                = "printer-uri"
	AttrJobURI                    = "job-uri"
	AttrJobID                     = "job-id"
	AttrJobName                   = "job-name"
	AttrJobState                  = "job-state"
	AttrJobStateReasons           = "job-state-reasons"
	AttrRequestingUserName        = "requesting-user-name"
	AttrRequestedAttributes       = "requested-attributes"
	AttrDocumentName              = "document-name"
	AttrDocumentFormat            = "document-format"
	AttrDocumentURI               = "document-uri"
	AttrLastDocument              = "last-document"
	AttrCompression               = "compression"
	AttrStatusMessage             = "status-message"
	AttrMyJobs                    = "my-jobs"
	AttrLimit                     = "limit"
	AttrWhichJobs                 = "which-jobs"
	AttrIppAttributeFidelity      = "ipp-attribute-fidelity"
	AttrOperationsSupported       = "operations-supported"
	AttrPrinterName               = "printer-name"
	AttrPrinterState              = "printer-state"
	AttrDeviceURI                 = "device-uri"
)
