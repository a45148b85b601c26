package tag

// Op is a 2-byte IPP operation identifier carried in the code field of a
// request message.
type Op uint16

// Operations defined by RFC 8011 section 4.4.15.
const (
	OpPrintJob             Op = 0x0002 // Print-Job
	OpPrintURI             Op = 0x0003 // Print-URI
	OpValidateJob          Op = 0x0004 // Validate-Job
	OpCreateJob            Op = 0x0005 // Create-Job
	OpSendDocument         Op = 0x0006 // Send-Document
	OpSendURI              Op = 0x0007 // Send-URI
	OpCancelJob            Op = 0x0008 // Cancel-Job
	OpGetJobAttributes     Op = 0x0009 // Get-Job-Attributes
	OpGetJobs              Op = 0x000a // Get-Jobs
	OpGetPrinterAttributes Op = 0x000b // Get-Printer-Attributes
	OpHoldJob              Op = 0x000c // Hold-Job
	OpReleaseJob           Op = 0x000d // Release-Job
	OpRestartJob           Op = 0x000e // Restart-Job
	OpPausePrinter         Op = 0x0010 // Pause-Printer
	OpResumePrinter        Op = 0x0011 // Resume-Printer
	OpPurgeJobs            Op = 0x0012 // Purge-Jobs
)

// CUPS extension operations.
const (
	OpCupsGetDefault  Op = 0x4001 // CUPS-Get-Default
	OpCupsGetPrinters Op = 0x4002 // CUPS-Get-Printers
)

func (o Op) String() string {
	switch o {
	case OpPrintJob:
		return "Print-Job"
	case OpPrintURI:
		return "Print-URI"
	case OpValidateJob:
		return "Validate-Job"
	case OpCreateJob:
		return "Create-Job"
	case OpSendDocument:
		return "Send-Document"
	case OpSendURI:
		return "Send-URI"
	case OpCancelJob:
		return "Cancel-Job"
	case OpGetJobAttributes:
		return "Get-Job-Attributes"
	case OpGetJobs:
		return "Get-Jobs"
	case OpGetPrinterAttributes:
		return "Get-Printer-Attributes"
	case OpHoldJob:
		return "Hold-Job"
	case OpReleaseJob:
		return "Release-Job"
	case OpRestartJob:
		return "Restart-Job"
	case OpPausePrinter:
		return "Pause-Printer"
	case OpResumePrinter:
		return "Resume-Printer"
	case OpPurgeJobs:
		return "Purge-Jobs"
	case OpCupsGetDefault:
		return "CUPS-Get-Default"
	case OpCupsGetPrinters:
		return "CUPS-Get-Printers"
	default:
		return "Unknown-Operation"
	}
}
