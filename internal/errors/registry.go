package errors

import "sort"

const docBase = "https://vango.dev/docs/ui/errors/"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E109)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "vangoui.json was not found in the current directory or any parent.",
		DocURL:   docBase + "E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "vangoui.json could not be parsed as JSON.",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Config validation failed",
		Detail:   "One or more settings in vangoui.json are out of range.",
		DocURL:   docBase + "E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Environment file could not be loaded",
		Detail:   "The .env file exists but could not be read.",
		DocURL:   docBase + "E103",
	},

	// ============================================
	// Story Errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryStory,
		Message:  "Story catalog could not be parsed",
		Detail:   "The story catalog is not valid YAML.",
		DocURL:   docBase + "E110",
	},
	"E111": {
		Category: CategoryStory,
		Message:  "Story validation failed",
		Detail:   "A story is missing a required field or has an invalid value.",
		DocURL:   docBase + "E111",
	},
	"E112": {
		Category: CategoryStory,
		Message:  "Story not found",
		Detail:   "No story with this id exists in the catalog.",
		DocURL:   docBase + "E112",
	},
	"E113": {
		Category: CategoryStory,
		Message:  "Duplicate story id",
		Detail:   "Story ids must be unique within a catalog.",
		DocURL:   docBase + "E113",
	},
	"E114": {
		Category: CategoryStory,
		Message:  "Invalid story arguments",
		Detail:   "The story's args could not be decoded for its component kind.",
		DocURL:   docBase + "E114",
	},

	// ============================================
	// Gallery Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryGallery,
		Message:  "Gallery server failed",
		Detail:   "The HTTP server could not start or stopped unexpectedly.",
		DocURL:   docBase + "E120",
	},
	"E121": {
		Category: CategoryGallery,
		Message:  "Live session upgrade failed",
		Detail:   "The WebSocket handshake for a live story was rejected.",
		DocURL:   docBase + "E121",
	},
	"E122": {
		Category: CategoryGallery,
		Message:  "Invalid live event",
		Detail:   "A live session frame could not be decoded.",
		DocURL:   docBase + "E122",
	},
	"E123": {
		Category: CategoryGallery,
		Message:  "Handler not found",
		Detail:   "No handler is registered for this element and event. The story may have re-rendered.",
		DocURL:   docBase + "E123",
	},
	"E124": {
		Category: CategoryGallery,
		Message:  "Render failed",
		Detail:   "The story could not be rendered to HTML.",
		DocURL:   docBase + "E124",
	},

	// ============================================
	// Export Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategoryExport,
		Message:  "Export write failed",
		Detail:   "A rendered page could not be written to the export target.",
		DocURL:   docBase + "E130",
	},
	"E131": {
		Category: CategoryExport,
		Message:  "S3 upload failed",
		Detail:   "PutObject returned an error.",
		DocURL:   docBase + "E131",
	},
	"E132": {
		Category: CategoryExport,
		Message:  "Invalid export target",
		Detail:   "The export target must be a directory path or an s3://bucket/prefix URL.",
		DocURL:   docBase + "E132",
	},

	// ============================================
	// CLI Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with missing or invalid arguments.",
		DocURL:   docBase + "E140",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Terminal preview failed",
		Detail:   "The terminal preview exited with an error.",
		DocURL:   docBase + "E141",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
