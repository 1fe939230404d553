package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config (E100-E199)
	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No scorer-ui.json was found at the given path.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The server port must be between 0 and 65535.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "The log level must be one of debug, info, warn or error.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid asset manifest",
		Detail:   "The asset manifest could not be loaded.",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Invalid static prefix",
		Detail:   "The static asset prefix must start and end with a slash.",
	},

	// Publish (E200-E299)
	"E200": {
		Category: CategoryPublish,
		Message:  "No bucket configured",
		Detail:   "Publishing requires a destination S3 bucket.",
	},
	"E201": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "An object could not be written to the bucket.",
	},
	"E202": {
		Category: CategoryPublish,
		Message:  "Render failed",
		Detail:   "A footer variant could not be rendered for publishing.",
	},
	"E203": {
		Category: CategoryPublish,
		Message:  "Asset read failed",
		Detail:   "A static asset could not be read for publishing.",
	},
	"E204": {
		Category: CategoryPublish,
		Message:  "Listing failed",
		Detail:   "The objects under the publish prefix could not be listed.",
	},
	"E205": {
		Category: CategoryPublish,
		Message:  "Delete failed",
		Detail:   "A stale object could not be removed from the bucket.",
	},
	"E206": {
		Category: CategoryPublish,
		Message:  "Refusing to prune without a prefix",
		Detail:   "Pruning an empty prefix would delete every object in the bucket.",
	},
	"E207": {
		Category: CategoryPublish,
		Message:  "AWS configuration failed",
		Detail:   "The AWS shared configuration or credentials could not be loaded.",
	},

	// Server (E300-E399)
	"E300": {
		Category: CategoryServer,
		Message:  "Server failed to start",
		Detail:   "The HTTP listener could not be started.",
	},
	"E301": {
		Category: CategoryServer,
		Message:  "Server shutdown failed",
		Detail:   "In-flight requests did not finish before the shutdown timeout.",
	},

	// CLI (E400-E499)
	"E400": {
		Category: CategoryCLI,
		Message:  "Output failed",
		Detail:   "The rendered footer could not be written.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
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
