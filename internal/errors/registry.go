package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Layout errors (E001-E019)

	"E001": {
		Category: CategoryLayout,
		Message:  "Layout file not readable",
		Detail:   "The layout file does not exist or cannot be opened.",
	},
	"E002": {
		Category: CategoryLayout,
		Message:  "Invalid layout syntax",
		Detail:   "The layout file is not valid YAML or does not match the layout schema.",
	},
	"E003": {
		Category: CategoryLayout,
		Message:  "Forge entry name count mismatch",
		Detail:   "Each forge entry must list exactly one name per element its args create.",
	},
	"E004": {
		Category: CategoryLayout,
		Message:  "Unknown node name",
		Detail:   "A name used in styles or hierarchy is not declared by any forge entry.",
	},
	"E005": {
		Category: CategoryLayout,
		Message:  "Duplicate node name",
		Detail:   "Node names must be unique across all forge entries.",
	},
	"E006": {
		Category: CategoryLayout,
		Message:  "Invalid forge argument",
		Detail:   "Forge args may only contain tag names and property maps.",
	},
	"E007": {
		Category: CategoryLayout,
		Message:  "Invalid hierarchy item",
		Detail:   "Hierarchy items must be node names or nested lists.",
	},

	// Host errors (E020-E039)

	"E020": {
		Category: CategoryHost,
		Message:  "Element rejected by host",
		Detail:   "The tree host refused to create an element, usually because of an invalid tag name.",
	},
	"E021": {
		Category: CategoryHost,
		Message:  "Attachment rejected by host",
		Detail:   "The tree host refused to attach a node, for example because it would create a cycle.",
	},
	"E022": {
		Category: CategoryHost,
		Message:  "Unknown host",
		Detail:   "Supported hosts are \"vdom\" and \"html\".",
	},

	// Config errors (E040-E059)

	"E040": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "forge.json could not be parsed.",
	},
	"E041": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// Publish errors (E060-E079)

	"E060": {
		Category: CategoryPublish,
		Message:  "Publish target not configured",
		Detail:   "Set publish.bucket in forge.json or pass --bucket.",
	},
	"E061": {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
