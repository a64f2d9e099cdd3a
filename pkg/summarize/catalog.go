// Package summarize produces templated meeting summaries from transcripts.
// Generation is deliberately mock: a fixed switch over four string templates
// applied to the first lines of the transcript, behind an artificial delay.
// There is no inference engine here.
package summarize

// Model describes a selectable mock AI model. The catalog is configuration,
// not runtime state.
type Model struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Template describes a named summary layout.
type Template struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Content string `json:"content"`
}

// DefaultModel is used when the client does not pick one.
const DefaultModel = "lumio-pro"

// Template keys.
const (
	TemplateStandard    = "standard"
	TemplateDetailed    = "detailed"
	TemplateActionItems = "action-items"
	TemplateExecutive   = "executive"
)

// models is the static mock model catalog, keyed by model identifier.
var models = map[string]Model{
	"lumio-swift": {
		Key:         "lumio-swift",
		Label:       "Lumio Swift",
		Description: "Fast drafts with lighter detail",
	},
	"lumio-pro": {
		Key:         "lumio-pro",
		Label:       "Lumio Pro",
		Description: "Balanced quality and speed",
	},
	"lumio-max": {
		Key:         "lumio-max",
		Label:       "Lumio Max",
		Description: "Most thorough summaries",
	},
}

// modelOrder fixes the catalog listing order for the UI.
var modelOrder = []string{"lumio-swift", "lumio-pro", "lumio-max"}

// templates is the static template catalog, keyed by template identifier.
var templates = map[string]Template{
	TemplateStandard: {
		Key:     TemplateStandard,
		Label:   "Standard",
		Content: "Key points, decisions, and action items",
	},
	TemplateDetailed: {
		Key:     TemplateDetailed,
		Label:   "Detailed",
		Content: "Full discussion notes with per-topic breakdown",
	},
	TemplateActionItems: {
		Key:     TemplateActionItems,
		Label:   "Action Items",
		Content: "Only the follow-ups, owners, and deadlines",
	},
	TemplateExecutive: {
		Key:     TemplateExecutive,
		Label:   "Executive Brief",
		Content: "One-paragraph outcome summary for leadership",
	},
}

// templateOrder fixes the catalog listing order for the UI.
var templateOrder = []string{TemplateStandard, TemplateDetailed, TemplateActionItems, TemplateExecutive}

// Models returns the mock model catalog in display order.
func Models() []Model {
	out := make([]Model, 0, len(modelOrder))
	for _, key := range modelOrder {
		out = append(out, models[key])
	}
	return out
}

// Templates returns the template catalog in display order.
func Templates() []Template {
	out := make([]Template, 0, len(templateOrder))
	for _, key := range templateOrder {
		out = append(out, templates[key])
	}
	return out
}

// LookupModel returns the model for key.
func LookupModel(key string) (Model, bool) {
	m, ok := models[key]
	return m, ok
}

// LookupTemplate returns the template for key.
func LookupTemplate(key string) (Template, bool) {
	t, ok := templates[key]
	return t, ok
}
