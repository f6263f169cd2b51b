package constraint

// Type enumerates the closed set of challenge rule kinds. Category types
// carry tag lists, bound types carry a single strictly positive number.
type Type string

const (
	TypeForbiddenTools   Type = "FORBIDDEN_TOOLS"
	TypeForbiddenShapes  Type = "FORBIDDEN_SHAPES"
	TypeMaxShapes        Type = "MAX_SHAPES"
	TypeMinShapes        Type = "MIN_SHAPES"
	TypeMaxColors        Type = "MAX_COLORS"
	TypeMinColors        Type = "MIN_COLORS"
	TypeForbiddenContent Type = "FORBIDDEN_CONTENT"
	TypeMinFontSize      Type = "MIN_FONT_SIZE"
	TypeMaxFontSize      Type = "MAX_FONT_SIZE"
	TypeRequiredColors   Type = "REQUIRED_COLORS"
)

// Tag values understood by the FORBIDDEN_TOOLS constraint.
const (
	ToolText   = "text"
	ToolShapes = "shapes"
	ToolImages = "images"
)

// ContentImages is the FORBIDDEN_CONTENT tag for externally sourced images.
const ContentImages = "images"

// Constraint is one structured rule attached to a challenge. Description is
// display text; when it originates from a legacy rule string it preserves
// that string verbatim.
type Constraint struct {
	Type        Type   `json:"type"`
	Value       Value  `json:"value"`
	Description string `json:"description,omitempty"`
}

// Set is the ordered constraint collection for one challenge or session.
// Order is display order; when multiple constraints share a type, queries
// consult the first one and later entries are shadowed.
type Set []Constraint

// Definition carries the display metadata and default value for a Type.
type Definition struct {
	Type         Type
	Label        string
	Description  string
	DefaultValue Value
}

// Definitions maps every constraint type to its display metadata. The
// canonical description doubles as the default Constraint.Description when a
// caller constructs a rule without one.
var Definitions = map[Type]Definition{
	TypeForbiddenTools: {
		Type:         TypeForbiddenTools,
		Label:        "Forbidden Tools",
		Description:  "Restrict certain tools from being used",
		DefaultValue: Tags(),
	},
	TypeForbiddenShapes: {
		Type:         TypeForbiddenShapes,
		Label:        "Forbidden Shapes",
		Description:  "Restrict certain shape types from being used",
		DefaultValue: Tags(),
	},
	TypeMaxShapes: {
		Type:         TypeMaxShapes,
		Label:        "Maximum Shapes",
		Description:  "Limit the number of shapes allowed",
		DefaultValue: Number(10),
	},
	TypeMinShapes: {
		Type:         TypeMinShapes,
		Label:        "Minimum Shapes",
		Description:  "Require minimum number of shapes",
		DefaultValue: Number(1),
	},
	TypeMaxColors: {
		Type:         TypeMaxColors,
		Label:        "Maximum Colors",
		Description:  "Limit the number of unique colors",
		DefaultValue: Number(5),
	},
	TypeMinColors: {
		Type:         TypeMinColors,
		Label:        "Minimum Colors",
		Description:  "Require minimum number of unique colors",
		DefaultValue: Number(1),
	},
	TypeForbiddenContent: {
		Type:         TypeForbiddenContent,
		Label:        "Forbidden Content",
		Description:  "Restrict certain content types",
		DefaultValue: Tags(),
	},
	TypeMinFontSize: {
		Type:         TypeMinFontSize,
		Label:        "Minimum Font Size",
		Description:  "Set minimum font size for text",
		DefaultValue: Number(8),
	},
	TypeMaxFontSize: {
		Type:         TypeMaxFontSize,
		Label:        "Maximum Font Size",
		Description:  "Set maximum font size for text",
		DefaultValue: Number(200),
	},
	TypeRequiredColors: {
		Type:         TypeRequiredColors,
		Label:        "Required Colors",
		Description:  "Force using specific colors",
		DefaultValue: Tags(),
	},
}

// Option pairs a machine tag with its display label for editor pickers.
type Option struct {
	Value string
	Label string
}

// ForbiddenToolOptions lists the tags the editor can offer for
// FORBIDDEN_TOOLS constraints.
var ForbiddenToolOptions = []Option{
	{Value: ToolText, Label: "Text"},
	{Value: ToolShapes, Label: "Shapes"},
	{Value: ToolImages, Label: "Images"},
}

// ForbiddenContentOptions lists the tags the editor can offer for
// FORBIDDEN_CONTENT constraints.
var ForbiddenContentOptions = []Option{
	{Value: "gradients", Label: "Gradients"},
	{Value: ContentImages, Label: "External Images"},
	{Value: "textures", Label: "Textures"},
}
