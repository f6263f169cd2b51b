package challenge

import "github.com/pixeldare/darekit/pkg/constraint"

// Challenge bundles one creative task: display copy, the rule payload in
// whichever form the record carries, and presentation hints for the editor.
type Challenge struct {
	Title             string
	Description       string
	Constraints       constraint.RawConstraints
	SuggestedFormat   string
	SuggestedDuration int // minutes
}

// ConstraintSet normalizes the raw rule payload into the structured set.
func (c Challenge) ConstraintSet() constraint.Set {
	return constraint.Normalize(c.Constraints)
}

// Size returns the canvas dimensions for the challenge's suggested format.
func (c Challenge) Size() (FormatSize, bool) {
	size, ok := FormatSizes[c.SuggestedFormat]
	return size, ok
}

// FormatSize is the pixel dimensions of one output format.
type FormatSize struct {
	Width  int
	Height int
}

// FormatSizes maps every supported output format to its canvas dimensions.
var FormatSizes = map[string]FormatSize{
	"instagram":         {Width: 1080, Height: 1080},
	"logo":              {Width: 800, Height: 800},
	"youtube_thumbnail": {Width: 1280, Height: 720},
	"youtube_banner":    {Width: 2560, Height: 1440},
	"facebook_banner":   {Width: 820, Height: 312},
	"linkedin_banner":   {Width: 1584, Height: 396},
	"twitter_post":      {Width: 1200, Height: 675},
	"presentation":      {Width: 1920, Height: 1080},
}

// Fonts lists the families the editor offers for text objects.
var Fonts = []string{
	"Arial",
	"Helvetica",
	"Times New Roman",
	"Georgia",
	"Verdana",
	"Courier New",
	"Comic Sans MS",
	"Impact",
	"Trebuchet MS",
	"Palatino Linotype",
}
