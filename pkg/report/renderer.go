package report

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates
var templatesFS embed.FS

// Renderer converts a Report into a byte representation for one output
// format.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rep Report) ([]byte, error)
}

// templateRenderer renders reports through a pongo2 template from the
// embedded template set. Templates parse lazily on first use.
type templateRenderer struct {
	name        string
	contentType string
	file        string

	once    sync.Once
	tpl     *pongo2.Template
	loadErr error
}

func newTemplateRenderer(name, contentType, file string) *templateRenderer {
	return &templateRenderer{name: name, contentType: contentType, file: file}
}

func (r *templateRenderer) Name() string {
	return r.name
}

func (r *templateRenderer) ContentType() string {
	return r.contentType
}

func (r *templateRenderer) Render(ctx context.Context, rep Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, err := r.load()
	if err != nil {
		return nil, err
	}

	out, err := tpl.ExecuteBytes(pongo2.Context{
		"challenge":  rep.Challenge,
		"summary":    rep.Summary,
		"violations": rep.Violations,
		"clean":      rep.Clean(),
	})
	if err != nil {
		return nil, fmt.Errorf("report: render %s: %w", r.name, err)
	}
	return out, nil
}

func (r *templateRenderer) load() (*pongo2.Template, error) {
	r.once.Do(func() {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			r.loadErr = fmt.Errorf("report: open templates: %w", err)
			return
		}
		set := pongo2.NewSet("report", pongo2.NewFSLoader(sub))
		tpl, err := set.FromFile(r.file)
		if err != nil {
			r.loadErr = fmt.Errorf("report: parse template %s: %w", r.file, err)
			return
		}
		r.tpl = tpl
	})
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.tpl == nil {
		return nil, errors.New("report: template not loaded")
	}
	return r.tpl, nil
}

// NewTextRenderer returns the plain-text report renderer.
func NewTextRenderer() Renderer {
	return newTemplateRenderer("text", "text/plain; charset=utf-8", "report.text.tpl")
}

// NewHTMLRenderer returns the HTML report renderer.
func NewHTMLRenderer() Renderer {
	return newTemplateRenderer("html", "text/html; charset=utf-8", "report.html.tpl")
}
