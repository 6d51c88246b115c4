package email

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/flexxoo/website/pkg/logger"
)

//go:embed templates/*.hbs
var embeddedTemplates embed.FS

const templateExt = ".txt.hbs"

// TemplateService renders the plain-text bodies attached to lead
// notifications using Handlebars.
//
// Templates live in templates/<name>.txt.hbs. Values are inserted with
// triple-stash since the output is text, not HTML.
type TemplateService struct {
	fsys fs.FS
	log  *slog.Logger

	templateCache map[string]*raymond.Template
	mu            sync.RWMutex
}

// TemplateContext is the data passed to templates
type TemplateContext map[string]any

// NewTemplateService creates a template service over the embedded templates.
func NewTemplateService(log *slog.Logger) *TemplateService {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(fmt.Sprintf("email templates: %v", err))
	}
	return NewTemplateServiceFS(sub, log)
}

// NewTemplateServiceFS creates a template service reading from fsys.
func NewTemplateServiceFS(fsys fs.FS, log *slog.Logger) *TemplateService {
	return &TemplateService{
		fsys:          fsys,
		log:           log.With(logger.Scope("email.template")),
		templateCache: make(map[string]*raymond.Template),
	}
}

// Names lists the available templates.
func (ts *TemplateService) Names() ([]string, error) {
	entries, err := fs.ReadDir(ts.fsys, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), templateExt) {
			names = append(names, strings.TrimSuffix(e.Name(), templateExt))
		}
	}
	return names, nil
}

// loadTemplate parses a template on first use and caches it
func (ts *TemplateService) loadTemplate(name string) (*raymond.Template, error) {
	ts.mu.RLock()
	tmpl, ok := ts.templateCache[name]
	ts.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if tmpl, ok := ts.templateCache[name]; ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(ts.fsys, name+templateExt)
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", name)
	}

	tmpl, err = raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	ts.templateCache[name] = tmpl
	ts.log.Debug("loaded template", slog.String("name", name))
	return tmpl, nil
}

// Render renders a template with the given context
func (ts *TemplateService) Render(name string, ctx TemplateContext) (string, error) {
	tmpl, err := ts.loadTemplate(name)
	if err != nil {
		return "", err
	}

	out, err := tmpl.Exec(map[string]any(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return strings.TrimSpace(out), nil
}
