package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/insper-data/insperplot/pkg/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	templates     *template.Template
	templatesOnce sync.Once
	errTemplates  error
)

// funcMap provides template function helpers.
var funcMap = template.FuncMap{
	"odd": func(i int) bool {
		return i%2 == 1
	},
}

// getTemplates returns the parsed templates, loading them once.
func getTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		var parseErr error

		templates, parseErr = template.New("").
			Funcs(funcMap).
			ParseFS(templateFS, "templates/*.html")
		if parseErr != nil {
			errTemplates = fmt.Errorf("parsing templates: %w", parseErr)
		}
	})

	return templates, errTemplates
}

// renderTemplate renders a named template with the given data.
func renderTemplate(name string, data any) (template.HTML, error) {
	tmpl, err := getTemplates()
	if err != nil {
		return "", fmt.Errorf("loading templates: %w", err)
	}

	var buf bytes.Buffer

	err = tmpl.ExecuteTemplate(&buf, name, data)
	if err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return template.HTML(buf.String()), nil
}

// mustRenderTemplate renders a template, panicking on error.
// Use only for embedded templates, where parse errors are a build defect.
func mustRenderTemplate(name string, data any) template.HTML {
	html, err := renderTemplate(name, data)
	if err != nil {
		panic("page: template error: " + err.Error())
	}

	return html
}

// pageTheme is the theme surface the page template consumes.
type pageTheme struct {
	TitleFont  string
	BodyFont   string
	Background string
	Text       string
	TextMuted  string
	Accent     string
	Border     string
}

// themeData converts a chart theme into template styling. The page
// template links the web fonts itself, so the preferred families always
// resolve.
func themeData(t theme.Theme) pageTheme {
	session := theme.Session{WebFontsLoaded: true}

	return pageTheme{
		TitleFont:  t.TitleFamily(session),
		BodyFont:   t.BodyFamily(session),
		Background: t.Background,
		Text:       t.TextColor,
		TextMuted:  t.TextMutedColor,
		Accent:     accentColor,
		Border:     t.GridColor,
	}
}

// pageData holds data for the page template.
type pageData struct {
	Title       string
	Description string
	Brand       string
	Theme       pageTheme
	ExtraCSS    template.CSS
	Header      template.HTML
	Content     template.HTML
	Scripts     template.HTML
}

// headerData holds data for the header template.
type headerData struct {
	Brand       string
	Subtitle    string
	Title       string
	Description string
}

// sectionData holds data for the section template.
type sectionData struct {
	Title    string
	Subtitle string
	Chart    template.HTML
	Hint     *hintData
}

// hintData holds data for hints within sections.
type hintData struct {
	Title string
	Items []template.HTML
}

// cardData holds data for the card template.
type cardData struct {
	Title    string
	Subtitle string
	Content  template.HTML
}

// gridData holds data for the grid template.
type gridData struct {
	Columns int
	Items   []template.HTML
}

// statData holds data for the stat template.
type statData struct {
	Label string
	Value string
	Trend string
}

// tableData holds data for the table template.
type tableData struct {
	Headers []string
	Rows    [][]template.HTML
	Striped bool
}
