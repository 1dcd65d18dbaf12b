package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dmitrijs2005/edushare/internal/client/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// HTMLRenderer writes standalone HTML documents.
type HTMLRenderer struct{}

var _ Renderer = HTMLRenderer{}

type listPage struct {
	Title string
	Empty string
	Cards []Card
}

type detailPage struct {
	Title    string
	Resource models.Resource
	Fields   []Field
}

func (HTMLRenderer) List(w io.Writer, v Variant, resources []models.Resource) error {
	page := listPage{
		Title: v.String(),
		Empty: EmptyMessage,
		Cards: Cards(v, resources),
	}
	if err := pageTemplates.ExecuteTemplate(w, "list.html", page); err != nil {
		return fmt.Errorf("render list: %w", err)
	}
	return nil
}

func (HTMLRenderer) Detail(w io.Writer, r models.Resource) error {
	page := detailPage{
		Title:    r.Title,
		Resource: r,
		Fields:   DetailFields(r),
	}
	if err := pageTemplates.ExecuteTemplate(w, "detail.html", page); err != nil {
		return fmt.Errorf("render detail: %w", err)
	}
	return nil
}
