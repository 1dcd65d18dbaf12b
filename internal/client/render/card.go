// Package render turns resource records into cards, for the terminal and
// for standalone HTML pages. Record text is never interpreted: the terminal
// renderer prints control characters literally and the HTML renderer relies
// on html/template escaping.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/edushare/internal/client/models"
)

// EmptyMessage replaces the card list when there is nothing to show.
const EmptyMessage = "No resources found."

// Variant selects which fields and actions a card carries.
type Variant int

const (
	// Catalog is the featured list on the home view.
	Catalog Variant = iota
	// Student is the search view.
	Student
	// Teacher is the own-uploads view.
	Teacher
)

func (v Variant) String() string {
	switch v {
	case Catalog:
		return "Featured Resources"
	case Student:
		return "Browse Resources"
	case Teacher:
		return "My Resources"
	default:
		return "Resources"
	}
}

// Action is the command a card offers.
type Action struct {
	Label   string
	Command string
	Danger  bool
}

// Card is the display model of one resource.
type Card struct {
	ID          int64
	Title       string
	Description string
	Rows        [][]string
	Action      *Action
}

// NewCard builds the card of r for variant v.
func NewCard(v Variant, r models.Resource) Card {
	c := Card{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.DescriptionText(),
	}

	subjectGrade := r.Subject + " • " + r.GradeLevel
	views := Views(r.ViewCount)
	id := strconv.FormatInt(r.ID, 10)

	switch v {
	case Student:
		c.Rows = [][]string{{subjectGrade, r.Country}, {views}}
		c.Action = &Action{Label: "View details", Command: "show " + id}
	case Teacher:
		c.Rows = [][]string{{subjectGrade, r.ApprovalText()}, {views}}
		c.Action = &Action{Label: "Delete", Command: "delete " + id, Danger: true}
	default:
		c.Rows = [][]string{{subjectGrade, views}}
	}
	return c
}

// Cards builds one card per resource, in order.
func Cards(v Variant, resources []models.Resource) []Card {
	out := make([]Card, 0, len(resources))
	for _, r := range resources {
		out = append(out, NewCard(v, r))
	}
	return out
}

// Views formats a view counter.
func Views(n int) string {
	return fmt.Sprintf("%d views", n)
}

// Field is one labelled line of the detail view.
type Field struct {
	Label string
	Value string
}

// DetailFields lists everything known about r, for the "show" view.
func DetailFields(r models.Resource) []Field {
	fields := []Field{
		{"Description", r.DescriptionText()},
		{"Type", string(r.FileType)},
		{"Subject", r.Subject},
		{"Grade level", r.GradeLevel},
		{"Country", r.Country},
		{"Language", r.Language},
	}
	if tags := r.TagsText(); tags != "" {
		fields = append(fields, Field{"Tags", tags})
	}
	fields = append(fields,
		Field{"Views", strconv.Itoa(r.ViewCount)},
		Field{"Status", r.ApprovalText()},
		Field{"Uploaded by", strconv.FormatInt(r.UploadedBy, 10)},
	)
	if r.UploadDate != "" {
		fields = append(fields, Field{"Uploaded", r.UploadDate})
	}
	if r.FilePath != nil && *r.FilePath != "" {
		fields = append(fields, Field{"File", *r.FilePath})
	}
	return fields
}

// Renderer writes lists and details of resources.
type Renderer interface {
	List(w io.Writer, v Variant, resources []models.Resource) error
	Detail(w io.Writer, r models.Resource) error
}
