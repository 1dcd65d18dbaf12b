package models

import (
	"net/url"
	"strings"
)

// FileType is the kind of material a resource points to.
type FileType string

const (
	FileTypePDF    FileType = "pdf"
	FileTypeVideo  FileType = "video"
	FileTypeText   FileType = "text"
	FileTypeSlides FileType = "slides"
	FileTypeLink   FileType = "link"
)

// FileTypes lists the accepted file types in display order.
var FileTypes = []FileType{FileTypePDF, FileTypeVideo, FileTypeText, FileTypeSlides, FileTypeLink}

// NoDescription is shown for resources without a description.
const NoDescription = "No description available"

// Resource is an uploaded educational file record. It is owned by the
// backend; the client only holds copies from the latest fetch.
type Resource struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	FileType    FileType `json:"file_type"`
	Subject     string   `json:"subject"`
	GradeLevel  string   `json:"grade_level"`
	Country     string   `json:"country"`
	Language    string   `json:"language"`
	Tags        *string  `json:"tags"`
	UploadedBy  int64    `json:"uploaded_by"`
	UploadDate  string   `json:"upload_date,omitempty"`
	IsApproved  bool     `json:"is_approved"`
	ViewCount   int      `json:"view_count"`
	FilePath    *string  `json:"file_path,omitempty"`
}

// DescriptionText returns the description or NoDescription.
func (r Resource) DescriptionText() string {
	if r.Description == nil || strings.TrimSpace(*r.Description) == "" {
		return NoDescription
	}
	return *r.Description
}

// TagsText returns the tags or "".
func (r Resource) TagsText() string {
	if r.Tags == nil {
		return ""
	}
	return *r.Tags
}

// ApprovalText is the approval label shown on teacher cards.
func (r Resource) ApprovalText() string {
	if r.IsApproved {
		return "Approved"
	}
	return "Pending Approval"
}

// Filters narrows GET /resources/. Keys are backend query parameters
// (subject, grade_level, country, language, skip, limit).
type Filters map[string]string

// Query encodes the filters, leaving out keys with empty values.
func (f Filters) Query() url.Values {
	q := url.Values{}
	for k, v := range f {
		if strings.TrimSpace(v) == "" {
			continue
		}
		q.Set(k, v)
	}
	return q
}

// OwnedBy keeps the resources uploaded by userID, in their original order.
func OwnedBy(resources []Resource, userID int64) []Resource {
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if r.UploadedBy == userID {
			out = append(out, r)
		}
	}
	return out
}

// UploadRequest holds the upload form. FilePath is optional; when empty no
// file part is sent.
type UploadRequest struct {
	Title       string   `form:"title" validate:"required"`
	Description string   `form:"description"`
	FileType    FileType `form:"file_type" validate:"required,oneof=pdf video text slides link"`
	Subject     string   `form:"subject" validate:"required"`
	GradeLevel  string   `form:"grade_level" validate:"required"`
	Country     string   `form:"country" validate:"required"`
	Language    string   `form:"language" validate:"required"`
	Tags        string   `form:"tags"`
	FilePath    string   `form:"-"`
}

// FormField is one text part of the upload payload.
type FormField struct {
	Name  string
	Value string
}

// FormFields returns the text parts in the order the backend form declares
// them. Every field is present even when empty.
func (u UploadRequest) FormFields() []FormField {
	return []FormField{
		{Name: "title", Value: u.Title},
		{Name: "description", Value: u.Description},
		{Name: "file_type", Value: string(u.FileType)},
		{Name: "subject", Value: u.Subject},
		{Name: "grade_level", Value: u.GradeLevel},
		{Name: "country", Value: u.Country},
		{Name: "language", Value: u.Language},
		{Name: "tags", Value: u.Tags},
	}
}
