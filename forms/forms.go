// Package forms binds and validates user-submitted content. A form either
// validates cleanly and is ready to persist, or it reports per-field
// errors and nothing is written.
package forms

import (
	"strings"

	"inkwell-api/utils"
)

type PostForm struct {
	Text     string `form:"text" json:"text"`
	GroupID  string `form:"group_id" json:"group_id"`
	ImageURL string `form:"image_url" json:"image_url"`
}

// Validate normalizes the form in place and returns per-field error
// messages; an empty map means the form is ready to persist. Group
// existence is checked through the supplied lookup so the form stays
// independent of the storage layer.
func (f *PostForm) Validate(groupExists func(id string) bool) map[string]string {
	errs := make(map[string]string)

	f.Text = strings.TrimSpace(f.Text)
	f.GroupID = strings.TrimSpace(f.GroupID)
	f.ImageURL = strings.TrimSpace(f.ImageURL)

	if f.Text == "" {
		errs["text"] = "Text is required"
	}
	if f.GroupID != "" && !groupExists(f.GroupID) {
		errs["group_id"] = "Unknown group"
	}
	if f.ImageURL != "" && !utils.IsValidImageURL(f.ImageURL) {
		errs["image_url"] = "Image must be an absolute http(s) URL"
	}

	return errs
}

type CommentForm struct {
	Text string `form:"text" json:"text"`
}

func (f *CommentForm) Validate() map[string]string {
	errs := make(map[string]string)

	f.Text = strings.TrimSpace(f.Text)
	if f.Text == "" {
		errs["text"] = "Text is required"
	}

	return errs
}
