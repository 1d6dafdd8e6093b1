// Package model defines the data structures used throughout the application.
//
// JSON tags follow the wire shape the travel-blog frontend already consumes:
// identifiers are emitted under "_id" and field names are camelCase.
package model

import "strings"

// Destination is a static travel-location entry shown on the site.
//
// Destinations are created in bulk by the boot-time seed and are read-only
// through the API. Duplicates are allowed; nothing enforces a unique title.
type Destination struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImgSrc      string `json:"imgSrc"`
	IsPopular   bool   `json:"isPopular"`
}

// Validate checks field presence only, the same level of checking the
// collection validators enforce in MongoDB.
func (d Destination) Validate() error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return errMissingField("title")
	case strings.TrimSpace(d.Description) == "":
		return errMissingField("description")
	case strings.TrimSpace(d.ImgSrc) == "":
		return errMissingField("imgSrc")
	}
	return nil
}
