package dto

import "github.com/upgoma/upg-portal/internal/pkg/markup"

// PublishNewsRequest is the admin submission of a new feed item. Author
// and image fall back to the institutional defaults when blank.
type PublishNewsRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author" binding:"omitempty,max=100"`
	Category string `json:"category" binding:"required,oneof=Actualité Événement Annonce"`
	Image    string `json:"image" binding:"omitempty,url"`
}

// FormatRequest applies one formatting marker to a selection of the
// editor body. Start and End are rune offsets.
type FormatRequest struct {
	Text  string `json:"text"`
	Start int    `json:"start" binding:"min=0"`
	End   int    `json:"end" binding:"min=0"`
	Kind  string `json:"kind" binding:"required,oneof=bold underline subtitle"`
}

// FormatResponse returns the spliced text and the cursor position just
// after the inserted closing marker.
type FormatResponse struct {
	Text   string `json:"text"`
	Cursor int    `json:"cursor"`
}

// NewsBodyResponse is the parsed document tree of one news body.
type NewsBodyResponse struct {
	Blocks []markup.Node `json:"blocks"`
}
