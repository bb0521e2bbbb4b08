package domain

import "strings"

// ExtractionRequest is the payload accepted by the extraction endpoint.
// FileContent carries the document as standard base64.
type ExtractionRequest struct {
	Filename    string `json:"filename"`
	FileContent string `json:"filecontent"`
}

// Validate checks that both required fields are present.
func (r *ExtractionRequest) Validate() error {
	if strings.TrimSpace(r.Filename) == "" {
		return &ValidationError{Field: "filename", Message: "filename is required"}
	}
	if r.FileContent == "" {
		return &ValidationError{Field: "filecontent", Message: "filecontent is required"}
	}
	return nil
}

// ExtractionResponse pairs the submitted filename with the extracted
// text lines. Filename is echoed back exactly as received. Text holds
// the non-empty horizontal lines in layout order and serializes as an
// empty array, never null, when the document has no text.
type ExtractionResponse struct {
	Filename string   `json:"filename"`
	Text     []string `json:"text"`
}

// DocumentInfo describes a staged document after inspection.
type DocumentInfo struct {
	PageCount int
}
