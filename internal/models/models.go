package models

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type UploadResponse struct {
	Success       bool   `json:"success"`
	Filename      string `json:"filename"`
	ExtractedText string `json:"extracted_text"`
	Summary       string `json:"summary"`
	TextLength    int    `json:"text_length"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
