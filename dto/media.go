package dto

type MediaUploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
