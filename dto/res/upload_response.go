package res

type UploadResponse struct {
	URL  string `json:"url"`
	Kind string `json:"type"`
	Name string `json:"name"`
}
