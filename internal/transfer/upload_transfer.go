package transfer

type UploadRequest struct {
	VideoURL    string   `json:"videoUrl"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type UploadResponse struct {
	VideoID  string `json:"videoId"`
	VideoURL string `json:"videoUrl"`
}

type AuthCallbackRequest struct {
	Code string `json:"code"`
}
