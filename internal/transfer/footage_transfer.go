package transfer

// Pexels video search wire format.
type PexelsSearchResponse struct {
	Videos []PexelsVideo `json:"videos"`
}

type PexelsVideo struct {
	ID         int64             `json:"id"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	URL        string            `json:"url"`
	Image      string            `json:"image"`
	Duration   int               `json:"duration"`
	VideoFiles []PexelsVideoFile `json:"video_files"`
}

type PexelsVideoFile struct {
	ID       int64  `json:"id"`
	Quality  string `json:"quality"`
	FileType string `json:"file_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Link     string `json:"link"`
}

type FootageListResponse struct {
	Videos []PexelsVideo `json:"videos"`
}
