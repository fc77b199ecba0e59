package transfer

type AssembleRequest struct {
	VideoURL  string   `json:"videoUrl"`
	AudioFile string   `json:"audioFile"`
	Subtitles []string `json:"subtitles"`
	Title     string   `json:"title"`
}

type AssembleResponse struct {
	VideoURL string `json:"videoUrl"`
	Filename string `json:"filename"`
}
