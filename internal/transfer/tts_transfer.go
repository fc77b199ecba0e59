package transfer

type TTSRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type TTSResponse struct {
	AudioURL string `json:"audioUrl"`
	Filename string `json:"filename"`
}

type VoiceListResponse struct {
	Voices []string `json:"voices"`
}
