package models

// ShortMetadata carries scheduling hints produced alongside the creative assets.
type ShortMetadata struct {
	EstimatedDurationSeconds float64 `json:"estimated_duration_seconds"`
	Category                 string  `json:"category"`
	PostingTimeSuggestion    string  `json:"posting_time_suggestion"`
}

// ContentPackage is everything the generator produces for one Short.
// It is immutable once received; downstream steps consume it field by field.
// The pipeline speaks Voiceover; Script is kept as the generator emits it.
type ContentPackage struct {
	Idea               string        `json:"idea"`
	Script             string        `json:"script"`
	Voiceover          string        `json:"voiceover"`
	StockVideoKeywords []string      `json:"stock_video_keywords"`
	Subtitles          []string      `json:"subtitles"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	Hashtags           []string      `json:"hashtags"`
	Metadata           ShortMetadata `json:"metadata"`
}
