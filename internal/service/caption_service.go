package service

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/maheshrc27/viralshorts/internal/models"
)

// WordsPerSecond is the approximate speaking rate used to time caption
// lines against the synthesized voice track.
const WordsPerSecond = 2.5

type CaptionService interface {
	Time(lines []string) []models.CaptionCue
	WriteSRT(cues []models.CaptionCue, path string) error
}

type captionService struct{}

func NewCaptionService() CaptionService {
	return &captionService{}
}

// Time derives contiguous cues starting at 0. Each line lasts
// wordCount/WordsPerSecond seconds; a line with no words counts as one word
// so every cue keeps a finite, positive length.
func (s *captionService) Time(lines []string) []models.CaptionCue {
	cues := make([]models.CaptionCue, 0, len(lines))

	var current float64
	for _, line := range lines {
		words := len(strings.Fields(line))
		if words == 0 {
			words = 1
		}

		duration := float64(words) / WordsPerSecond
		cues = append(cues, models.CaptionCue{
			Text:  line,
			Start: current,
			End:   current + duration,
		})
		current += duration
	}

	return cues
}

func (s *captionService) WriteSRT(cues []models.CaptionCue, path string) error {
	var b strings.Builder

	for i, cue := range cues {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", FormatSRTTime(cue.Start), FormatSRTTime(cue.End))
		b.WriteString(cue.Text)
		b.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// FormatSRTTime renders seconds as the fixed-width SRT timestamp
// HH:MM:SS,mmm. Rounding happens once, on whole milliseconds, so a shared
// cue boundary formats identically as an end and as a start.
func FormatSRTTime(seconds float64) string {
	total := int64(math.Round(seconds * 1000))
	if total < 0 {
		total = 0
	}

	ms := total % 1000
	secs := (total / 1000) % 60
	mins := (total / 60000) % 60
	hours := total / 3600000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, mins, secs, ms)
}
