package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	config "github.com/maheshrc27/viralshorts/configs"
	"github.com/maheshrc27/viralshorts/internal/models"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

const DefaultVoice = "en-US-ChristopherNeural"

// SupportedVoices is the fixed set of edge-tts voices the synthesize
// endpoint accepts.
var SupportedVoices = []string{
	"en-US-ChristopherNeural",
	"en-US-GuyNeural",
	"en-US-JennyNeural",
	"en-US-AriaNeural",
	"en-GB-RyanNeural",
	"en-GB-SoniaNeural",
	"en-AU-WilliamNeural",
	"en-IN-PrabhatNeural",
}

type VoiceService interface {
	Synthesize(ctx context.Context, text, voice string) (*transfer.TTSResponse, error)
	ListVoices(ctx context.Context) ([]string, error)
}

type voiceService struct {
	cfg    config.Config
	runner ToolRunner
}

func NewVoiceService(cfg config.Config, runner ToolRunner) VoiceService {
	return &voiceService{cfg: cfg, runner: runner}
}

// Synthesize runs the edge-tts engine as a subprocess and persists the
// audio under the output dir. Input is validated before the engine is
// spawned.
func (s *voiceService) Synthesize(ctx context.Context, text, voice string) (*transfer.TTSResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &models.ValidationError{Msg: "Text is required"}
	}

	if voice == "" {
		voice = DefaultVoice
	}
	if !voiceSupported(voice) {
		return nil, &models.ValidationError{Msg: fmt.Sprintf("unsupported voice: %s", voice)}
	}

	filename := fmt.Sprintf("voiceover_%d.mp3", time.Now().UnixMilli())
	audioFile := filepath.Join(s.cfg.OutputDir, filename)

	// python -m edge_tts avoids PATH issues with the edge-tts wrapper script.
	_, err := s.runner.Run(ctx, s.cfg.PythonBin,
		"-m", "edge_tts",
		"--voice", voice,
		"--text", text,
		"--write-media", audioFile,
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, &models.SynthesisError{Detail: err.Error()}
	}

	return &transfer.TTSResponse{
		AudioURL: "/output/" + filename,
		Filename: filename,
	}, nil
}

func (s *voiceService) ListVoices(ctx context.Context) ([]string, error) {
	out, err := s.runner.Run(ctx, s.cfg.PythonBin, "-m", "edge_tts", "--list-voices")
	if err != nil {
		slog.Info(err.Error())
		return nil, &models.SynthesisError{Detail: err.Error()}
	}

	var voices []string
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "Name:") {
			voices = append(voices, strings.TrimSpace(strings.Replace(line, "Name:", "", 1)))
		}
	}

	return voices, nil
}

func voiceSupported(voice string) bool {
	for _, v := range SupportedVoices {
		if v == voice {
			return true
		}
	}
	return false
}
