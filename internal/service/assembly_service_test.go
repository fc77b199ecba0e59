package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	config "github.com/maheshrc27/viralshorts/configs"
	"github.com/maheshrc27/viralshorts/internal/models"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

type fakeRunner struct {
	lookErr error
	runErr  error
	stdout  []byte
	calls   [][]string
}

func (f *fakeRunner) Look(name string) (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.stdout, f.runErr
}

type fakeFetcher struct {
	err   error
	calls int
}

func (f *fakeFetcher) Download(ctx context.Context, rawURL, dest string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(dest, []byte("video"), 0644)
}

func newTestAssembler(t *testing.T, runner *fakeRunner, fetcher *fakeFetcher) (AssemblyService, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{OutputDir: dir, FFmpegBin: "ffmpeg"}
	return NewAssemblyService(cfg, NewCaptionService(), fetcher, runner, nil), dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestAssemble_MissingInputs(t *testing.T) {
	tests := []struct {
		name string
		req  transfer.AssembleRequest
	}{
		{"no video", transfer.AssembleRequest{AudioFile: "voiceover_1.mp3"}},
		{"no audio", transfer.AssembleRequest{VideoURL: "https://example.com/v.mp4"}},
		{"neither", transfer.AssembleRequest{}},
	}

	for _, test := range tests {
		runner := &fakeRunner{}
		fetcher := &fakeFetcher{}
		s, dir := newTestAssembler(t, runner, fetcher)

		_, err := s.Assemble(context.Background(), &test.req)

		var precond *models.PreconditionError
		if !errors.As(err, &precond) {
			t.Errorf("%s: expected PreconditionError, got %v", test.name, err)
		}
		if len(runner.calls) != 0 {
			t.Errorf("%s: expected no subprocess invocation, got %d", test.name, len(runner.calls))
		}
		if fetcher.calls != 0 {
			t.Errorf("%s: expected no fetch, got %d", test.name, fetcher.calls)
		}
		if names := listDir(t, dir); len(names) != 0 {
			t.Errorf("%s: expected no filesystem writes, found %v", test.name, names)
		}
	}
}

func TestAssemble_EncoderUnavailable(t *testing.T) {
	runner := &fakeRunner{lookErr: errors.New("not found")}
	fetcher := &fakeFetcher{}
	s, _ := newTestAssembler(t, runner, fetcher)

	_, err := s.Assemble(context.Background(), &transfer.AssembleRequest{
		VideoURL:  "https://example.com/v.mp4",
		AudioFile: "voiceover_1.mp3",
	})

	var unavailable *models.ServiceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ServiceUnavailableError, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("expected no fetch when encoder is unavailable, got %d", fetcher.calls)
	}
}

func TestAssemble_EncodeFailureLeavesNoFiles(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("ffmpeg: moov atom not found")}
	fetcher := &fakeFetcher{}
	s, dir := newTestAssembler(t, runner, fetcher)

	_, err := s.Assemble(context.Background(), &transfer.AssembleRequest{
		VideoURL:  "https://example.com/v.mp4",
		AudioFile: "voiceover_1.mp3",
		Subtitles: []string{"Stay focused"},
	})

	var encodeErr *models.EncodeError
	if !errors.As(err, &encodeErr) {
		t.Fatalf("expected EncodeError, got %v", err)
	}
	if !strings.Contains(encodeErr.Detail, "moov atom not found") {
		t.Errorf("expected encoder diagnostic in error, got %q", encodeErr.Detail)
	}

	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("expected zero files after failed encode, found %v", names)
	}
}

func TestAssemble_FetchFailureCleansUp(t *testing.T) {
	runner := &fakeRunner{}
	fetcher := &fakeFetcher{err: &models.NetworkError{Msg: "unexpected response status: 404"}}
	s, dir := newTestAssembler(t, runner, fetcher)

	_, err := s.Assemble(context.Background(), &transfer.AssembleRequest{
		VideoURL:  "https://example.com/v.mp4",
		AudioFile: "voiceover_1.mp3",
	})

	var netErr *models.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("expected no encode after failed fetch, got %d calls", len(runner.calls))
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("expected no leftover files, found %v", names)
	}
}

func TestAssemble_WithoutSubtitles(t *testing.T) {
	runner := &fakeRunner{}
	fetcher := &fakeFetcher{}
	s, dir := newTestAssembler(t, runner, fetcher)

	resp, err := s.Assemble(context.Background(), &transfer.AssembleRequest{
		VideoURL:  "https://example.com/v.mp4",
		AudioFile: "/output/voiceover_1.mp3",
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if !strings.HasPrefix(resp.Filename, "final_") || !strings.HasSuffix(resp.Filename, ".mp4") {
		t.Errorf("unexpected output filename %q", resp.Filename)
	}
	if resp.VideoURL != "/output/"+resp.Filename {
		t.Errorf("unexpected video url %q", resp.VideoURL)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected one encode invocation, got %d", len(runner.calls))
	}
	args := strings.Join(runner.calls[0], " ")
	if strings.Contains(args, "-vf") {
		t.Errorf("expected no subtitle filter without captions, got %q", args)
	}
	for _, name := range listDir(t, dir) {
		if strings.HasSuffix(name, ".srt") {
			t.Errorf("expected no subtitle file, found %s", name)
		}
	}
}

func TestAssemble_WithSubtitles(t *testing.T) {
	runner := &fakeRunner{}
	fetcher := &fakeFetcher{}
	s, dir := newTestAssembler(t, runner, fetcher)

	_, err := s.Assemble(context.Background(), &transfer.AssembleRequest{
		VideoURL:  "https://example.com/v.mp4",
		AudioFile: "voiceover_1.mp3",
		Subtitles: []string{"Stay focused", "Every single day"},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected one encode invocation, got %d", len(runner.calls))
	}

	args := strings.Join(runner.calls[0], " ")
	for _, expected := range []string{
		"-c:v libx264",
		"-c:a aac",
		"-map 0:v:0",
		"-map 1:a:0",
		"-shortest",
		"-y",
		"subtitles='",
		"force_style='FontSize=24",
	} {
		if !strings.Contains(args, expected) {
			t.Errorf("encode args missing %q: %q", expected, args)
		}
	}

	// Temp inputs are job-scoped; only the output survives.
	for _, name := range listDir(t, dir) {
		if strings.HasPrefix(name, "temp_video_") || strings.HasSuffix(name, ".srt") {
			t.Errorf("temp file %s survived the job", name)
		}
	}
}

func TestAssemble_AudioPathResolution(t *testing.T) {
	runner := &fakeRunner{}
	fetcher := &fakeFetcher{}
	s, dir := newTestAssembler(t, runner, fetcher)

	_, err := s.Assemble(context.Background(), &transfer.AssembleRequest{
		VideoURL:  "https://example.com/v.mp4",
		AudioFile: "/output/voiceover_42.mp3",
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	expected := filepath.Join(dir, "voiceover_42.mp3")
	found := false
	for _, arg := range runner.calls[0] {
		if arg == expected {
			found = true
		}
	}
	if !found {
		t.Errorf("expected audio input %q in encode args %v", expected, runner.calls[0])
	}
}

func TestEscapeSubtitlePath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"output/subtitles_1.srt", "output/subtitles_1.srt"},
		{"C:\\out\\subtitles.srt", "C\\:/out/subtitles.srt"},
		{"/tmp/a:b.srt", "/tmp/a\\:b.srt"},
	}

	for _, test := range tests {
		result := escapeSubtitlePath(test.path)
		if result != test.expected {
			t.Errorf("escapeSubtitlePath(%q) = %q, expected %q", test.path, result, test.expected)
		}
	}
}
