package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	config "github.com/maheshrc27/viralshorts/configs"
	"github.com/maheshrc27/viralshorts/internal/models"
	"github.com/maheshrc27/viralshorts/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const subtitleStyle = "FontSize=24,PrimaryColour=&HFFFFFF,OutlineColour=&H000000,Outline=2,Alignment=2"

type AssemblyService interface {
	Assemble(ctx context.Context, r *transfer.AssembleRequest) (*transfer.AssembleResponse, error)
}

type assemblyService struct {
	cfg      config.Config
	captions CaptionService
	fetcher  FetchService
	runner   ToolRunner
	archive  *ArchiveService
}

// NewAssemblyService wires the assembler. archive may be nil when no object
// storage is configured.
func NewAssemblyService(cfg config.Config, captions CaptionService, fetcher FetchService, runner ToolRunner, archive *ArchiveService) AssemblyService {
	return &assemblyService{
		cfg:      cfg,
		captions: captions,
		fetcher:  fetcher,
		runner:   runner,
		archive:  archive,
	}
}

// Assemble muxes one remote video, one local audio file and optional caption
// lines into a finished vertical Short. Job-scoped temp files are removed on
// every exit path; the output file is the only thing that survives the job.
func (s *assemblyService) Assemble(ctx context.Context, r *transfer.AssembleRequest) (*transfer.AssembleResponse, error) {
	if r.VideoURL == "" || r.AudioFile == "" {
		return nil, &models.PreconditionError{Msg: "Video URL and audio file are required"}
	}

	if _, err := s.runner.Look(s.cfg.FFmpegBin); err != nil {
		slog.Info(err.Error())
		return nil, &models.ServiceUnavailableError{Msg: "ffmpeg is not available"}
	}

	job := s.newJob(r)
	job.Status = models.JobStatusChecked

	defer s.cleanup(job)

	job.Status = models.JobStatusAssembling

	tempVideo := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("temp_video_%d.mp4", job.Stamp))
	job.OwnTemp(tempVideo)
	if err := s.fetcher.Download(ctx, r.VideoURL, tempVideo); err != nil {
		job.Status = models.JobStatusFailed
		return nil, err
	}

	srtFile := ""
	if len(r.Subtitles) > 0 {
		srtFile = filepath.Join(s.cfg.OutputDir, fmt.Sprintf("subtitles_%d.srt", job.Stamp))
		job.OwnTemp(srtFile)

		cues := s.captions.Time(r.Subtitles)
		if err := s.captions.WriteSRT(cues, srtFile); err != nil {
			job.Status = models.JobStatusFailed
			return nil, fmt.Errorf("write subtitle file: %w", err)
		}
	}

	filename := fmt.Sprintf("final_%d.mp4", job.Stamp)
	outputFile := filepath.Join(s.cfg.OutputDir, filename)

	args := s.encodeArgs(tempVideo, s.resolveAudio(r.AudioFile), srtFile, outputFile)
	if _, err := s.runner.Run(ctx, s.cfg.FFmpegBin, args...); err != nil {
		job.Status = models.JobStatusFailed
		job.OwnTemp(outputFile) // a half-written output must not outlive the job
		slog.Info(err.Error())
		return nil, &models.EncodeError{Detail: err.Error()}
	}

	job.Status = models.JobStatusSucceeded
	job.Output = outputFile
	log.Printf("Assembly %s finished: %s", job.ID, filename)

	if s.archive != nil {
		if err := s.archive.ArchiveFile(ctx, filename, outputFile); err != nil {
			log.Printf("Warning: archiving %s failed: %v", filename, err)
		}
	}

	return &transfer.AssembleResponse{
		VideoURL: "/output/" + filename,
		Filename: filename,
	}, nil
}

func (s *assemblyService) newJob(r *transfer.AssembleRequest) *models.AssemblyJob {
	id, err := gonanoid.New()
	if err != nil {
		id = fmt.Sprintf("job-%d", time.Now().UnixNano())
	}

	return &models.AssemblyJob{
		ID:        id,
		Status:    models.JobStatusIdle,
		VideoURL:  r.VideoURL,
		AudioFile: r.AudioFile,
		Subtitles: r.Subtitles,
		Title:     r.Title,
		Stamp:     time.Now().UnixMilli(),
	}
}

// encodeArgs builds the ffmpeg invocation: re-encode the sole video stream
// of input 0, transcode the sole audio stream of input 1 to AAC, cap the
// output at the shorter input, overwrite without prompting. Explicit stream
// maps keep the encoder from guessing.
func (s *assemblyService) encodeArgs(videoFile, audioFile, srtFile, outputFile string) []string {
	args := []string{
		"-i", videoFile,
		"-i", audioFile,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-shortest",
		"-y",
	}

	if srtFile != "" {
		filter := fmt.Sprintf("subtitles='%s':force_style='%s'", escapeSubtitlePath(srtFile), subtitleStyle)
		args = append(args, "-vf", filter)
	}

	return append(args, outputFile)
}

func (s *assemblyService) resolveAudio(audioFile string) string {
	return filepath.Join(s.cfg.OutputDir, filepath.Base(audioFile))
}

func (s *assemblyService) cleanup(job *models.AssemblyJob) {
	for _, path := range job.TempFiles {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: failed to remove temp file %s: %v", path, err)
		}
	}
}

// escapeSubtitlePath escapes the path for interpolation into the subtitles
// filter argument, whose grammar reserves colons and backslashes.
func escapeSubtitlePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	path = strings.ReplaceAll(path, ":", "\\:")
	return path
}
