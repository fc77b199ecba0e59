package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	config "github.com/maheshrc27/viralshorts/configs"
	"github.com/maheshrc27/viralshorts/internal/models"
	"github.com/maheshrc27/viralshorts/internal/repository"
	"github.com/maheshrc27/viralshorts/internal/transfer"
	"github.com/maheshrc27/viralshorts/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// MaxTitleLength is the platform cap; longer titles are truncated before
// submission.
const MaxTitleLength = 100

const youtubeCategoryID = "22" // People & Blogs

// Publisher performs the platform publish call.
type Publisher interface {
	Publish(ctx context.Context, token *oauth2.Token, video *youtube.Video, media io.Reader) (string, error)
}

// CodeExchanger swaps an authorization code for a durable credential.
type CodeExchanger interface {
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

type UploadService interface {
	Upload(ctx context.Context, r *transfer.UploadRequest) (*transfer.UploadResponse, error)
	ExchangeCode(ctx context.Context, code string) error
}

type uploadService struct {
	cfg       config.Config
	tokens    repository.TokenRepository
	publisher Publisher
	exchanger CodeExchanger
}

func NewUploadService(cfg config.Config, tokens repository.TokenRepository, publisher Publisher, exchanger CodeExchanger) UploadService {
	return &uploadService{
		cfg:       cfg,
		tokens:    tokens,
		publisher: publisher,
		exchanger: exchanger,
	}
}

func OAuthConfig(cfg config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Scopes:       []string{youtube.YoutubeUploadScope},
		Endpoint:     google.Endpoint,
	}
}

// Upload publishes the finished video as a private Short. Without a
// persisted credential no publish call is made; the caller gets the consent
// URL to visit out of band and re-invokes after the code exchange.
func (s *uploadService) Upload(ctx context.Context, r *transfer.UploadRequest) (*transfer.UploadResponse, error) {
	if r.VideoURL == "" || r.Title == "" {
		return nil, &models.ValidationError{Msg: "Video URL and title are required"}
	}

	token, exists, err := s.tokens.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &models.AuthRequiredError{AuthURL: s.authURL()}
	}

	videoPath := filepath.Join(s.cfg.OutputDir, filepath.Base(r.VideoURL))
	file, err := os.Open(videoPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &models.NotFoundError{Msg: "Video file not found on server"}
		}
		return nil, err
	}
	defer file.Close()

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       TruncateTitle(r.Title),
			Description: r.Description,
			Tags:        r.Tags,
			CategoryId:  youtubeCategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           "private",
			SelfDeclaredMadeForKids: false,
		},
	}

	log.Printf("Uploading %s to YouTube", filepath.Base(videoPath))

	videoID, err := s.publisher.Publish(ctx, token, video, file)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &transfer.UploadResponse{
		VideoID:  videoID,
		VideoURL: fmt.Sprintf("https://youtube.com/shorts/%s", videoID),
	}, nil
}

func (s *uploadService) ExchangeCode(ctx context.Context, code string) error {
	if code == "" {
		return &models.ValidationError{Msg: "Authorization code is required"}
	}

	token, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return s.tokens.Save(ctx, token)
}

func (s *uploadService) authURL() string {
	state, err := utils.GenerateRandomKey(16)
	if err != nil {
		state = "state"
	}
	return OAuthConfig(s.cfg).AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// TruncateTitle caps the title at the platform maximum, counting runes so a
// multibyte title is never cut mid-character.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxTitleLength {
		return title
	}
	return string(runes[:MaxTitleLength])
}

type youtubePublisher struct {
	cfg config.Config
}

func NewYoutubePublisher(cfg config.Config) Publisher {
	return &youtubePublisher{cfg: cfg}
}

func (p *youtubePublisher) Publish(ctx context.Context, token *oauth2.Token, video *youtube.Video, media io.Reader) (string, error) {
	conf := OAuthConfig(p.cfg)
	client := oauth2.NewClient(ctx, conf.TokenSource(ctx, token))

	svc, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return "", fmt.Errorf("youtube service: %w", err)
	}

	call := svc.Videos.Insert([]string{"snippet", "status"}, video)
	resp, err := call.Media(media).Do()
	if err != nil {
		return "", fmt.Errorf("youtube upload: %w", err)
	}

	return resp.Id, nil
}

type oauthExchanger struct {
	cfg config.Config
}

func NewCodeExchanger(cfg config.Config) CodeExchanger {
	return &oauthExchanger{cfg: cfg}
}

func (e *oauthExchanger) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return OAuthConfig(e.cfg).Exchange(ctx, code)
}
