// Package assets fetches breed photos from a GitHub-hosted dataset. Every
// operation is best-effort: a missing folder, a missing file, or any
// transport failure surfaces as ErrNotFound so callers can degrade to
// "no image available" instead of failing a turn.
package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is the sentinel for any asset the source cannot deliver.
var ErrNotFound = errors.New("asset not found")

// SourceConfig configures the GitHub asset source.
type SourceConfig struct {
	Owner      string
	Repo       string
	Branch     string
	ImageName  string // representative image inside each breed folder
	RawBaseURL string // override for tests
	APIBaseURL string // override for tests
	Timeout    time.Duration
}

// DefaultSourceConfig returns the dataset this system ships against.
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		Owner:      "maartenvandenbroeck",
		Repo:       "Dog-Breeds-Dataset",
		Branch:     "master",
		ImageName:  "Image_5.jpg",
		RawBaseURL: "https://raw.githubusercontent.com",
		APIBaseURL: "https://api.github.com",
		Timeout:    30 * time.Second,
	}
}

// Source is the external photo repository client.
type Source struct {
	cfg        SourceConfig
	httpClient *http.Client
	log        *zap.Logger
}

// NewSource creates a Source. Zero-value config fields fall back to
// DefaultSourceConfig.
func NewSource(cfg SourceConfig, log *zap.Logger) *Source {
	def := DefaultSourceConfig()
	if cfg.Owner == "" {
		cfg.Owner = def.Owner
	}
	if cfg.Repo == "" {
		cfg.Repo = def.Repo
	}
	if cfg.Branch == "" {
		cfg.Branch = def.Branch
	}
	if cfg.ImageName == "" {
		cfg.ImageName = def.ImageName
	}
	if cfg.RawBaseURL == "" {
		cfg.RawBaseURL = def.RawBaseURL
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = def.APIBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// contentEntry is one entry of the GitHub contents API response.
type contentEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "dir" or "file"
	DownloadURL string `json:"download_url"`
}

// ListFolders returns the directory names at the repository root — the
// external asset keys the identity resolver matches against.
func (s *Source) ListFolders(ctx context.Context) ([]string, error) {
	entries, err := s.listContents(ctx, "")
	if err != nil {
		return nil, err
	}
	var folders []string
	for _, e := range entries {
		if e.Type == "dir" {
			folders = append(folders, e.Name)
		}
	}
	s.log.Debug("listed asset folders", zap.Int("count", len(folders)))
	return folders, nil
}

// FetchImage downloads the representative image for an asset key. Returns
// ErrNotFound when the key has no such image.
func (s *Source) FetchImage(ctx context.Context, key string) ([]byte, error) {
	imageURL := fmt.Sprintf("%s/%s/%s/%s/%s/%s",
		s.cfg.RawBaseURL, s.cfg.Owner, s.cfg.Repo, s.cfg.Branch,
		escapePath(key), s.cfg.ImageName)

	data, err := s.download(ctx, imageURL)
	if err != nil {
		s.log.Debug("image fetch failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}
	return data, nil
}

// FetchFrames downloads up to max images from an asset key's folder, in
// listing order, for the presentation layer to assemble into a clip.
// Frames are fetched concurrently but returned in order. Returns
// ErrNotFound when the folder is missing or holds no images.
func (s *Source) FetchFrames(ctx context.Context, key string, max int) ([][]byte, error) {
	if max <= 0 {
		max = 10
	}

	entries, err := s.listContents(ctx, key)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, e := range entries {
		if e.Type != "file" || e.DownloadURL == "" {
			continue
		}
		lower := strings.ToLower(e.Name)
		if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".png") {
			urls = append(urls, e.DownloadURL)
		}
		if len(urls) == max {
			break
		}
	}
	if len(urls) == 0 {
		s.log.Debug("no frames in asset folder", zap.String("key", key))
		return nil, ErrNotFound
	}

	frames := make([][]byte, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, frameURL := range urls {
		g.Go(func() error {
			data, err := s.download(gctx, frameURL)
			if err != nil {
				return err
			}
			frames[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Debug("frame download failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}

	s.log.Debug("fetched frames",
		zap.String("key", key),
		zap.Int("count", len(frames)))
	return frames, nil
}

// listContents calls the GitHub contents API for a repository path.
func (s *Source) listContents(ctx context.Context, path string) ([]contentEntry, error) {
	apiURL := fmt.Sprintf("%s/repos/%s/%s/contents",
		s.cfg.APIBaseURL, s.cfg.Owner, s.cfg.Repo)
	if path != "" {
		apiURL += "/" + escapePath(path)
	}

	body, err := s.download(ctx, apiURL)
	if err != nil {
		return nil, err
	}
	var entries []contentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unexpected contents listing: %w", err)
	}
	return entries, nil
}

func (s *Source) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// escapePath escapes a folder name for use as a single URL path segment,
// keeping spaces as %20 the way the raw host expects.
func escapePath(segment string) string {
	return url.PathEscape(segment)
}
