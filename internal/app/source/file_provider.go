package source

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/osa030/podcastr/internal/domain/episode"
)

type FileProviderConfig struct {
	Path string `yaml:"path" mapstructure:"path" validate:"required"`
}

// FileProvider loads episodes from a YAML or JSON catalog file.
// The file is read on every load so edits show up on reload.
type FileProvider struct {
	config *FileProviderConfig
}

// catalogFile is the root of a catalog document.
type catalogFile struct {
	Episodes []catalogEpisode `yaml:"episodes"`
}

// catalogEpisode accepts both the flat layout and a nested "file" object
// holding the media url and duration.
type catalogEpisode struct {
	Title     string          `yaml:"title"`
	Members   string          `yaml:"members"`
	Thumbnail string          `yaml:"thumbnail"`
	Duration  int             `yaml:"duration"`
	URL       string          `yaml:"url"`
	File      *catalogFileRef `yaml:"file"`
}

type catalogFileRef struct {
	URL      string `yaml:"url"`
	Duration int    `yaml:"duration"`
}

// NewFileProvider creates a new FileProvider.
func NewFileProvider(settings map[string]any) (*FileProvider, error) {
	var config FileProviderConfig
	if err := mapstructure.Decode(settings, &config); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(&config); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	zlog.Debug().Msgf("file provider config: %+v", config)
	if err := validator.New().Struct(config); err != nil {
		zlog.Error().Msgf("file provider validation failed: %v", err)
		return nil, errors.Wrap(err, "validation failed")
	}
	return &FileProvider{config: &config}, nil
}

// Episodes reads and parses the catalog file.
func (p *FileProvider) Episodes(ctx context.Context) ([]episode.Episode, error) {
	data, err := os.ReadFile(p.config.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", p.config.Path)
	}
	eps, err := ParseCatalog(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog %s", p.config.Path)
	}
	return eps, nil
}

// Name returns the provider name.
func (p *FileProvider) Name() string {
	return "file"
}

// ParseCatalog parses a YAML or JSON catalog. The root is either a list of
// episodes or a mapping with an "episodes" list.
func ParseCatalog(data []byte) ([]episode.Episode, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "invalid catalog document")
	}
	if len(root.Content) == 0 {
		return []episode.Episode{}, nil
	}

	var raw []catalogEpisode
	switch doc := root.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, "invalid episode list")
		}
	case yaml.MappingNode:
		var file catalogFile
		if err := doc.Decode(&file); err != nil {
			return nil, errors.Wrap(err, "invalid catalog")
		}
		raw = file.Episodes
	default:
		return nil, errors.New("catalog must be a list or a mapping with an episodes list")
	}

	return lo.Map(raw, func(e catalogEpisode, _ int) episode.Episode {
		return e.toEpisode()
	}), nil
}

func (e catalogEpisode) toEpisode() episode.Episode {
	ep := episode.Episode{
		Title:     e.Title,
		Members:   e.Members,
		Thumbnail: e.Thumbnail,
		Duration:  e.Duration,
		URL:       e.URL,
	}
	if e.File != nil {
		if ep.URL == "" {
			ep.URL = e.File.URL
		}
		if ep.Duration == 0 {
			ep.Duration = e.File.Duration
		}
	}
	return ep
}
