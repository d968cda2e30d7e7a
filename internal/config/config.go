// Package config loads pawmatch configuration from YAML with environment
// overrides for secrets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all pawmatch configuration.
type Config struct {
	// LLM configuration (the dialogue collaborator)
	LLM LLMConfig `yaml:"llm"`

	// Data file locations
	Data DataConfig `yaml:"data"`

	// External photo repository
	Assets AssetsConfig `yaml:"assets"`

	// Matching behavior
	Match MatchConfig `yaml:"match"`
}

// LLMConfig configures the dialogue collaborator.
type LLMConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// DataConfig locates the immutable start-up tables.
type DataConfig struct {
	BreedTraits       string `yaml:"breed_traits"`
	TraitDescriptions string `yaml:"trait_descriptions"`
}

// AssetsConfig configures the external photo repository.
type AssetsConfig struct {
	Owner     string `yaml:"owner"`
	Repo      string `yaml:"repo"`
	Branch    string `yaml:"branch"`
	ImageName string `yaml:"image_name"`
	MaxFrames int    `yaml:"max_frames"`
}

// MatchConfig configures the recommendation pipeline.
type MatchConfig struct {
	TopN      int `yaml:"top_n"`
	TopTraits int `yaml:"top_traits"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model: "gemini-2.5-flash",
		},
		Data: DataConfig{
			BreedTraits:       "data/breed_traits.csv",
			TraitDescriptions: "data/trait_description.csv",
		},
		Assets: AssetsConfig{
			Owner:     "maartenvandenbroeck",
			Repo:      "Dog-Breeds-Dataset",
			Branch:    "master",
			ImageName: "Image_5.jpg",
			MaxFrames: 10,
		},
		Match: MatchConfig{
			TopN:      3,
			TopTraits: 3,
		},
	}
}

// Load reads configuration from a YAML file, layered over the defaults,
// then applies environment overrides. A missing file is not an error — the
// defaults plus environment are a complete configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file for secrets and
// the model choice.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("GENAI_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = key
	}
	if model := os.Getenv("PAWMATCH_MODEL"); model != "" {
		cfg.LLM.Model = model
	}
}

// Validate checks the parts of the configuration that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Data.BreedTraits == "" {
		return fmt.Errorf("data.breed_traits is required")
	}
	if c.Data.TraitDescriptions == "" {
		return fmt.Errorf("data.trait_descriptions is required")
	}
	return nil
}
