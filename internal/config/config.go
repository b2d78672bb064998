package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Chunking      ChunkingConfig      `yaml:"chunking"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Keywords      KeywordsConfig      `yaml:"keywords"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type FFmpegConfig struct {
	// Explicit binary paths. When empty the toolchain is resolved at
	// startup: FFMPEG_PATH/FFPROBE_PATH env vars, then the bundled
	// directory, then the system PATH.
	FFmpegPath   string `yaml:"ffmpeg_path"`
	FFprobePath  string `yaml:"ffprobe_path"`
	BundleDir    string `yaml:"bundle_dir"`
	RemuxTimeout int    `yaml:"remux_timeout_seconds"`
}

type ChunkingConfig struct {
	LengthSeconds  int `yaml:"length_seconds"`
	OverlapSeconds int `yaml:"overlap_seconds"`
}

type TranscriptionConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type KeywordsConfig struct {
	StorePath string `yaml:"store_path"`
}

type PathsConfig struct {
	Jobs    string `yaml:"jobs"`
	Storage string `yaml:"storage"`
	Temp    string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	BatchSize     int `yaml:"batch_size"`
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Transcription.APIKey == "" {
		return fmt.Errorf("transcription.api_key is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}
	if c.Paths.Jobs == "" {
		return fmt.Errorf("paths.jobs is required")
	}
	if c.Paths.Storage == "" {
		return fmt.Errorf("paths.storage is required")
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.FFmpeg.RemuxTimeout == 0 {
		c.FFmpeg.RemuxTimeout = 60
	}
	if c.Chunking.LengthSeconds == 0 {
		c.Chunking.LengthSeconds = 600
	}
	if c.Chunking.OverlapSeconds == 0 {
		c.Chunking.OverlapSeconds = 60
	}
	if c.Chunking.OverlapSeconds >= c.Chunking.LengthSeconds {
		return fmt.Errorf("chunking.overlap_seconds must be smaller than chunking.length_seconds")
	}
	if c.Transcription.BaseURL == "" {
		c.Transcription.BaseURL = "https://api.deepgram.com/v1/listen"
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = "nova-2-general"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Keywords.StorePath == "" {
		c.Keywords.StorePath = "data/keywords.json"
	}
	if c.Performance.BatchSize == 0 {
		c.Performance.BatchSize = 6
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
