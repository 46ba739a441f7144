package tour

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls which sections run and how the file demonstration behaves.
type Config struct {
	// Sections limits the run to the named sections, in order.
	// Empty means all registered sections.
	Sections []string `yaml:"sections"`

	// SampleFile is the relative path written and read back by the fileio
	// section. Lines are UTF-8, newline terminated.
	SampleFile string `yaml:"sample_file"`

	// KeepSample leaves the sample file on disk after the run.
	KeepSample bool `yaml:"keep_sample_file"`

	// NoColor disables styled console output.
	NoColor bool `yaml:"no_color"`
}

// ErrEmptySampleFile is returned when the configuration resolves to an empty
// sample file path.
var ErrEmptySampleFile = errors.New("tour: sample_file must not be empty")

// DefaultConfig returns the configuration used when nothing else is supplied.
func DefaultConfig() Config {
	return Config{
		SampleFile: "sample_file.txt",
		KeepSample: true,
	}
}

// LoadConfig builds the effective configuration.
//
// Precedence, lowest to highest: defaults, the YAML file at path (skipped
// when path is empty), then environment overrides (TOUR_SECTIONS as a comma
// separated list, TOUR_SAMPLE_FILE, TOUR_KEEP_SAMPLE, TOUR_NO_COLOR).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if strings.TrimSpace(cfg.SampleFile) == "" {
		return Config{}, ErrEmptySampleFile
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TOUR_SECTIONS"); v != "" {
		cfg.Sections = cfg.Sections[:0]
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				cfg.Sections = append(cfg.Sections, part)
			}
		}
	}
	if v := os.Getenv("TOUR_SAMPLE_FILE"); v != "" {
		cfg.SampleFile = v
	}
	if v := os.Getenv("TOUR_KEEP_SAMPLE"); v != "" {
		cfg.KeepSample = v == "true" || v == "1"
	}
	if v := os.Getenv("TOUR_NO_COLOR"); v != "" {
		cfg.NoColor = v == "true" || v == "1"
	}
}
