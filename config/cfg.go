package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"cardcut/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// SizeConfig is physical size in PDF points (1/72 inch).
	SizeConfig struct {
		Width  float64 `yaml:"width" validate:"gt=0"`
		Height float64 `yaml:"height" validate:"gt=0"`
	}

	ExtractionConfig struct {
		DPI           int                `yaml:"dpi" validate:"min=72,max=1200"`
		BackRotation  int                `yaml:"back_rotation" validate:"oneof=0 90 180 270"`
		ImageFormat   common.ImageFormat `yaml:"image_format"`
		JPEGQuality   int                `yaml:"jpeg_quality" validate:"min=40,max=100"`
		Grayscale     bool               `yaml:"grayscale"`
		NameTemplate  string             `yaml:"name_template" validate:"required"`
		Transliterate bool               `yaml:"transliterate"`
		Workers       int                `yaml:"workers" validate:"min=1"`
	}

	PrintConfig struct {
		Sheet    SizeConfig      `yaml:"sheet"`
		Card     SizeConfig      `yaml:"card"`
		DPI      int             `yaml:"dpi" validate:"min=72,max=600"`
		CutMarks bool            `yaml:"cut_marks"`
		Bleed    float64         `yaml:"bleed" validate:"gte=0"`
		FlipEdge common.FlipEdge `yaml:"flip_edge"`
	}

	ServerConfig struct {
		Listen    string `yaml:"listen" validate:"required,hostname_port"`
		CacheSize int    `yaml:"cache_size" validate:"min=1"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Extraction ExtractionConfig `yaml:"extraction"`
		Print      PrintConfig      `yaml:"print"`
		Server     ServerConfig     `yaml:"server"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	NameTemplateFieldName TemplateFieldName = "name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(NameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed, so no yaml.Unmarshal here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
		if !cfg.Extraction.ImageFormat.IsValid() {
			return nil, fmt.Errorf("unsupported image format: %s", cfg.Extraction.ImageFormat)
		}
		if !cfg.Print.FlipEdge.IsValid() {
			return nil, fmt.Errorf("unsupported flip edge: %s", cfg.Print.FlipEdge)
		}
		if cfg.Print.Card.Width > cfg.Print.Sheet.Width || cfg.Print.Card.Height > cfg.Print.Sheet.Height {
			return nil, fmt.Errorf("card (%.1fx%.1f) does not fit on sheet (%.1fx%.1f)",
				cfg.Print.Card.Width, cfg.Print.Card.Height, cfg.Print.Sheet.Width, cfg.Print.Sheet.Height)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
