package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	SkinConfig struct {
		SourcePrefix   string   `yaml:"source_prefix" validate:"required,excludesall=/\\"`
		Script         string   `yaml:"script" validate:"required"`
		Ini            string   `yaml:"ini" validate:"required"`
		Height         int      `yaml:"height" validate:"min=1"`
		CRLF           bool     `yaml:"crlf"`
		Base           []string `yaml:"base"`
		HiddenElements []string `yaml:"hidden_elements" validate:"dive,required"`
	}

	ImagesConfig struct {
		Magic           float64        `yaml:"magic" validate:"gt=0"`
		Resample        ResampleFilter `yaml:"resample" validate:"gte=0"`
		BestCompression bool           `yaml:"best_compression"`
		FixZip          bool           `yaml:"fix_zip"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Skin      SkinConfig     `yaml:"skin"`
		Images    ImagesConfig   `yaml:"images"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// LineEnding returns line terminator to be used for generated sections.
func (c *SkinConfig) LineEnding() string {
	if c.CRLF {
		return "\r\n"
	}
	return "\n"
}

// checkSkin makes sure file names do not escape the skin root.
func checkSkin(sl validator.StructLevel) {
	var cfg Config
	switch v := sl.Current().Interface().(type) {
	case Config:
		cfg = v
	case *Config:
		cfg = *v
	default:
		return
	}
	for _, f := range []struct{ name, value string }{
		{"Script", cfg.Skin.Script},
		{"Ini", cfg.Skin.Ini},
	} {
		if filepath.IsAbs(f.value) || strings.HasPrefix(filepath.Clean(f.value), "..") {
			sl.ReportError(f.value, f.name, f.name, "relative", "")
		}
	}
	for _, name := range cfg.Skin.HiddenElements {
		if filepath.Base(name) != name {
			sl.ReportError(name, "HiddenElements", "HiddenElements", "basename", "")
		}
	}
}

var requiredOptions = []func(*gencfg.ProcessingOptions){}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkSkin)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
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
