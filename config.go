package asciiart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config collects every setting of a conversion run. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	SkipX       int    `yaml:"skip_x"`
	SkipY       int    `yaml:"skip_y"`
	OutputDir   string `yaml:"output_dir"`
	OutputName  string `yaml:"output_name"`
	FallbackDir string `yaml:"fallback_dir"`

	Adjust Adjustments `yaml:"adjust"`

	Preview  string  `yaml:"preview"`   // PNG path; empty disables the preview
	Font     string  `yaml:"font"`      // TrueType file; empty uses the built-in bitmap face
	FontSize float64 `yaml:"font_size"` // Points, TrueType only
}

func DefaultConfig() Config {
	return Config{
		SkipX:       DefaultSkipX,
		SkipY:       DefaultSkipY,
		OutputDir:   DefaultOutputDir,
		OutputName:  DefaultOutputName,
		FallbackDir: ".",
		Adjust: Adjustments{
			SigmoidMidpoint: DefaultSigmoidMidpoint,
		},
		FontSize: DefaultFontSize,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.SkipX < 1 || c.SkipY < 1:
		return fmt.Errorf("%w: skip factors must be positive, got %d,%d", ErrConfig, c.SkipX, c.SkipY)
	case c.OutputName == "":
		return fmt.Errorf("%w: output_name is empty", ErrConfig)
	case c.Font != "" && c.FontSize <= 0:
		return fmt.Errorf("%w: font_size must be positive", ErrConfig)
	}
	return nil
}

// Sink returns the FileSink described by c.
func (c Config) Sink() *FileSink {
	s := NewFileSink(c.OutputDir, c.OutputName)
	if c.FallbackDir != "" {
		s.FallbackDir = c.FallbackDir
	}
	return s
}
