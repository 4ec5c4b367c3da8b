package mechfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mechvars/mechanics"
)

// Format is a mechanism file syntax.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	// FormatHCL is HashiCorp configuration language (.hcl).
	FormatHCL
	// FormatTOML is TOML (.toml).
	FormatTOML
)

// String returns "auto", "hcl" or "toml".
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatHCL:
		return "hcl"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// DetectFormat maps .hcl and .toml (any case) to their Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Options configures loading.
type Options struct {
	Format Format
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// WithFormat forces a syntax regardless of extension.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}

// WithLogger routes load diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Parse decodes src in format f. FormatAuto detects from filename.
func Parse(src []byte, filename string, f Format) (*Definition, error) {
	if f == FormatAuto {
		var err error
		if f, err = DetectFormat(filename); err != nil {
			return nil, err
		}
	}
	switch f {
	case FormatHCL:
		return ParseHCL(src, filename)
	case FormatTOML:
		return ParseTOML(src, filename)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// LoadDefinition reads and parses path without building a System.
func LoadDefinition(path string, opts ...Option) (*Definition, error) {
	o := buildOptions(opts)
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mechfile: read %s: %w", path, err)
	}
	def, err := Parse(src, path, o.Format)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("parsed mechanism",
		"path", path,
		"ground", def.Ground,
		"frames", len(def.Frames),
		"components", len(def.Components))

	return def, nil
}

// LoadFile reads path, parses it by extension (or WithFormat) and builds the System.
func LoadFile(path string, opts ...Option) (*mechanics.System, error) {
	def, err := LoadDefinition(path, opts...)
	if err != nil {
		return nil, err
	}

	return def.Build()
}
