package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kievzenit/konsol/internal/lexer"
)

// Config holds the run options read from a konsol.yml file.
type Config struct {
	Path string `yaml:"-"`

	Dialect    string `yaml:"dialect"`
	DumpTokens bool   `yaml:"dump_tokens"`
	DumpAST    bool   `yaml:"dump_ast"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func Default() *Config {
	return &Config{
		Dialect: lexer.ASCII.Name,
	}
}

// Load parses a YAML config from disk. Fields missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		if errors.Is(err, errEmpty) {
			return nil, fmt.Errorf("config: %s is empty", absPath)
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}
	cfg.Path = absPath
	return cfg, nil
}

var errEmpty = errors.New("empty document")

// Decode reads and validates a single YAML document from r.
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmpty
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs ValidationError
	if _, err := lexer.LookupDialect(c.Dialect); err != nil {
		errs.Issues = append(errs.Issues, err.Error())
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
