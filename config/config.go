package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const (
	ModeExpression = "expression"
	ModeType       = "type"
	ModeArgument   = "argument"

	FormatCanonical = "canonical"
	FormatRepr      = "repr"
)

// Names are the settings files looked up in a directory, in order.
var Names = []string{"cadet.yaml", "cadet.yml", "cadet.toml"}

type Settings struct {
	Mode     string `yaml:"mode" toml:"mode"`
	Format   string `yaml:"format" toml:"format"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

func Default() Settings {
	return Settings{
		Mode:     ModeExpression,
		Format:   FormatCanonical,
		LogLevel: "INFO",
	}
}

func (s Settings) Validate() error {
	switch s.Mode {
	case ModeExpression, ModeType, ModeArgument:
	default:
		return tracerr.Errorf("unknown mode %q", s.Mode)
	}
	switch s.Format {
	case FormatCanonical, FormatRepr:
	default:
		return tracerr.Errorf("unknown format %q", s.Format)
	}
	if _, err := capnslog.ParseLevel(strings.ToUpper(s.LogLevel)); err != nil {
		return tracerr.Errorf("unknown log level %q", s.LogLevel)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads settings from path. Fields missing from the file keep their
// defaults, and a missing file yields Default().
func Load(path string) (Settings, error) {
	s := Default()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, tracerr.Wrap(err)
	}

	if isTOML(path) {
		err = toml.Unmarshal(data, &s)
	} else {
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return s, tracerr.Wrap(err)
	}

	return s, s.Validate()
}

// Find returns the first settings file present in dir, or "" if none is.
func Find(dir string) string {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Save writes s to path in the format its extension selects.
func Save(path string, s Settings) error {
	var out []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return tracerr.Wrap(err)
		}
		out = buf.Bytes()
	} else {
		var err error
		out, err = yaml.Marshal(s)
		if err != nil {
			return tracerr.Wrap(err)
		}
	}

	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}
