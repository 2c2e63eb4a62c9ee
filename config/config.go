// Package config loads the YAML configuration that selects a Machine
// driver, a dictionary set, and the translator's space-handling options.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// InputMachineKind selects which Machine driver `plojo run` opens.
type InputMachineKind string

const (
	Stdin    InputMachineKind = "stdin"
	GeminiPR InputMachineKind = "geminipr"
	Keyboard InputMachineKind = "keyboard"
)

// InputMachineConfig selects and parameterizes the Machine driver.
type InputMachineConfig struct {
	Kind InputMachineKind `yaml:"kind"`
	Port string           `yaml:"port"` // only meaningful for Kind == GeminiPR
}

// Config is the top-level shape of plojo.yaml.
type Config struct {
	InputMachine                 InputMachineConfig `yaml:"input_machine"`
	OutputDispatcher              string            `yaml:"output_dispatcher"`
	Dicts                         []string          `yaml:"dicts"`
	RetrospectiveAddSpaceStrokes  []string          `yaml:"retrospective_add_space_strokes"`
	SpaceStroke                   string            `yaml:"space_stroke"`
	SpaceAfter                    bool              `yaml:"space_after"`
	DelayOutput                   bool              `yaml:"delay_output"`
	DisableInputStrokes           []string          `yaml:"disable_input_strokes"`
	TelemetryLog                  string            `yaml:"telemetry_log"`
}

// LoadConfig reads plojo.yaml out of dir and parses it, mirroring the
// teacher's LoadConfig: a missing file and a malformed file are both
// wrapped errors rather than panics, since the CLI driver is expected to
// report them and exit non-zero rather than crash.
func LoadConfig(dir string) (Config, error) {
	path := filepath.Join(dir, "plojo.yaml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, errors.Errorf("no plojo.yaml found in %s", dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading plojo.yaml")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing plojo.yaml")
	}
	return cfg, nil
}
