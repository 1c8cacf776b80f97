// ABOUTME: Settings loading with global + project YAML merge, defaults, and validation
// ABOUTME: Project values override global ones; an explicit --config file replaces both

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/pi-edit/internal/log"
)

// Read timeout bounds in tenths of a second; VTIME is a single byte.
const (
	DefaultReadTimeout = 1
	MinReadTimeout     = 1
	MaxReadTimeout     = 255
)

// Settings holds the merged configuration. Welcome replaces the default
// banner text when non-empty; ReadTimeout is in tenths of a second;
// Keybindings maps action names to key names.
type Settings struct {
	Welcome     string              `yaml:"welcome,omitempty"`
	ReadTimeout int                 `yaml:"read_timeout,omitempty"`
	LogLevel    string              `yaml:"log_level,omitempty"`
	LogFile     string              `yaml:"log_file,omitempty"`
	Keybindings map[string][]string `yaml:"keybindings,omitempty"`
}

// Load reads and merges global and project-local settings. When explicit
// is non-empty only that file is read and it must exist.
func Load(projectRoot, explicit string) (*Settings, error) {
	var s *Settings
	if explicit != "" {
		loaded, err := loadFile(explicit)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		s = loaded
	} else {
		global, err := loadFile(GlobalConfigFile())
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading global config: %w", err)
		}

		project, err := loadFile(ProjectConfigFile(projectRoot))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading project config: %w", err)
		}

		s = merge(global, project)
	}

	ResolveEnvVars(s)
	applyDefaults(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	log.Debug("settings: read_timeout=%d log_level=%q keybindings=%d", s.ReadTimeout, s.LogLevel, len(s.Keybindings))
	return s, nil
}

// loadFile reads Settings from a YAML file. Unknown keys are rejected.
// An empty file yields zero Settings.
func loadFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Settings{}, err
	}
	defer f.Close()

	var s Settings
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings. Non-zero
// project values win; keybindings merge per action.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Welcome != "" {
		result.Welcome = project.Welcome
	}
	if project.ReadTimeout != 0 {
		result.ReadTimeout = project.ReadTimeout
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}

	if len(project.Keybindings) > 0 {
		kb := make(map[string][]string, len(global.Keybindings)+len(project.Keybindings))
		for action, keys := range global.Keybindings {
			kb[action] = keys
		}
		for action, keys := range project.Keybindings {
			kb[action] = keys
		}
		result.Keybindings = kb
	}

	return &result
}

func applyDefaults(s *Settings) {
	if s.ReadTimeout == 0 {
		s.ReadTimeout = DefaultReadTimeout
	}
}

// Validate checks value ranges, the log level name, and keybinding
// action names. The quit action must keep at least one key: raw mode
// disables signal keys, so it is the only way out.
func (s *Settings) Validate() error {
	if s.ReadTimeout < MinReadTimeout || s.ReadTimeout > MaxReadTimeout {
		return fmt.Errorf("read_timeout %d out of range %d..%d", s.ReadTimeout, MinReadTimeout, MaxReadTimeout)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	for action := range s.Keybindings {
		if !KeyAction(action).Valid() {
			return fmt.Errorf("keybindings: unknown action %q", action)
		}
	}
	if keys, ok := s.Keybindings[string(ActionQuit)]; ok && len(keys) == 0 {
		return fmt.Errorf("keybindings: %s must have at least one key", ActionQuit)
	}
	return nil
}
