package core

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// ConfigFilename is searched in the working directory, then in $HOME.
const ConfigFilename = ".moodlint.toml"

// Default configuration when no .moodlint.toml file exists
const DefaultConfig = `
[core]
extensions=["py", "go", "js", "rb", "sh"]
color=true
`

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core ConfigCore
}
type ConfigCore struct {
	Extensions []string
	Color      bool
}

type Config struct {
	ConfigFile ConfigFile

	// Non-empty when the configuration was read from a file
	Path string
}

// SupportExtension checks if the given file extension must be considered.
func (f *ConfigFile) SupportExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".py" => "py"
	return slices.ContainsFunc(f.Core.Extensions, func(extension string) bool {
		return strings.EqualFold(extension, ext) // case-insensitive
	})
}

// ReadConfig loads .moodlint.toml from the working directory or the home
// directory, falling back on the built-in defaults when absent.
func ReadConfig() (*Config, error) {
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, ConfigFilename))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ConfigFilename))
	}

	for _, path := range candidates {
		config, err := readConfigFromFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return config, nil
	}

	return DefaultConfigFile()
}

// DefaultConfigFile parses the built-in configuration document.
func DefaultConfigFile() (*Config, error) {
	var configFile ConfigFile
	if err := toml.Unmarshal([]byte(DefaultConfig), &configFile); err != nil {
		return nil, NewConfigurationError("invalid built-in configuration: %v", err)
	}
	return &Config{ConfigFile: configFile}, nil
}

func readConfigFromFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var configFile ConfigFile
	if err := toml.Unmarshal(content, &configFile); err != nil {
		return nil, NewConfigurationError("invalid configuration file %s: %v", path, err)
	}
	if len(configFile.Core.Extensions) == 0 {
		// Extensions omitted in the file keep their defaults
		defaults, err := DefaultConfigFile()
		if err != nil {
			return nil, err
		}
		configFile.Core.Extensions = defaults.ConfigFile.Core.Extensions
	}
	CurrentLogger().Infof("read configuration from %s", path)
	return &Config{ConfigFile: configFile, Path: path}, nil
}

// RuleFile is the YAML document overriding the built-in classification
// rules and feedback templates.
type RuleFile struct {
	Rules     []*KeywordRule      `yaml:"rules"`
	Templates []*FeedbackTemplate `yaml:"templates"`
}

// LoadRules reads a YAML rule file and merges it over the built-in
// tables. Rules replace the built-in ruleset wholesale (order in the file
// is the priority order); templates override per emotion.
func LoadRules(path string) (Ruleset, FeedbackTable, error) {
	rules := DefaultRuleset()
	templates := DefaultFeedbackTable()
	if path == "" {
		return rules, templates, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &InputError{Path: path, Cause: err}
	}

	var ruleFile RuleFile
	if err := yaml.Unmarshal(content, &ruleFile); err != nil {
		return nil, nil, NewConfigurationError("invalid rule file %s: %v", path, err)
	}

	if len(ruleFile.Rules) > 0 {
		rules = Ruleset(ruleFile.Rules)
	}
	for _, template := range ruleFile.Templates {
		if !template.Emotion.Known() {
			return nil, nil, NewConfigurationError("template references unknown emotion %q", template.Emotion)
		}
		templates[template.Emotion] = template
	}

	if err := rules.Validate(); err != nil {
		return nil, nil, err
	}
	if err := templates.Validate(); err != nil {
		return nil, nil, err
	}

	return rules, templates, nil
}
