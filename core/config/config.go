package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "app.log"
	// DefaultDirName is the directory under the user's home that holds the
	// configuration, history and event log.
	DefaultDirName = "catfish"
)

// Prompt color modes.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs         afero.Fs
	configurationDir string

	HistoryFile  string `json:"history_file" validate:"required"`
	HistoryLimit int    `json:"history_limit" validate:"gte=0"`
	ShowHidden   bool   `json:"show_hidden"`

	Prompt Prompt `json:"prompt"`
}

type Prompt struct {
	Symbol     string `json:"symbol" validate:"required"`
	HomeSymbol string `json:"home_symbol"`
	Color      string `json:"color" validate:"oneof=always auto never"`
	Highlight  string `json:"highlight" validate:"omitempty,regexp"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	if err := validate.RegisterValidation("regexp", isRegexp); err != nil {
		return err
	}

	return validate.Struct(c)
}

func isRegexp(fl validator.FieldLevel) bool {
	_, err := regexp.Compile(fl.Field().String())
	return err == nil
}

// Fs returns the filesystem rooted at the configuration directory.
func (c *Configuration) Fs() afero.Fs {
	return c.configFs
}

// Dir returns the configuration directory.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

// HistoryLocation returns the filesystem and name the history is stored at.
// Absolute history paths are outside the configuration directory.
func (c *Configuration) HistoryLocation() (afero.Fs, string) {
	if filepath.IsAbs(c.HistoryFile) {
		return afero.NewOsFs(), c.HistoryFile
	}
	return c.Fs(), c.HistoryFile
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	if err := c.Fs().MkdirAll(".", 0700); err != nil {
		return nil, err
	}
	return c.Fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.Fs().OpenFile(AppLogName, os.O_RDONLY, 0600)
}

// DefaultDir is the configuration directory used when none is given.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
