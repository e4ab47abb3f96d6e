// Package store holds configuration and the persisted user state:
// the text-size preference and saved sample lists.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the resolved application settings.
type Config interface {
	// BasePath is the diskv root for preferences and samples.
	BasePath() string
	// LexiconPath points at the icon lexicon JSON; empty means the
	// built-in default lexicon.
	LexiconPath() string
	// IconBase is the icon asset directory; empty disables icons.
	IconBase() string
	// IconExt is the fixed asset extension.
	IconExt() string
	// TextSize is the configured default item font size in points.
	TextSize() float64
}

// LoadConfig reads .printlist.yaml from the working directory or the
// PRINTLIST_CONFIG_PATH override, with PRINTLIST_* env variables on
// top. A missing config file is not an error.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.printlist.db")
	viper.SetDefault("icons.ext", "png")
	viper.SetDefault("textsize", 11)
	viper.SetConfigName(".printlist")
	viper.SetEnvPrefix("PRINTLIST")
	viper.AutomaticEnv()

	if override := os.Getenv("PRINTLIST_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return &fileConfig{
		Path:     expand(viper.GetString("path")),
		Lexicon:  expand(viper.GetString("lexicon")),
		Icons:    expand(viper.GetString("icons.path")),
		Ext:      viper.GetString("icons.ext"),
		Textsize: viper.GetFloat64("textsize"),
	}, nil
}

type fileConfig struct {
	Path     string
	Lexicon  string
	Icons    string
	Ext      string
	Textsize float64
}

func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) LexiconPath() string { return f.Lexicon }
func (f *fileConfig) IconBase() string    { return f.Icons }
func (f *fileConfig) IconExt() string     { return f.Ext }
func (f *fileConfig) TextSize() float64   { return f.Textsize }

// expand resolves a leading ~ to the user's home directory.
func expand(path string) string {
	if path == "" {
		return ""
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return filepath.Clean(p)
}
