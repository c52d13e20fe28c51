package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gestory/gestoryctl/pkg/sdk"
)

// Load resolves the API base URL from, in order of precedence: the --server
// flag, the GESTORY_API_URL environment variable, the config file, and the
// built-in default. If configFile is empty, gestory.yaml/.yml is searched in
// the working directory and ~/.gestory.
func Load(configFile, flagURL string) (*GlobalConfig, error) {
	v := viper.New()
	v.SetDefault("api_url", sdk.DefaultBaseURL)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if found := findConfigFile(); found != "" {
		v.SetConfigFile(found)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variable support: GESTORY_API_URL
	v.SetEnvPrefix("GESTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := &GlobalConfig{
		APIURL:         v.GetString("api_url"),
		NonInteractive: v.GetBool("non_interactive"),
	}
	if flagURL != "" {
		cfg.APIURL = flagURL
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("API URL must not be empty")
	}
	return cfg, nil
}

// findConfigFile searches the working directory and ~/.gestory for a config
// file with an explicit YAML extension.
func findConfigFile() string {
	home, _ := os.UserHomeDir()
	paths := []string{"."}
	if home != "" {
		paths = append(paths, filepath.Join(home, ".gestory"))
	}
	for _, dir := range paths {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, "gestory"+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
