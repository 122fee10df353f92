package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config represents the structure of the configuration file.
type Config struct {
	Version         string   `mapstructure:"version"`
	Theme           string   `mapstructure:"theme"`
	GithubToken     string   `mapstructure:"github_token"`
	MaxFileSize     int64    `mapstructure:"max_file_size"`
	IncludePatterns []string `mapstructure:"include_patterns"`
	ExcludePatterns []string `mapstructure:"exclude_patterns"`
	EnableCache     bool     `mapstructure:"enable_cache"`
	CacheDir        string   `mapstructure:"cache_dir"`
}

// DefaultConfig values.
var DefaultConfig = Config{
	Version:         "1.0.0",
	Theme:           "dracula",
	GithubToken:     "",
	MaxFileSize:     100_000,
	IncludePatterns: []string{"*.py", "*.js", "*.ts", "*.jsx", "*.tsx"},
	ExcludePatterns: []string{"**/node_modules/**", "**/__pycache__/**", "**/.git/**"},
	EnableCache:     true,
	CacheDir:        "",
}

// cfgFile holds the path to the configuration file (set via CLI).
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and
// environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) (*Config, error) {
	var config *Config

	setDefaults()

	viper.AutomaticEnv()
	bindEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		viper.SetConfigName("codetutor-config")
		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigType("json")
			// No configuration file is fine, defaults apply.
			_ = viper.ReadInConfig()
		}
	}

	bindFlags(rootCmd)

	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return config, nil
}

// setDefaults sets all default configuration values.
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("github_token", DefaultConfig.GithubToken)
	viper.SetDefault("max_file_size", DefaultConfig.MaxFileSize)
	viper.SetDefault("include_patterns", DefaultConfig.IncludePatterns)
	viper.SetDefault("exclude_patterns", DefaultConfig.ExcludePatterns)
	viper.SetDefault("enable_cache", DefaultConfig.EnableCache)
	viper.SetDefault("cache_dir", DefaultConfig.CacheDir)
}

// bindEnv explicitly binds environment variables to configuration keys.
func bindEnv() {
	_ = viper.BindEnv("theme", "THEME")
	_ = viper.BindEnv("github_token", "GITHUB_TOKEN")
	_ = viper.BindEnv("max_file_size", "MAX_FILE_SIZE")
	_ = viper.BindEnv("enable_cache", "ENABLE_CACHE")
	_ = viper.BindEnv("cache_dir", "CACHE_DIR")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("github_token", rootCmd.PersistentFlags().Lookup("github_token"))
	_ = viper.BindPFlag("max_file_size", rootCmd.PersistentFlags().Lookup("max_file_size"))
	_ = viper.BindPFlag("enable_cache", rootCmd.PersistentFlags().Lookup("enable_cache"))
	_ = viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache_dir"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Set the syntax highlighting theme for rendered output (e.g., 'dracula', 'light', 'dark').")
	rootCmd.PersistentFlags().String("github_token", DefaultConfig.GithubToken, "GitHub access token used when cloning private repositories.")
	rootCmd.PersistentFlags().Int64("max_file_size", DefaultConfig.MaxFileSize, "Maximum size in bytes of files included in the analysis.")
	rootCmd.PersistentFlags().Bool("enable_cache", DefaultConfig.EnableCache, "Enable or disable caching of analysis results.")
	rootCmd.PersistentFlags().String("cache_dir", DefaultConfig.CacheDir, "Directory for cached analysis results (defaults to '.cache').")

	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}
