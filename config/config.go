package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// config structure
type Config struct {
	API       APIConfig       `mapstructure:"API"`
	Tasks     TasksConfig     `mapstructure:"TASKS"`
	Logs      LogsConfig      `mapstructure:"LOGS"`
	Github    GithubConfig    `mapstructure:"GITHUB"`
	Portfolio PortfolioConfig `mapstructure:"PORTFOLIO"`
	Cache     CacheConfig     `mapstructure:"CACHE"`
}

type APIConfig struct {
	ListenPort string `mapstructure:"ListenPort"`
}

type TasksConfig struct {
	MaxParallelTasksAllowed int `mapstructure:"MaxParallelTasksAllowed"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJson"`
}

type GithubConfig struct {
	Token    string `mapstructure:"Token"`    // optional, GITHUB_TOKEN env var takes precedence
	Username string `mapstructure:"Username"` // handle used when none is given in the request
	BaseURL  string `mapstructure:"BaseURL"`  // empty means https://api.github.com/
}

type PortfolioConfig struct {
	MaxFeaturedProjects int  `mapstructure:"MaxFeaturedProjects"`
	MinStarsForFeatured int  `mapstructure:"MinStarsForFeatured"`
	IncludeReadme       bool `mapstructure:"IncludeReadme"`
	IncludeLanguages    bool `mapstructure:"IncludeLanguages"`
}

type CacheConfig struct {
	SnapshotPath string `mapstructure:"SnapshotPath"` // empty means the embedded snapshot
}

// Load reads config/config.toml (next to the binary or in the working directory)
// on top of the defaults, then applies the environment overrides
func Load() (*Config, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err != nil {
		return nil, err
	}

	// .env is optional, variables already exported in the shell win
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment variables only")
	}

	// check config file exists
	configFilePath := dir + "/config/config.toml"

	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		if _, err := os.Stat("config/config.toml"); errors.Is(err, os.ErrNotExist) {
			return nil, err
		} else {
			configFilePath = "config/config.toml"
		}
	}

	// load default and config file content
	cfg := GetDefault()
	_, err = snakelet.InitAndLoad(cfg, configFilePath)

	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides secrets and the default handle from the environment
func (c *Config) ApplyEnv() {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		c.Github.Token = token
	}

	if username := os.Getenv("GITHUB_USERNAME"); username != "" {
		c.Github.Username = username
	}
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort: "5000",
		},
		Tasks: TasksConfig{
			MaxParallelTasksAllowed: 8,
		},
		Logs: LogsConfig{
			Level:            "info",
			OutputLogsAsJSON: false,
		},
		Github: GithubConfig{
			Username: "Kuxall",
		},
		Portfolio: PortfolioConfig{
			MaxFeaturedProjects: 9,
			MinStarsForFeatured: 0,
			IncludeReadme:       false,
			IncludeLanguages:    false,
		},
	}
}
