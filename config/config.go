package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/viper"
)

type Config struct {
	API  APIConfig  `json:"api" mapstructure:"api"`
	Log  LogConfig  `json:"log" mapstructure:"log"`
	UI   UIConfig   `json:"ui" mapstructure:"ui"`
	Mock MockConfig `json:"mock" mapstructure:"mock"`
}

type APIConfig struct {
	BaseURL string        `json:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
	// Output is stdout, stderr or a file path. Empty picks a per-command default.
	Output string `json:"output" mapstructure:"output"`
}

type UIConfig struct {
	MutationDelay time.Duration `json:"mutation_delay" mapstructure:"mutation_delay"`
}

type MockConfig struct {
	Port string `json:"port" mapstructure:"port"`
}

const (
	FileName  = "userboard.config.json"
	envPrefix = "USERBOARD"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://jsonplaceholder.typicode.com")
	v.SetDefault("api.timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "")

	v.SetDefault("ui.mutation_delay", 500*time.Millisecond)

	v.SetDefault("mock.port", "8889")
}

// Default is the configuration used when neither a file nor the environment
// says otherwise.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(err)
	}
	return &c
}

// Load reads defaults, then fp (or ./userboard.config.json when fp is empty),
// then USERBOARD_* environment variables. A missing default file is not an error.
func Load(fp string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fp != "" {
		v.SetConfigFile(fp)
		v.SetConfigType("json")
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".json"))
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if fp != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// writes the values of the config to a file
// NOTE: this will overwrite the previous generated file
func (c *Config) WriteToFile(fp string) error {
	bs, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}

	f, err := os.OpenFile(fp, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0660)
	if err != nil {
		return err
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Println(err)
		}
	}()

	if _, err := f.Write(bs); err != nil {
		return err
	}

	return nil
}
