// Package config reads presentation and runtime settings. Gameplay rules are
// compiled in and cannot be changed here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	FileName  = "paperwork"
	EnvPrefix = "PAPERWORK"
)

type Window struct {
	Title string
	Scale int
}

type Assets struct {
	Background string
	Font       string
	Soundtrack string
}

type Audio struct {
	Volume float64
	Mute   bool
}

type Log struct {
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Level      string
}

type Config struct {
	Window Window
	Assets Assets
	Audio  Audio
	Log    Log

	// Seed for the game's random source; 0 picks one from the clock.
	Seed int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Paperwork Invaders")
	v.SetDefault("window.scale", 1)

	v.SetDefault("assets.background", "background.png")
	v.SetDefault("assets.font", "fonts/MatrixCodeNFI.ttf")
	v.SetDefault("assets.soundtrack", "soundtrack.wav")

	v.SetDefault("audio.volume", 1.0)
	v.SetDefault("audio.mute", false)

	v.SetDefault("log.file", "paperwork.log")
	v.SetDefault("log.maxSize", 10)
	v.SetDefault("log.maxBackups", 3)
	v.SetDefault("log.maxAge", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.level", "Info")

	v.SetDefault("game.seed", 0)
}

// Load reads dir/paperwork.properties and PAPERWORK_* environment variables
// on top of the defaults. A dir/.env file is loaded into the environment
// first when present. Neither file is required.
func Load(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v, err := newViper()
	if err != nil {
		return Config{}, err
	}
	setDefaults(v)
	v.SetConfigName(FileName)
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var (
		c    Config
		errs []error
	)
	toInt := func(key string) int {
		n, err := cast.ToIntE(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return n
	}
	toBool := func(key string) bool {
		b, err := cast.ToBoolE(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return b
	}

	c.Window.Title = cast.ToString(v.Get("window.title"))
	c.Window.Scale = toInt("window.scale")

	c.Assets.Background = cast.ToString(v.Get("assets.background"))
	c.Assets.Font = cast.ToString(v.Get("assets.font"))
	c.Assets.Soundtrack = cast.ToString(v.Get("assets.soundtrack"))

	vol, err := cast.ToFloat64E(v.Get("audio.volume"))
	if err != nil {
		errs = append(errs, fmt.Errorf("audio.volume: %w", err))
	}
	c.Audio.Volume = vol
	c.Audio.Mute = toBool("audio.mute")

	c.Log.File = cast.ToString(v.Get("log.file"))
	c.Log.MaxSize = toInt("log.maxSize")
	c.Log.MaxBackups = toInt("log.maxBackups")
	c.Log.MaxAge = toInt("log.maxAge")
	c.Log.Compress = toBool("log.compress")
	c.Log.Level = cast.ToString(v.Get("log.level"))

	seed, err := cast.ToInt64E(v.Get("game.seed"))
	if err != nil {
		errs = append(errs, fmt.Errorf("game.seed: %w", err))
	}
	c.Seed = seed

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c.normalized(), nil
}

func (c Config) normalized() Config {
	c.Window.Scale = max(c.Window.Scale, 1)
	c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)
	return c
}
