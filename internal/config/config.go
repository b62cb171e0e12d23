package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type AppConfig struct {
	k *koanf.Koanf
}

func NewAppConfig() *AppConfig {
	c := &AppConfig{k: koanf.New(".")}

	setDefaults(c.k)

	return c
}

func (c *AppConfig) Load(filename ...string) bool {
	loaded := false

	for _, name := range filename {
		if err := c.k.Load(file.Provider(name), yaml.Parser()); err != nil {
			slog.Info(fmt.Sprintf("error loading config: %s", err.Error()))
		} else {
			loaded = true
		}
	}

	return loaded
}

func (c *AppConfig) LoadEnv(prefix string) error {
	return c.k.Load(env.Provider(prefix, ".", func(s string) string {
		s1 := strings.ToLower(strings.TrimPrefix(s, prefix))
		for _, pr := range []string{"checks_", "http_"} {
			if strings.HasPrefix(s1, pr) {
				return strings.Replace(s1, "_", ".", 1)
			}
		}

		return s1
	}), nil)
}

func (c *AppConfig) Bool(key string) bool {
	return c.k.Bool(key)
}

func (c *AppConfig) String(key string) string {
	return c.k.String(key)
}

func (c *AppConfig) Int(key string) int {
	return c.k.Int(key)
}

func (c *AppConfig) Set(key string, v any) error {
	return c.k.Set(key, v)
}

func (c *AppConfig) ReportFile() string {
	return c.k.String("report")
}

func (c *AppConfig) ServeAddr() string {
	return c.k.String("http.address")
}

func (c *AppConfig) Watch() bool {
	return c.k.Bool("watch")
}

func (c *AppConfig) SkipIdentification() bool {
	return c.k.Bool("checks.skip_identification")
}

func (c *AppConfig) CaseSensitive() bool {
	return c.k.Bool("checks.case_sensitive")
}

// Kinds lists the object kinds to verify. An empty list means all.
func (c *AppConfig) Kinds() []string {
	return c.k.Strings("checks.kinds")
}

func setDefaults(k *koanf.Koanf) {
	k.Set("report", "")
	k.Set("watch", false)
	k.Set("http.address", ":8080")
	k.Set("checks.skip_identification", false)
	k.Set("checks.case_sensitive", false)
}
