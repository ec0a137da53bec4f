package website

import (
	"errors"
	"time"

	"github.com/dmitrymomot/telsite/pkg/cookie"
	"github.com/dmitrymomot/telsite/pkg/i18n"
	"github.com/dmitrymomot/telsite/pkg/skin"
)

// Config holds the settings of the site.
type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"telsite"`

	Languages       []string `env:"SITE_LANGUAGES" envDefault:"en,de" envSeparator:","`
	DefaultLanguage string   `env:"SITE_DEFAULT_LANGUAGE" envDefault:"en"`
	StrictLanguage  bool     `env:"SITE_STRICT_LANGUAGE" envDefault:"false"`
	DefaultSkin     string   `env:"SITE_DEFAULT_SKIN" envDefault:"classic"`
	LangCookie      string   `env:"SITE_LANG_COOKIE" envDefault:"lang"`
	SkinCookie      string   `env:"SITE_SKIN_COOKIE" envDefault:"skin"`

	ReadinessTimeout    time.Duration `env:"SITE_READINESS_TIMEOUT" envDefault:"2s"`
	TrustedProxyHeaders []string      `env:"SITE_TRUSTED_PROXY_HEADERS" envSeparator:","`

	Cookie cookie.Config
}

// Validate checks the languages are well-formed and the default skin exists.
func (c *Config) Validate() error {
	langs, err := i18n.ValidateLanguages(c.Languages, c.DefaultLanguage)
	if err != nil {
		return err
	}
	c.Languages = langs

	if _, err := skin.NewRegistry(c.DefaultSkin, skin.Classic, skin.Modern); err != nil {
		return err
	}
	if c.LangCookie == "" || c.SkinCookie == "" {
		return errors.New("SITE_LANG_COOKIE and SITE_SKIN_COOKIE must not be empty")
	}
	return nil
}
