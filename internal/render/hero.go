package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// HeroImageConfig is the nested config shape of the hero-1 template.
type HeroImageConfig struct {
	HeroImage   ImageRef    `mapstructure:"heroImage"`
	Background  Fill        `mapstructure:"background"`
	Title       StyledText  `mapstructure:"title"`
	Description StyledText  `mapstructure:"description"`
	Button      ButtonStyle `mapstructure:"button"`
}

// ImageRef points at the hero picture.
type ImageRef struct {
	Src string `mapstructure:"src"`
}

// Fill is an optional background colour.
type Fill struct {
	Value *string `mapstructure:"value"`
}

// StyledText is a text run with an optional colour.
type StyledText struct {
	Text  string  `mapstructure:"text"`
	Color *string `mapstructure:"color"`
}

// ButtonStyle describes the call-to-action button.
type ButtonStyle struct {
	Text      string  `mapstructure:"text"`
	Color     *string `mapstructure:"color"`
	TextColor *string `mapstructure:"textColor"`
}

const (
	defaultHeroBackground       = "#F5F5F0"
	defaultHeroTitleColor       = "#2B2B2B"
	defaultHeroDescriptionColor = "#6B6B6B"
	defaultHeroButtonBackground = "#A8F5B8"
	defaultHeroButtonTextColor  = "#2B2B2B"
)

// DecodeHeroImageConfig converts a generic block config into the hero-1 shape.
func DecodeHeroImageConfig(config map[string]any) (HeroImageConfig, error) {
	var out HeroImageConfig
	if err := mapstructure.Decode(config, &out); err != nil {
		return HeroImageConfig{}, fmt.Errorf("decode %s config: %w", HeroImageTemplateID, err)
	}
	return out, nil
}

func renderHeroImage(config map[string]any) (string, error) {
	hero, err := DecodeHeroImageConfig(config)
	if err != nil {
		return "", err
	}

	values := []string{
		"{{heroImage}}", hero.HeroImage.Src,
		"{{backgroundColor}}", colorOr(hero.Background.Value, defaultHeroBackground),
		"{{titleColor}}", colorOr(hero.Title.Color, defaultHeroTitleColor),
		"{{title}}", hero.Title.Text,
		"{{descriptionColor}}", colorOr(hero.Description.Color, defaultHeroDescriptionColor),
		"{{description}}", hero.Description.Text,
		"{{buttonText}}", hero.Button.Text,
		"{{buttonBg}}", colorOr(hero.Button.Color, defaultHeroButtonBackground),
		"{{buttonColor}}", colorOr(hero.Button.TextColor, defaultHeroButtonTextColor),
	}
	for i := 1; i < len(values); i += 2 {
		values[i] = html.EscapeString(values[i])
	}

	return strings.NewReplacer(values...).Replace(fragments[HeroImageTemplateID]), nil
}

// colorOr 返回配置的颜色，缺省或不是合法颜色字面量时使用 fallback。
func colorOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return cssColor(strings.TrimSpace(*value), fallback)
}
