package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitebuilder/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSettingsNotFound 表示项目尚未保存过站点设置。
var ErrSettingsNotFound = errors.New("settings not found")

// 主题默认值，在项目首次保存设置前返回。
const (
	DefaultPrimaryFont    = "Inter"
	DefaultPrimaryColor   = "#3B82F6"
	DefaultSecondaryColor = "#6B7280"
	DefaultAccentColor    = "#10B981"
	DefaultBorderRadius   = "8px"
	DefaultSpacing        = "16px"
)

// SettingsInput 是可写的站点设置字段，nil 表示本次不修改。
// id、project_id 与时间戳不在其中，调用方无法覆盖。
type SettingsInput struct {
	SiteName          *string `json:"site_name"`
	SiteDescription   *string `json:"site_description"`
	SiteLogo          *string `json:"site_logo"`
	Favicon           *string `json:"favicon"`
	MetaTitle         *string `json:"meta_title"`
	MetaDescription   *string `json:"meta_description"`
	MetaKeywords      *string `json:"meta_keywords"`
	OGTitle           *string `json:"og_title"`
	OGDescription     *string `json:"og_description"`
	OGImage           *string `json:"og_image"`
	GoogleAnalyticsID *string `json:"google_analytics_id"`
	FacebookPixelID   *string `json:"facebook_pixel_id"`
	CustomCSS         *string `json:"custom_css"`
	CustomJS          *string `json:"custom_js"`
	HeaderScripts     *string `json:"header_scripts"`
	FooterScripts     *string `json:"footer_scripts"`
	PrimaryFont       *string `json:"primary_font"`
	PrimaryColor      *string `json:"primary_color"`
	SecondaryColor    *string `json:"secondary_color"`
	AccentColor       *string `json:"accent_color"`
	BorderRadius      *string `json:"border_radius"`
	Spacing           *string `json:"spacing"`
}

func (in SettingsInput) columns() map[string]*string {
	return map[string]*string{
		"site_name":           in.SiteName,
		"site_description":    in.SiteDescription,
		"site_logo":           in.SiteLogo,
		"favicon":             in.Favicon,
		"meta_title":          in.MetaTitle,
		"meta_description":    in.MetaDescription,
		"meta_keywords":       in.MetaKeywords,
		"og_title":            in.OGTitle,
		"og_description":      in.OGDescription,
		"og_image":            in.OGImage,
		"google_analytics_id": in.GoogleAnalyticsID,
		"facebook_pixel_id":   in.FacebookPixelID,
		"custom_css":          in.CustomCSS,
		"custom_js":           in.CustomJS,
		"header_scripts":      in.HeaderScripts,
		"footer_scripts":      in.FooterScripts,
		"primary_font":        in.PrimaryFont,
		"primary_color":       in.PrimaryColor,
		"secondary_color":     in.SecondaryColor,
		"accent_color":        in.AccentColor,
		"border_radius":       in.BorderRadius,
		"spacing":             in.Spacing,
	}
}

// SettingsService 读取与保存项目级站点设置。
type SettingsService struct {
	store *db.Store
	now   func() time.Time
}

// NewSettingsService 构造 SettingsService。
func NewSettingsService(store *db.Store) *SettingsService {
	return &SettingsService{store: store, now: utcNow}
}

// Get 返回项目的站点设置，不存在时返回 ErrSettingsNotFound。
func (s *SettingsService) Get(ctx context.Context, projectID string) (*db.SiteSettings, error) {
	var settings db.SiteSettings
	err := s.store.Run(ctx, "settings.get", func(tx *gorm.DB) error {
		return tx.First(&settings, "project_id = ?", projectID).Error
	})
	if err != nil {
		return nil, notFound(err, ErrSettingsNotFound)
	}
	return &settings, nil
}

// DefaultSettings 是项目尚未保存设置时返回的文档，只含可写字段。
type DefaultSettings struct {
	ProjectID string `json:"project_id"`
	SettingsInput
}

// Defaults 构造尚未保存设置的项目所使用的默认文档。
func (s *SettingsService) Defaults(projectID string) DefaultSettings {
	empty := func() *string {
		v := ""
		return &v
	}
	value := func(v string) *string { return &v }

	return DefaultSettings{
		ProjectID: projectID,
		SettingsInput: SettingsInput{
			SiteName:          empty(),
			SiteDescription:   empty(),
			SiteLogo:          empty(),
			Favicon:           empty(),
			MetaTitle:         empty(),
			MetaDescription:   empty(),
			MetaKeywords:      empty(),
			OGTitle:           empty(),
			OGDescription:     empty(),
			OGImage:           empty(),
			GoogleAnalyticsID: empty(),
			FacebookPixelID:   empty(),
			CustomCSS:         empty(),
			CustomJS:          empty(),
			HeaderScripts:     empty(),
			FooterScripts:     empty(),
			PrimaryFont:       value(DefaultPrimaryFont),
			PrimaryColor:      value(DefaultPrimaryColor),
			SecondaryColor:    value(DefaultSecondaryColor),
			AccentColor:       value(DefaultAccentColor),
			BorderRadius:      value(DefaultBorderRadius),
			Spacing:           value(DefaultSpacing),
		},
	}
}

// Save 以 project_id 为键插入或更新设置。首次保存生成 id 与时间戳，
// 之后只写入本次提供的字段和 updated_at。
func (s *SettingsService) Save(ctx context.Context, projectID string, input SettingsInput) (*db.SiteSettings, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrProjectIDMissing
	}

	now := s.now()
	record := db.SiteSettings{
		ID:                uuid.NewString(),
		ProjectID:         projectID,
		SiteName:          input.SiteName,
		SiteDescription:   input.SiteDescription,
		SiteLogo:          input.SiteLogo,
		Favicon:           input.Favicon,
		MetaTitle:         input.MetaTitle,
		MetaDescription:   input.MetaDescription,
		MetaKeywords:      input.MetaKeywords,
		OGTitle:           input.OGTitle,
		OGDescription:     input.OGDescription,
		OGImage:           input.OGImage,
		GoogleAnalyticsID: input.GoogleAnalyticsID,
		FacebookPixelID:   input.FacebookPixelID,
		CustomCSS:         input.CustomCSS,
		CustomJS:          input.CustomJS,
		HeaderScripts:     input.HeaderScripts,
		FooterScripts:     input.FooterScripts,
		PrimaryFont:       input.PrimaryFont,
		PrimaryColor:      input.PrimaryColor,
		SecondaryColor:    input.SecondaryColor,
		AccentColor:       input.AccentColor,
		BorderRadius:      input.BorderRadius,
		Spacing:           input.Spacing,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	updates := map[string]interface{}{"updated_at": now}
	for column, value := range input.columns() {
		if value != nil {
			updates[column] = *value
		}
	}

	var saved db.SiteSettings
	err := s.store.Run(ctx, "settings.save", func(tx *gorm.DB) error {
		if err := projectExists(tx, projectID); err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}},
			DoUpdates: clause.Assignments(updates),
		}).Create(&record).Error; err != nil {
			return err
		}
		return tx.First(&saved, "project_id = ?", projectID).Error
	})
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("save settings of %s: %w", projectID, err)
	}
	return &saved, nil
}
