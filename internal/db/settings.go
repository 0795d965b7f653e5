package db

import "time"

// SiteSettings 存储项目级的站点元数据、SEO 与主题配置，每个项目最多一条。
type SiteSettings struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	ProjectID         string    `gorm:"not null;uniqueIndex" json:"project_id"`
	Project           *Project  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	SiteName          *string   `json:"site_name"`
	SiteDescription   *string   `json:"site_description"`
	SiteLogo          *string   `json:"site_logo"`
	Favicon           *string   `json:"favicon"`
	MetaTitle         *string   `json:"meta_title"`
	MetaDescription   *string   `json:"meta_description"`
	MetaKeywords      *string   `json:"meta_keywords"`
	OGTitle           *string   `gorm:"column:og_title" json:"og_title"`
	OGDescription     *string   `gorm:"column:og_description" json:"og_description"`
	OGImage           *string   `gorm:"column:og_image" json:"og_image"`
	GoogleAnalyticsID *string   `gorm:"column:google_analytics_id" json:"google_analytics_id"`
	FacebookPixelID   *string   `gorm:"column:facebook_pixel_id" json:"facebook_pixel_id"`
	CustomCSS         *string   `gorm:"column:custom_css" json:"custom_css"`
	CustomJS          *string   `gorm:"column:custom_js" json:"custom_js"`
	HeaderScripts     *string   `json:"header_scripts"`
	FooterScripts     *string   `json:"footer_scripts"`
	PrimaryFont       *string   `json:"primary_font"`
	PrimaryColor      *string   `json:"primary_color"`
	SecondaryColor    *string   `json:"secondary_color"`
	AccentColor       *string   `json:"accent_color"`
	BorderRadius      *string   `json:"border_radius"`
	Spacing           *string   `json:"spacing"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSettings) TableName() string {
	return "settings"
}
