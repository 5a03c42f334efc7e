package entities

import "time"

// HeroImage is a page banner blob keyed by page, upserted as a whole.
type HeroImage struct {
	PageKey   string    `gorm:"primaryKey;column:page_key;size:50" json:"pageKey"`
	ImageData string    `gorm:"column:image_data;type:text" json:"imageData"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HeroImage) TableName() string { return "hero_images" }
