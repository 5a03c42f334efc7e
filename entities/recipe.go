package entities

type Recipe struct {
	Meta
	Title      string   `gorm:"size:255;not null" json:"title"`
	PrepTime   string   `gorm:"column:prepTime;size:100" json:"prepTime"`
	CookTime   string   `gorm:"column:cookTime;size:100" json:"cookTime"`
	Difficulty string   `gorm:"size:100" json:"difficulty"`
	Tags       []string `gorm:"serializer:json" json:"tags"`
	CoverImage string   `gorm:"column:coverImage" json:"coverImage"`
}

func (Recipe) TableName() string { return "recipes" }
