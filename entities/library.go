package entities

type LibraryItem struct {
	Meta
	Title      string `gorm:"size:255;not null" json:"title"`
	Author     string `gorm:"size:255" json:"author"`
	Type       string `gorm:"size:100" json:"type"`
	Status     string `gorm:"size:100" json:"status"`
	Rating     string `gorm:"size:50" json:"rating"`
	CoverImage string `gorm:"column:coverImage" json:"coverImage"`
}

func (LibraryItem) TableName() string { return "library_items" }
