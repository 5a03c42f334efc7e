package entities

type Movie struct {
	Meta
	Title      string `gorm:"size:255;not null" json:"title"`
	Rating     string `gorm:"size:50" json:"rating"`
	Genre      string `gorm:"size:100" json:"genre"`
	Status     string `gorm:"size:100" json:"status"`
	Watched    string `gorm:"size:100" json:"watched"`
	CoverImage string `gorm:"column:coverImage" json:"coverImage"`
}

func (Movie) TableName() string { return "movies" }
