package entities

type Course struct {
	Meta
	Title    string `gorm:"size:255;not null" json:"title"`
	Platform string `gorm:"size:100" json:"platform"`
	Status   string `gorm:"size:100" json:"status"`
	Progress int    `gorm:"default:0" json:"progress"`
	Link     string `gorm:"type:text" json:"link"`
}

func (Course) TableName() string { return "courses" }
