package entities

type Experiment struct {
	Meta
	Title  string   `gorm:"size:255;not null" json:"title"`
	Status string   `gorm:"size:100" json:"status"`
	Tags   []string `gorm:"serializer:json" json:"tags"`
	Notes  string   `gorm:"type:text" json:"notes"`
}

func (Experiment) TableName() string { return "experiments" }
