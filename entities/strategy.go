package entities

type StrategicPlan struct {
	Meta
	Title    string `gorm:"size:255;not null" json:"title"`
	Category string `gorm:"size:100" json:"category"`
	Priority string `gorm:"size:100" json:"priority"`
	Content  string `gorm:"type:text" json:"content"`
}

func (StrategicPlan) TableName() string { return "strategic_plans" }
