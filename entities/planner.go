package entities

// PlannerTask references its category by slug, not id. A task may keep
// pointing at a category that was deleted; that is accepted.
type PlannerTask struct {
	Meta
	Title     string `gorm:"size:255;not null" json:"title"`
	Category  string `gorm:"size:50" json:"category"`
	Time      string `gorm:"size:100" json:"time"`
	Date      string `gorm:"size:100" json:"date"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (PlannerTask) TableName() string { return "planner_tasks" }

// PlannerCategory rows are listed in id order, which doubles as display order.
type PlannerCategory struct {
	Meta
	Slug     string `gorm:"size:100;uniqueIndex" json:"slug"`
	Title    string `gorm:"size:100;not null" json:"title"`
	Subtitle string `gorm:"size:100" json:"subtitle"`
	Color    string `gorm:"size:50" json:"color"`
	Gradient string `gorm:"type:text" json:"gradient"`
}

func (PlannerCategory) TableName() string { return "planner_categories" }
