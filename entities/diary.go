package entities

// DiaryEntry is one dated journal entry. Content holds the body split into
// paragraphs; it and Tags are stored as JSON text in the row.
type DiaryEntry struct {
	Meta
	Title      string   `gorm:"size:255" json:"title"`
	Content    []string `gorm:"serializer:json;not null" json:"content"`
	Day        string   `gorm:"size:50" json:"day"`
	Weekday    string   `gorm:"size:50" json:"weekday"`
	Tags       []string `gorm:"serializer:json" json:"tags"`
	CoverImage string   `gorm:"column:coverImage" json:"coverImage"`
}

func (DiaryEntry) TableName() string { return "diary_entries" }
