package entities

// Document stores file metadata plus the file itself as an opaque data URL.
type Document struct {
	Meta
	Title    string `gorm:"size:255;not null" json:"title"`
	Category string `gorm:"size:100" json:"category"`
	FileSize string `gorm:"column:fileSize;size:50" json:"fileSize"`
	FileType string `gorm:"column:fileType;size:100" json:"fileType"`
	FileURL  string `gorm:"column:fileUrl;type:text" json:"fileUrl"`
}

func (Document) TableName() string { return "documents" }
