package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"lifehub/config"
	"lifehub/entities"
)

// Open connects to MySQL when a DSN is configured, otherwise to a local
// sqlite file, then migrates and seeds. Fatal on any failure: the server is
// useless without its tables.
func Open(cfg config.AppConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DBDSN != "" {
		db, err = gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	if err := Seed(db); err != nil {
		log.Fatalf("seed: %v", err)
	}
	return db
}

// Migrate creates or updates every table the API serves.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.DiaryEntry{},
		&entities.PlannerTask{},
		&entities.PlannerCategory{},
		&entities.Experiment{},
		&entities.Movie{},
		&entities.Recipe{},
		&entities.Course{},
		&entities.TravelPlan{},
		&entities.StrategicPlan{},
		&entities.LibraryItem{},
		&entities.Document{},
		&entities.BinEntry{},
		&entities.Setting{},
		&entities.HeroImage{},
	)
}

// Seed inserts the default planner categories, once, when the table is empty.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.PlannerCategory{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		cats := defaultCategories()
		return tx.Create(&cats).Error
	})
}

func defaultCategories() []entities.PlannerCategory {
	return []entities.PlannerCategory{
		{Slug: "brain-dump", Title: "Brain Dump", Subtitle: "Quick ideas", Color: "#be185d", Gradient: "linear-gradient(135deg, #be185d, #db2777)"},
		{Slug: "intention", Title: "Today's Intention", Subtitle: "Focus", Color: "#10b981", Gradient: "linear-gradient(135deg, #059669, #10b981)"},
		{Slug: "weekly", Title: "Weekly Goals", Subtitle: "Priorities", Color: "#b91c1c", Gradient: "linear-gradient(135deg, #b91c1c, #dc2626)"},
		{Slug: "morning", Title: "6am Rise + Shine", Subtitle: "Morning Routine", Color: "#d97706", Gradient: "linear-gradient(135deg, #d97706, #f59e0b)"},
		{Slug: "workout", Title: "6:15am Workout", Subtitle: "Health", Color: "#a16207", Gradient: "linear-gradient(135deg, #a16207, #ca8a04)"},
		{Slug: "relax", Title: "9pm Relax + Unwind", Subtitle: "Rest", Color: "#431407", Gradient: "linear-gradient(135deg, #431407, #78350f)"},
		{Slug: "content", Title: "Content Plan", Subtitle: "Creation", Color: "#3f6212", Gradient: "linear-gradient(135deg, #3f6212, #65a30d)"},
		{Slug: "money", Title: "Finance", Subtitle: "Budget", Color: "#15803d", Gradient: "linear-gradient(135deg, #15803d, #16a34a)"},
	}
}
