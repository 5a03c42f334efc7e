package entities

type TravelPlan struct {
	Meta
	Destination string   `gorm:"size:255;not null" json:"destination"`
	Dates       string   `gorm:"size:255" json:"dates"`
	Status      string   `gorm:"size:100" json:"status"`
	Budget      string   `gorm:"size:100" json:"budget"`
	Activities  []string `gorm:"serializer:json" json:"activities"`
}

func (TravelPlan) TableName() string { return "travel_plans" }
