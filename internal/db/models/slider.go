package models

// Slider is a homepage slider managed by a separate module. Its table is
// optional and never migrated here.
type Slider struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Slug     string `gorm:"size:255" json:"slug"`
	Location string `gorm:"size:100" json:"location"`
	IsActive bool   `json:"is_active"`
}

// TableName specifies the database table name for the Slider model.
func (Slider) TableName() string {
	return "sliders"
}
