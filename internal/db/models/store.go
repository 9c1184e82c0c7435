package models

// Store is a storefront of the platform. Stores are owned by the host; this
// module only reads them.
type Store struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Domain   string `gorm:"size:255;index" json:"domain"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

// TableName specifies the database table name for the Store model.
func (Store) TableName() string {
	return "stores"
}
