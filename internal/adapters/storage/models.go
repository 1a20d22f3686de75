package storage

import "time"

// CommitModel is the GORM model for the commits table.
// Position is the zero-based index on the tape, oldest first.
type CommitModel struct {
	Identifier string `gorm:"not null"`
	Position   int    `gorm:"primaryKey;autoIncrement:false"`
	Summary    string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (CommitModel) TableName() string { return "commits" }

// StateKeyModel is the GORM model for the logical keys of the store
// ("commits" marks a built index and holds its length, "cursor" holds the cursor)
type StateKeyModel struct {
	CreatedAt time.Time
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (StateKeyModel) TableName() string { return "state_keys" }
