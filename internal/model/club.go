package model

// Club is the club a member belongs to. Only lookup by id is supported.
type Club struct {
	ID          uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;type:VARCHAR(100);not null;uniqueIndex:idx_club_name"`
	Description string  `gorm:"column:description;type:VARCHAR(1000)"`
	ImageURL    *string `gorm:"column:image_url;type:VARCHAR(500)"`

	BaseEntity
}

// TableName specifies the table name for Club
func (*Club) TableName() string {
	return "club"
}
