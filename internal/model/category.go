package model

const TableNameCategory = "category"

// Category mapped from table <category>
type Category struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id" form:"id"`
	Name string `gorm:"column:name;not null;uniqueIndex:idx_category_name" json:"name" form:"name"`
}

// TableName Category's table name
func (*Category) TableName() string {
	return TableNameCategory
}
