package model

import (
	"github.com/haierkeys/note-keeper-service/pkg/timex"
)

const TableNameNote = "note"

// Note mapped from table <note>
type Note struct {
	ID         int64       `gorm:"column:id;primaryKey" json:"id" form:"id"`
	Title      string      `gorm:"column:title;not null" json:"title" form:"title"`
	Content    string      `gorm:"column:content" json:"content" form:"content"`
	IsFavorite bool        `gorm:"column:is_favorite;default:false;index:idx_is_favorite" json:"isFavorite" form:"isFavorite"`
	Categories []*Category `gorm:"many2many:note_category;joinForeignKey:note_id;joinReferences:category_id" json:"categories"`
	CreatedAt  timex.Time  `gorm:"column:created_at;type:datetime;index:idx_created_at;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}
