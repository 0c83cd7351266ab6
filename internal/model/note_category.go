package model

const TableNameNoteCategory = "note_category"

// NoteCategory 笔记与分类的多对多关联表
// 复合主键 (note_id, category_id)，同一条边只会存在一次
type NoteCategory struct {
	NoteID     int64 `gorm:"column:note_id;primaryKey" json:"noteId"`
	CategoryID int64 `gorm:"column:category_id;primaryKey;index:idx_note_category_category_id" json:"categoryId"`
}

// TableName NoteCategory's table name
func (*NoteCategory) TableName() string {
	return TableNameNoteCategory
}
