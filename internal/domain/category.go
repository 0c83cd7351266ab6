package domain

// Category 分类领域模型
// 分类是挂在笔记上的标签，同一分类可被多条笔记引用
type Category struct {
	ID   int64
	Name string
}
