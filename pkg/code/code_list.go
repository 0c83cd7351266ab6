package code

// 全局通用状态码
var (
	// Success 操作成功
	Success = NewSuss(0, lang{"Success", "成功"})

	// ErrorInvalidParams 请求参数错误
	ErrorInvalidParams = NewError(10000001, lang{"Invalid params", "请求参数错误"})

	// ErrorDBQuery 存储层读写失败
	ErrorDBQuery = NewError(10000002, lang{"Storage query failed", "存储读写失败"})
)

// 笔记相关状态码
var (
	// ErrorNoteNotFound 笔记不存在
	ErrorNoteNotFound = NewError(10000101, lang{"Note not found", "笔记不存在"})

	// ErrorNoteTitleEmpty 笔记标题为空
	ErrorNoteTitleEmpty = NewError(10000102, lang{"Note title can not be empty", "笔记标题不能为空"})
)

// 分类相关状态码
var (
	// ErrorCategoryNotFound 分类不存在
	ErrorCategoryNotFound = NewError(10000201, lang{"Category not found", "分类不存在"})

	// ErrorCategoryNameEmpty 分类名称为空
	ErrorCategoryNameEmpty = NewError(10000202, lang{"Category name can not be empty", "分类名称不能为空"})

	// ErrorCategoryNameDuplicate 分类名称重复（不区分大小写）
	ErrorCategoryNameDuplicate = NewError(10000203, lang{"Category name already exists", "分类名称已存在"})

	// ErrorCategoryInUse 分类仍被笔记引用，禁止删除
	ErrorCategoryInUse = NewError(10000204, lang{"Category is used by notes and can not be deleted", "分类正在被笔记使用，无法删除"})
)
