// Package code 定义业务错误码
package code

import (
	"fmt"
)

// Code 业务状态码
type Code struct {
	// 状态码
	code int
	// 状态
	status bool
	// 错误消息
	Lang lang
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure code, the code value must be unique
// NewError 注册一个失败状态码，状态码值必须唯一
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code
// NewSuss 注册一个成功状态码
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
func (e *Code) Clone() *Code {
	// 创建一个新的副本,而不是修改原对象
	return &Code{
		code:        e.code,
		status:      e.status,
		Lang:        e.Lang,
		data:        nil,
		haveData:    false,
		details:     []string{},
		haveDetails: false,
	}
}

// Error 实现 error 接口
func (e *Code) Error() string {
	return e.Msg()
}

// Code 返回状态码值
func (e *Code) Code() int {
	return e.code
}

// Status 返回是否为成功状态
func (e *Code) Status() bool {
	return e.status
}

// Msg 返回当前语言的消息文本
func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

// Details 返回错误详情
func (e *Code) Details() []string {
	return e.details
}

// Data 返回附加数据
func (e *Code) Data() interface{} {
	return e.data
}

// HaveDetails 是否含有详情
func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

// HaveData 是否含有附加数据
func (e *Code) HaveData() bool {
	return e.haveData
}

// WithData 附加数据并返回副本，避免污染注册的全局状态码
// WithData attaches data on a copy so the registered code stays untouched
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

// WithDetails 附加错误详情并返回副本
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

// Is 判断 target 是否为同一状态码，供 errors.Is 使用
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	if !ok {
		return false
	}
	return e.code == t.code
}
