package convert

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// StructAssign copies same-named exported fields from source to target
// StructAssign 将 source 中同名导出字段复制到 target
// target 必须为指针
func StructAssign(target interface{}, source interface{}) error {
	if err := copier.Copy(target, source); err != nil {
		return errors.Wrap(err, "copy struct failed")
	}
	return nil
}
