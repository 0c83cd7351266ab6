package global

import (
	"github.com/haierkeys/note-keeper-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Note Keeper Service"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
