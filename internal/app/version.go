package app

// 构建时通过 -ldflags 注入
var (
	Version   = "dev"
	GitTag    = ""
	BuildTime = ""
)

// Name 应用名称
const Name = "note-keeper"
