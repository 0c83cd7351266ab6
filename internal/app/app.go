package app

import (
	"strings"

	"github.com/haierkeys/note-keeper-service/internal/dao"
	"github.com/haierkeys/note-keeper-service/internal/dao/memdb"
	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/service"
	"github.com/haierkeys/note-keeper-service/pkg/code"
	"github.com/haierkeys/note-keeper-service/pkg/convert"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，持有配置、日志、存储和所有服务
type App struct {
	Config *AppConfig
	Logger *zap.Logger

	db  *gorm.DB
	dao *dao.Dao

	NoteRepo     domain.NoteRepository
	CategoryRepo domain.CategoryRepository

	NoteService       service.NoteService
	CategoryService   service.CategoryService
	StatisticsService service.StatisticsService
}

// NewApp 根据配置构建应用容器
// Database.Type 为 memory 时使用内存存储，否则建立 GORM 连接
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	code.SetLanguage(cfg.App.Language)

	switch strings.ToLower(cfg.Database.Type) {
	case "memory":
		store := memdb.NewStore()
		a.NoteRepo = store.NoteRepository()
		a.CategoryRepo = store.CategoryRepository()
	default:
		var dbCfg dao.DBConfig
		if err := convert.StructAssign(&dbCfg, &cfg.Database); err != nil {
			return nil, errors.Wrap(err, "map database config failed")
		}
		dbCfg.Debug = strings.ToLower(cfg.Log.Level) == "debug"

		db, err := dao.NewDBEngine(dbCfg)
		if err != nil {
			return nil, errors.Wrap(err, "init database engine failed")
		}
		a.db = db
		a.dao = dao.New(db)
		a.NoteRepo = dao.NewNoteRepository(a.dao)
		a.CategoryRepo = dao.NewCategoryRepository(a.dao)
	}

	a.NoteService = service.NewNoteService(a.NoteRepo, a.CategoryRepo, logger)
	a.CategoryService = service.NewCategoryService(a.CategoryRepo, a.NoteRepo, logger)
	a.StatisticsService = service.NewStatisticsService(a.NoteRepo, a.CategoryRepo, logger)

	return a, nil
}

// Close 关闭底层数据库连接，内存模式下无操作
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
