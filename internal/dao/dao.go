// Package dao 实现数据访问层
package dao

import (
	"fmt"
	"os"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/model"
	"github.com/haierkeys/note-keeper-service/pkg/fileurl"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DBConfig 数据库连接配置
type DBConfig struct {
	// Type 数据库类型 sqlite / mysql
	Type string
	// Path SQLite 数据库文件路径
	Path string
	// UserName 用户名
	UserName string
	// Password 密码
	Password string
	// Host 主机
	Host string
	// Name 数据库名
	Name string
	// Charset 字符集
	Charset string
	// ParseTime 是否解析时间
	ParseTime bool
	// AutoMigrate 是否启用自动迁移
	AutoMigrate bool
	// MaxIdleConns 最大闲置连接数
	MaxIdleConns int
	// MaxOpenConns 最大打开连接数
	MaxOpenConns int
	// Debug 是否输出 SQL 日志
	Debug bool
}

// Dao 数据访问对象，持有数据库连接
type Dao struct {
	db *gorm.DB
}

// New 创建 Dao 实例
func New(db *gorm.DB) *Dao {
	return &Dao{db: db}
}

// DB 返回底层 gorm 连接
func (d *Dao) DB() *gorm.DB {
	return d.db
}

// NewDBEngine 创建数据库引擎
func NewDBEngine(c DBConfig) (*gorm.DB, error) {

	dialector := userDialector(c)
	if dialector == nil {
		return nil, fmt.Errorf("unsupported database type: %s", c.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			// 使用单数表名，`Note` 的表名为 `note`
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}
	if c.Debug {
		db.Config.Logger = logger.Default.LogMode(logger.Info)
	}

	// 显式注册多对多关联表，笔记删除时关联边一并清除
	if err := db.SetupJoinTable(&model.Note{}, "Categories", &model.NoteCategory{}); err != nil {
		return nil, err
	}

	if c.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	// 获取通用数据库对象 sql.DB ，然后使用其提供的功能
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SetMaxIdleConns 用于设置连接池中空闲连接的最大数量。
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)

	// SetMaxOpenConns 设置打开数据库连接的最大数量。
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)

	// SetConnMaxLifetime 设置了连接可复用的最大时间。
	sqlDB.SetConnMaxLifetime(time.Minute * 10)

	return db, nil
}

func userDialector(c DBConfig) gorm.Dialector {
	if c.Type == "mysql" {
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		))
	} else if c.Type == "sqlite" {
		if !fileurl.IsExist(c.Path) {
			fileurl.CreatePath(c.Path, os.ModePerm)
		}
		return sqlite.Open(c.Path)
	}
	return nil
}
