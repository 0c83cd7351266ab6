// Package cmd 定义命令行入口和各个子命令
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/haierkeys/note-keeper-service/global"
	internalApp "github.com/haierkeys/note-keeper-service/internal/app"
	apperrors "github.com/haierkeys/note-keeper-service/pkg/errors"
	"github.com/haierkeys/note-keeper-service/pkg/fileurl"
	"github.com/haierkeys/note-keeper-service/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDefault string

type rootFlags struct {
	dir    string // 工作目录
	config string // 指定要使用的配置文件路径
}

var rootEnv = new(rootFlags)

var rootCmd = &cobra.Command{
	Use:   internalApp.Name,
	Short: global.Name,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootEnv.config, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&rootEnv.dir, "dir", "d", "", "working directory")
}

// Execute 执行根命令
// c 为嵌入的默认配置内容，配置文件缺失时用于自动创建
func Execute(c string) {
	configDefault = c
	err := rootCmd.Execute()
	// 退出前刷新日志缓冲
	global.LogSync()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newApp 加载配置、初始化日志器并构建应用容器
// 配置文件查找顺序 config/config-dev.yaml > config.yaml > config/config.yaml
// 全部缺失时从嵌入的默认配置自动创建
func newApp() (*internalApp.App, error) {
	if len(rootEnv.dir) > 0 {
		if err := os.Chdir(rootEnv.dir); err != nil {
			return nil, err
		}
		bootstrapLogger.Info("working directory changed", zap.String("dir", rootEnv.dir))
	}

	config := rootEnv.config
	if len(config) <= 0 {
		if fileurl.IsExist("config/config-dev.yaml") {
			config = "config/config-dev.yaml"
		} else if fileurl.IsExist("config.yaml") {
			config = "config.yaml"
		} else if fileurl.IsExist("config/config.yaml") {
			config = "config/config.yaml"
		} else {
			bootstrapLogger.Warn("config file not found, creating default config")
			config = "config/config.yaml"

			if err := fileurl.CreatePath(config, os.ModePerm); err != nil {
				return nil, err
			}
			if err := os.WriteFile(config, []byte(configDefault), 0666); err != nil {
				return nil, err
			}
			bootstrapLogger.Info("config file auto create successfully", zap.String("path", config))
		}
	}

	cfg, realpath, err := internalApp.LoadConfig(config)
	if err != nil {
		return nil, err
	}

	lg, err := logger.NewLogger(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		Production: cfg.Log.Production,
	})
	if err != nil {
		return nil, err
	}
	global.Logger = lg
	lg.Info("config loaded", zap.String("path", realpath))

	if strings.ToLower(cfg.Log.Level) == "debug" {
		global.Dump(cfg)
	}

	return internalApp.NewApp(cfg, lg)
}

// printErr 输出业务错误，带错误码和详情
func printErr(err error) {
	if c := apperrors.AsCode(err); c != nil {
		appErr := apperrors.NewAppError(c, nil)
		fmt.Printf("error %d: %s\n", appErr.Code, appErr.Message)
		for _, d := range appErr.Details {
			fmt.Println("  " + d)
		}
		return
	}
	fmt.Println(err)
}
