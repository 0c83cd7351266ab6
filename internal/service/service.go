// Package service 实现业务逻辑层
package service

import (
	"github.com/haierkeys/note-keeper-service/pkg/code"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// validate 共享的参数校验器
var validate = validator.New()

// newTraceID 为一次业务操作生成追踪 ID，串联该操作的所有日志
func newTraceID() string {
	return uuid.New().String()
}

// checkParams 校验请求参数，校验失败时返回带详情的参数错误
func checkParams(params interface{}) error {
	if err := validate.Struct(params); err != nil {
		return code.ErrorInvalidParams.WithDetails(err.Error())
	}
	return nil
}

// noopLogger 保证服务在未配置日志器时也能工作
func noopLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
