package errors

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ============================================================================
// 错误报告通道
// ============================================================================

// Reporter 错误报告通道
// 调用核心只负责抛出，不捕获也不吞掉报告。
type Reporter interface {
	Throw(err *Error)
}

// Recorder 记录型报告器
// 保存最近一次抛出的错误（待处理异常），并保留历史。
type Recorder struct {
	mu      sync.Mutex
	pending *Error
	history []error
	logger  *zap.Logger
}

// NewRecorder 创建报告器，logger 为 nil 时不输出日志
func NewRecorder(logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{logger: logger}
}

// Throw 实现 Reporter
func (r *Recorder) Throw(err *Error) {
	r.mu.Lock()
	r.pending = err
	r.history = append(r.history, err)
	r.mu.Unlock()

	r.logger.Debug("exception raised",
		zap.String("kind", err.Kind.ShortName()),
		zap.String("code", err.Code),
		zap.String("class", err.Class),
		zap.String("method", err.Name+err.Desc),
		zap.NamedError("cause", err.Err))
}

// Pending 当前待处理的错误
func (r *Recorder) Pending() *Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Clear 清除并返回待处理的错误
func (r *Recorder) Clear() *Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.pending
	r.pending = nil
	return e
}

// Count 已抛出的错误数
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// Err 合并全部历史错误，无错误时返回 nil
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return multierr.Combine(r.history...)
}

// Reset 清空历史
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
	r.history = nil
}

// Discard 丢弃所有报告
var Discard Reporter = discard{}

type discard struct{}

func (discard) Throw(*Error) {}
