package rt

import (
	"go.uber.org/zap"

	"github.com/tangzhangming/nvcall/internal/abi"
	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/mem"
)

// Env 调用环境
// 同一 Env 只能由一个调用栈使用；不同 Env 可以并发。
type Env struct {
	ABI        abi.Convention
	Alloc      mem.Allocator
	Reporter   errors.Reporter
	Trampoline Trampoline
	Linker     Linker // 可选，nil 时不做延迟链接
	Logger     *zap.Logger
}

// Option Env 选项
type Option func(*Env)

// WithABI 指定调用约定
func WithABI(c abi.Convention) Option { return func(e *Env) { e.ABI = c } }

// WithAllocator 指定分配器
func WithAllocator(a mem.Allocator) Option { return func(e *Env) { e.Alloc = a } }

// WithReporter 指定报告通道
func WithReporter(r errors.Reporter) Option { return func(e *Env) { e.Reporter = r } }

// WithLinker 指定链接器
func WithLinker(l Linker) Option { return func(e *Env) { e.Linker = l } }

// WithLogger 指定日志
func WithLogger(l *zap.Logger) Option { return func(e *Env) { e.Logger = l } }

// NewEnv 创建环境，默认使用本机约定、不限额的堆和丢弃型报告器
func NewEnv(t Trampoline, opts ...Option) *Env {
	e := &Env{
		ABI:        abi.Native(),
		Alloc:      mem.NewHeap(0),
		Reporter:   errors.Discard,
		Trampoline: t,
		Logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Throw 通过报告通道抛出并返回该错误
func (e *Env) Throw(err *errors.Error) *errors.Error {
	if e.Reporter != nil {
		e.Reporter.Throw(err)
	}
	return err
}

// Log 返回非空日志
func (e *Env) Log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
