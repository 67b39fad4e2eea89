// Package mem 提供可失败的内存分配
//
// 调用帧的溢出槽和可变参数数组按次调用分配，调用结束即释放。
// 分配器只做配额记账，真正的存储由 Go 堆提供。
package mem

import (
	"errors"
	"unsafe"

	"go.uber.org/atomic"
)

// ErrOutOfMemory 配额耗尽
var ErrOutOfMemory = errors.New("mem: out of memory")

// Allocator 可失败分配器
type Allocator interface {
	// Reserve 申请 n 字节配额，失败时不保留任何配额
	Reserve(n int64) error
	// Release 归还 n 字节配额
	Release(n int64)
}

// Heap 带上限的堆分配器，可被多个调用栈并发使用
type Heap struct {
	limit int64
	inUse *atomic.Int64
	peak  *atomic.Int64
	fails *atomic.Int64
}

// NewHeap 创建分配器，limit <= 0 表示不限
func NewHeap(limit int64) *Heap {
	return &Heap{
		limit: limit,
		inUse: atomic.NewInt64(0),
		peak:  atomic.NewInt64(0),
		fails: atomic.NewInt64(0),
	}
}

// Reserve 实现 Allocator
func (h *Heap) Reserve(n int64) error {
	if n <= 0 {
		return nil
	}
	used := h.inUse.Add(n)
	if h.limit > 0 && used > h.limit {
		h.inUse.Sub(n)
		h.fails.Inc()
		return ErrOutOfMemory
	}
	for {
		p := h.peak.Load()
		if used <= p || h.peak.CAS(p, used) {
			break
		}
	}
	return nil
}

// Release 实现 Allocator
func (h *Heap) Release(n int64) {
	if n > 0 {
		h.inUse.Sub(n)
	}
}

// Limit 配额上限
func (h *Heap) Limit() int64 { return h.limit }

// InUse 当前占用
func (h *Heap) InUse() int64 { return h.inUse.Load() }

// Peak 历史峰值
func (h *Heap) Peak() int64 { return h.peak.Load() }

// Failures 分配失败次数
func (h *Heap) Failures() int64 { return h.fails.Load() }

// ============================================================================
// 泛型辅助
// ============================================================================

// Alloc 分配 n 个 T，返回切片和释放函数
// n == 0 时不占用配额，返回 nil 切片。
func Alloc[T any](a Allocator, n int) ([]T, func(), error) {
	if n <= 0 {
		return nil, func() {}, nil
	}
	var zero T
	size := int64(unsafe.Sizeof(zero)) * int64(n)
	if err := a.Reserve(size); err != nil {
		return nil, func() {}, err
	}
	released := false
	return make([]T, n), func() {
		if !released {
			released = true
			a.Release(size)
		}
	}, nil
}
