// machine.go - 本地函数表与模拟蹦床
//
// Machine 用 Go 函数充当本地实现：注册时分配入口地址，
// 调用时按帧中的 Function 分派。它同时充当符号表，
// 供本地链接器按 JNI 名称查找。

package emu

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/tangzhangming/nvcall/internal/rt"
)

// Func 本地实现：读取帧，返回寄存器内容
type Func func(frame *rt.Frame) rt.Raw

// entryBase 第一个入口地址，避开 0（未链接）
const entryBase = 0x1000

// entry 函数表项
type entry struct {
	Symbol     string
	EntryPoint rt.Impl
	Fn         Func
	CallCount  *atomic.Int64
}

// Machine 模拟本地函数表
type Machine struct {
	mu       sync.RWMutex
	bySymbol map[string]*entry
	byAddr   map[rt.Impl]*entry

	next   *atomic.Uint64
	misses *atomic.Int64
	last   *rt.Frame
}

// NewMachine 创建空函数表
func NewMachine() *Machine {
	return &Machine{
		bySymbol: make(map[string]*entry),
		byAddr:   make(map[rt.Impl]*entry),
		next:     atomic.NewUint64(entryBase),
		misses:   atomic.NewInt64(0),
	}
}

// Register 注册实现并返回入口地址
// 重复注册同一符号会替换实现，入口地址不变。
func (m *Machine) Register(symbol string, fn Func) rt.Impl {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.bySymbol[symbol]; ok {
		e.Fn = fn
		return e.EntryPoint
	}
	e := &entry{
		Symbol:     symbol,
		EntryPoint: rt.Impl(m.next.Add(16)),
		Fn:         fn,
		CallCount:  atomic.NewInt64(0),
	}
	m.bySymbol[symbol] = e
	m.byAddr[e.EntryPoint] = e
	return e.EntryPoint
}

// Lookup 按符号查找入口地址
func (m *Machine) Lookup(symbol string) (rt.Impl, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.bySymbol[symbol]; ok {
		return e.EntryPoint, true
	}
	return 0, false
}

// Symbol 按入口地址反查符号
func (m *Machine) Symbol(impl rt.Impl) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.byAddr[impl]; ok {
		return e.Symbol
	}
	return ""
}

// Call 实现 rt.Trampoline
// 未注册的入口地址返回全零寄存器。
func (m *Machine) Call(frame *rt.Frame) rt.Raw {
	m.mu.Lock()
	e, ok := m.byAddr[frame.Function]
	m.last = frame
	m.mu.Unlock()

	if !ok {
		m.misses.Inc()
		return rt.Raw{}
	}
	e.CallCount.Inc()
	return e.Fn(frame)
}

// Calls 某入口的调用次数
func (m *Machine) Calls(impl rt.Impl) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.byAddr[impl]; ok {
		return e.CallCount.Load()
	}
	return 0
}

// Misses 调用未注册入口的次数
func (m *Machine) Misses() int64 { return m.misses.Load() }

// LastFrame 最近一次调用的帧
func (m *Machine) LastFrame() *rt.Frame {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}
