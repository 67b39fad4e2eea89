package rt

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/tangzhangming/nvcall/internal/abi"
)

// ============================================================================
// 调用帧
// ============================================================================

// Word 整数类槽
// 引用以 Go 指针保存，保证在调用期间对 GC 可见。
type Word struct {
	Bits uint64
	Ptr  unsafe.Pointer
}

// WordOf 由参数值构造整数槽
func WordOf(v Value) Word {
	if v.Kind() == KindRef {
		return Word{Ptr: unsafe.Pointer(v.Ref())}
	}
	return Word{Bits: v.Bits()}
}

// Object 将槽解释为对象引用
func (w Word) Object() *Object { return (*Object)(w.Ptr) }

// SlotKind 栈槽的自然宽度类别
type SlotKind uint8

const (
	SlotWord    SlotKind = iota // 整数/引用，8 字节
	SlotFloat32                 // float，保持 32 位
	SlotFloat64                 // double
)

func (k SlotKind) String() string {
	switch k {
	case SlotFloat32:
		return "f32"
	case SlotFloat64:
		return "f64"
	}
	return "word"
}

// StackSlot 溢出栈槽
type StackSlot struct {
	Kind SlotKind
	Word
}

// Float32 以 float 解释槽
func (s StackSlot) Float32() float32 { return math.Float32frombits(uint32(s.Bits)) }

// Float64 以 double 解释槽
func (s StackSlot) Float64() float64 { return math.Float64frombits(s.Bits) }

// Frame 单次调用的参数帧
//
// Ints[0] 保留为零，Ints[1] 为 Env，非静态方法的 Ints[2] 为接收者。
// Floats 中的 float 参数已扩展为 double。Stack 按声明顺序排列。
type Frame struct {
	Function Impl
	Conv     abi.Convention
	Ints     []Word
	Floats   []float64
	Stack    []StackSlot
}

// Env 取出帧中的环境指针
func (f *Frame) Env() *Env {
	if len(f.Ints) < 2 {
		return nil
	}
	return (*Env)(f.Ints[1].Ptr)
}

// Receiver 取出接收者，只对实例方法的帧有意义
func (f *Frame) Receiver() *Object {
	if len(f.Ints) < 3 {
		return nil
	}
	return f.Ints[2].Object()
}

func (f *Frame) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "frame{fn=%#x ints=[", uintptr(f.Function))
	for i, w := range f.Ints {
		if i > 0 {
			sb.WriteString(" ")
		}
		if w.Ptr != nil {
			fmt.Fprintf(&sb, "%p", w.Ptr)
		} else {
			fmt.Fprintf(&sb, "%#x", w.Bits)
		}
	}
	sb.WriteString("] floats=[")
	for i, d := range f.Floats {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%g", d)
	}
	sb.WriteString("] stack=[")
	for i, s := range f.Stack {
		if i > 0 {
			sb.WriteString(" ")
		}
		switch s.Kind {
		case SlotFloat32:
			fmt.Fprintf(&sb, "%g", s.Float32())
		case SlotFloat64:
			fmt.Fprintf(&sb, "%g", s.Float64())
		default:
			if s.Ptr != nil {
				fmt.Fprintf(&sb, "%p", s.Ptr)
			} else {
				fmt.Fprintf(&sb, "%#x", s.Bits)
			}
		}
	}
	sb.WriteString("]}")
	return sb.String()
}

// Raw 蹦床返回的原始寄存器内容
type Raw struct {
	GP uint64 // 通用返回寄存器
	FP uint64 // 浮点返回寄存器（float 在低 32 位）
}

// Trampoline 按帧调用本地实现
type Trampoline interface {
	Call(frame *Frame) Raw
}

// TrampolineFunc 函数适配器
type TrampolineFunc func(frame *Frame) Raw

// Call 实现 Trampoline
func (fn TrampolineFunc) Call(frame *Frame) Raw { return fn(frame) }

// Linker 为尚未链接的本地方法定位实现
// 只返回入口地址，不修改 m；失败时由实现负责报告，并返回错误。
type Linker interface {
	Link(env *Env, m *Method) (Impl, error)
}
