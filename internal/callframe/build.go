package callframe

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/tangzhangming/nvcall/internal/descriptor"
	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/mem"
	"github.com/tangzhangming/nvcall/internal/resolve"
	"github.com/tangzhangming/nvcall/internal/rt"
)

// ============================================================================
// 调用目标
// ============================================================================

// Target 确定实际调用的方法及其入口
// 虚调用先按接收者的运行时类重新解析；未链接的方法交给链接器定位入口，
// 入口只写入本次的帧，不回写方法。
func Target(env *rt.Env, m *rt.Method, obj *rt.Object, virtual bool) (*rt.Method, rt.Impl, error) {
	target := m
	if virtual && !m.IsStatic() {
		var err error
		if target, err = resolve.Virtual(env, obj, m); err != nil {
			return nil, 0, err
		}
	}
	if target.Impl != 0 {
		return target, target.Impl, nil
	}
	if env.Linker == nil {
		return nil, 0, env.Throw(errors.UnsatisfiedLink(target.ClassName(), target.Name, target.Desc))
	}
	impl, err := env.Linker.Link(env, target)
	if err != nil {
		return nil, 0, err
	}
	return target, impl, nil
}

// ============================================================================
// 帧构造
// ============================================================================

// Build 为一次调用构造帧
// 返回的释放函数总是非空，调用结束后必须调用。失败时错误已被报告。
func Build(env *rt.Env, m *rt.Method, obj *rt.Object, virtual bool, args []rt.Value) (*rt.Frame, func(), error) {
	noop := func() {}

	target, impl, err := Target(env, m, obj, virtual)
	if err != nil {
		return nil, noop, err
	}

	layout := Plan(env.ABI, target.IsStatic(), target.Desc)
	if len(args) < len(layout.Params) {
		cause := fmt.Errorf("have %d arguments, want %d", len(args), len(layout.Params))
		return nil, noop, env.Throw(errors.IllegalArgument(target.ClassName(), target.Name, target.Desc, cause))
	}

	stack, release, err := mem.Alloc[rt.StackSlot](env.Alloc, layout.Stack)
	if err != nil {
		return nil, noop, env.Throw(errors.OutOfMemory(target.ClassName(), target.Name, target.Desc, err))
	}

	frame := &rt.Frame{
		Function: impl,
		Conv:     env.ABI,
		Ints:     make([]rt.Word, layout.Ints, max(layout.Ints, env.ABI.IntRegs())),
		Floats:   make([]float64, layout.Floats, max(layout.Floats, env.ABI.FloatRegs())),
		Stack:    stack,
	}
	frame.Ints[SlotEnv] = rt.Word{Ptr: unsafe.Pointer(env)}
	if !layout.Static {
		frame.Ints[SlotReceiver] = rt.Word{Ptr: unsafe.Pointer(obj)}
	}

	for i, p := range layout.Params {
		v := args[i]
		if err := checkKind(p.Tag, v); err != nil {
			release()
			return nil, noop, env.Throw(errors.IllegalArgument(target.ClassName(), target.Name, target.Desc,
				fmt.Errorf("argument %d: %w", i, err)))
		}
		switch p.Class {
		case InFloat:
			frame.Floats[p.Index] = widen(p.Tag, v)
		case InInt:
			frame.Ints[p.Index] = word(p.Tag, v)
		default:
			frame.Stack[p.Index] = stackSlot(p, v)
		}
	}
	return frame, release, nil
}

// checkKind 引用参数必须是引用值，基本类型参数不能是引用
// 基本类型之间按联合体语义重新解释，不做检查。
func checkKind(t descriptor.Tag, v rt.Value) error {
	isRef := t == descriptor.TagRef || t == descriptor.TagArray
	switch {
	case isRef && v.Kind() != rt.KindRef && v.Kind() != rt.KindInvalid:
		return fmt.Errorf("%s passed for reference parameter", v.Kind())
	case !isRef && v.Kind() == rt.KindRef:
		return fmt.Errorf("reference passed for %s parameter", t)
	}
	return nil
}

// word 按参数标签读取联合体并扩展到 64 位
func word(t descriptor.Tag, v rt.Value) rt.Word {
	switch t {
	case descriptor.TagByte:
		return rt.Word{Bits: uint64(int64(v.Byte()))}
	case descriptor.TagBoolean:
		if v.Boolean() {
			return rt.Word{Bits: 1}
		}
		return rt.Word{}
	case descriptor.TagShort:
		return rt.Word{Bits: uint64(int64(v.Short()))}
	case descriptor.TagChar:
		return rt.Word{Bits: uint64(v.Char())}
	case descriptor.TagInt:
		return rt.Word{Bits: uint64(int64(v.Int()))}
	case descriptor.TagLong:
		return rt.Word{Bits: uint64(v.Long())}
	}
	return rt.Word{Ptr: unsafe.Pointer(v.Ref())}
}

// widen 浮点寄存器中 float 扩展为 double
func widen(t descriptor.Tag, v rt.Value) float64 {
	if t == descriptor.TagFloat {
		return float64(v.Float())
	}
	return v.Double()
}

func stackSlot(p Placement, v rt.Value) rt.StackSlot {
	switch p.Slot {
	case rt.SlotFloat32:
		return rt.StackSlot{Kind: rt.SlotFloat32, Word: rt.Word{Bits: uint64(math.Float32bits(v.Float()))}}
	case rt.SlotFloat64:
		return rt.StackSlot{Kind: rt.SlotFloat64, Word: rt.Word{Bits: math.Float64bits(v.Double())}}
	}
	return rt.StackSlot{Kind: rt.SlotWord, Word: word(p.Tag, v)}
}
