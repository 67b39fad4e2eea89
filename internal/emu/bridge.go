// bridge.go - 帧与 Go 值之间的桥接
//
// 被调用方按与调用方相同的布局拆帧，返回值按寄存器类别编码：
// 整数类写入通用寄存器，float 以 IEEE 754 位表示写入浮点寄存器
// 低 32 位，double 写入全部 64 位。

package emu

import (
	"math"

	"github.com/tangzhangming/nvcall/internal/callframe"
	"github.com/tangzhangming/nvcall/internal/descriptor"
	"github.com/tangzhangming/nvcall/internal/rt"
)

// Method Go 形式的本地方法，静态方法的 this 为 nil
type Method func(env *rt.Env, this *rt.Object, args []rt.Value) rt.Value

// Unpack 按描述符从帧中取出参数
func Unpack(frame *rt.Frame, desc string, static bool) []rt.Value {
	layout := callframe.Plan(frame.Conv, static, desc)
	args := make([]rt.Value, len(layout.Params))
	for i, p := range layout.Params {
		switch p.Class {
		case callframe.InFloat:
			d := frame.Floats[p.Index]
			if p.Tag == descriptor.TagFloat {
				args[i] = rt.Float(float32(d))
			} else {
				args[i] = rt.Double(d)
			}
		case callframe.InInt:
			args[i] = fromWord(p.Tag, frame.Ints[p.Index])
		default:
			s := frame.Stack[p.Index]
			switch s.Kind {
			case rt.SlotFloat32:
				args[i] = rt.Float(s.Float32())
			case rt.SlotFloat64:
				args[i] = rt.Double(s.Float64())
			default:
				args[i] = fromWord(p.Tag, s.Word)
			}
		}
	}
	return args
}

func fromWord(t descriptor.Tag, w rt.Word) rt.Value {
	switch t {
	case descriptor.TagByte:
		return rt.Byte(int8(w.Bits))
	case descriptor.TagBoolean:
		return rt.Boolean(uint8(w.Bits) != 0)
	case descriptor.TagShort:
		return rt.Short(int16(w.Bits))
	case descriptor.TagChar:
		return rt.Char(uint16(w.Bits))
	case descriptor.TagInt:
		return rt.Int(int32(w.Bits))
	case descriptor.TagLong:
		return rt.Long(int64(w.Bits))
	}
	return rt.Ref(w.Object())
}

// Encode 把返回值写入对应的返回寄存器
// 引用返回值不经寄存器传回，GP 为 0。
func Encode(ret descriptor.Tag, v rt.Value) rt.Raw {
	switch ret {
	case descriptor.TagByte:
		return rt.Raw{GP: uint64(int64(v.Byte()))}
	case descriptor.TagBoolean:
		if v.Boolean() {
			return rt.Raw{GP: 1}
		}
		return rt.Raw{}
	case descriptor.TagShort:
		return rt.Raw{GP: uint64(int64(v.Short()))}
	case descriptor.TagChar:
		return rt.Raw{GP: uint64(v.Char())}
	case descriptor.TagInt:
		return rt.Raw{GP: uint64(int64(v.Int()))}
	case descriptor.TagLong:
		return rt.Raw{GP: uint64(v.Long())}
	case descriptor.TagFloat:
		return rt.Raw{FP: uint64(math.Float32bits(v.Float()))}
	case descriptor.TagDouble:
		return rt.Raw{FP: math.Float64bits(v.Double())}
	}
	return rt.Raw{}
}

// Bind 把 Go 方法包装为本地实现
func Bind(desc string, static bool, fn Method) Func {
	ret := descriptor.Return(desc)
	return func(frame *rt.Frame) rt.Raw {
		var this *rt.Object
		if !static {
			this = frame.Receiver()
		}
		return Encode(ret, fn(frame.Env(), this, Unpack(frame, desc, static)))
	}
}

// Define 注册 Go 方法并把入口地址写入方法
func (m *Machine) Define(method *rt.Method, symbol string, fn Method) rt.Impl {
	impl := m.Register(symbol, Bind(method.Desc, method.IsStatic(), fn))
	method.Impl = impl
	return impl
}
