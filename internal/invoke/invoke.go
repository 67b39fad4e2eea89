// Package invoke 提供按返回类型、分派方式和参数形式组合的调用族
//
// 所有成员都委托给同一个泛型例程；成员由 invokegen 生成。
package invoke

//go:generate go run ../../cmd/invokegen -o family_gen.go

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/tangzhangming/nvcall/internal/callframe"
	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/rt"
	"github.com/tangzhangming/nvcall/internal/varargs"
)

// Mode 分派方式
type Mode uint8

const (
	Virtual    Mode = iota // 按接收者运行时类分派
	Nonvirtual             // 直接调用给定方法
	Static                 // 静态方法
)

func (m Mode) String() string {
	switch m {
	case Virtual:
		return "virtual"
	case Nonvirtual:
		return "nonvirtual"
	}
	return "static"
}

// Void 无返回值
type Void struct{}

// Result 调用族支持的返回类型
type Result interface {
	Void | bool | int8 | uint16 | int16 | int32 | int64 | float32 | float64
}

// ============================================================================
// 泛型例程
// ============================================================================

// callA 以参数数组调用
// 失败时返回零值，错误已通过报告通道抛出一次。
func callA[T Result](env *rt.Env, mode Mode, obj *rt.Object, m *rt.Method, args []rt.Value) (T, error) {
	var zero T
	if err := checkDispatch(env, mode, obj, m); err != nil {
		return zero, err
	}

	frame, release, err := callframe.Build(env, m, obj, mode == Virtual, args)
	defer release()
	if err != nil {
		return zero, err
	}

	if ce := env.Log().Check(zap.DebugLevel, "invoke"); ce != nil {
		ce.Write(zap.Stringer("mode", mode), zap.Stringer("method", m), zap.Stringer("frame", frame))
	}
	return fromRaw[T](env.Trampoline.Call(frame)), nil
}

// callV 以可变参数列表调用
func callV[T Result](env *rt.Env, mode Mode, obj *rt.Object, m *rt.Method, va *varargs.VaList) (T, error) {
	var zero T
	args, release, err := varargs.NormalizeMethod(env, m, va)
	defer release()
	if err != nil {
		return zero, err
	}
	return callA[T](env, mode, obj, m, args)
}

// call 以 Go 值调用，按默认参数提升构造列表
func call[T Result](env *rt.Env, mode Mode, obj *rt.Object, m *rt.Method, args []any) (T, error) {
	var zero T
	va, err := varargs.Start(args...)
	if err != nil {
		return zero, env.Throw(errors.IllegalArgument(m.ClassName(), m.Name, m.Desc, err))
	}
	return callV[T](env, mode, obj, m, va)
}

// checkDispatch 检查方法的静态属性与分派方式一致，实例调用需要接收者
func checkDispatch(env *rt.Env, mode Mode, obj *rt.Object, m *rt.Method) error {
	static := mode == Static
	if m.IsStatic() != static {
		e := errors.IncompatibleClassChange(m.ClassName(), m.Name, m.Desc).
			WithHints(errors.SuggestDispatch(static)...)
		return env.Throw(e)
	}
	if !static && obj == nil {
		return env.Throw(errors.NullPointer(m.ClassName(), m.Name, m.Desc))
	}
	return nil
}

// fromRaw 按返回类型重新解释寄存器
// 整数类取通用寄存器，float 取浮点寄存器低 32 位，double 取全部。
func fromRaw[T Result](raw rt.Raw) T {
	var out T
	switch p := any(&out).(type) {
	case *Void:
	case *bool:
		*p = uint8(raw.GP) != 0
	case *int8:
		*p = int8(raw.GP)
	case *uint16:
		*p = uint16(raw.GP)
	case *int16:
		*p = int16(raw.GP)
	case *int32:
		*p = int32(raw.GP)
	case *int64:
		*p = int64(raw.GP)
	case *float32:
		*p = math.Float32frombits(uint32(raw.FP))
	case *float64:
		*p = math.Float64frombits(raw.FP)
	default:
		panic(fmt.Sprintf("invoke: unsupported result type %T", out))
	}
	return out
}
