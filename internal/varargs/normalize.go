package varargs

import (
	"fmt"

	"github.com/tangzhangming/nvcall/internal/descriptor"
	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/mem"
	"github.com/tangzhangming/nvcall/internal/rt"
)

// Normalize 按描述符从 va 读取参数，生成带类型的参数数组
// 返回的释放函数总是非空。失败时错误已被报告。
func Normalize(env *rt.Env, desc string, va *VaList) ([]rt.Value, func(), error) {
	return normalize(env, "", "", desc, va)
}

// NormalizeMethod 同 Normalize，错误中带上方法信息
func NormalizeMethod(env *rt.Env, m *rt.Method, va *VaList) ([]rt.Value, func(), error) {
	return normalize(env, m.ClassName(), m.Name, m.Desc, va)
}

func normalize(env *rt.Env, class, name, desc string, va *VaList) ([]rt.Value, func(), error) {
	tags := descriptor.Params(desc)
	args, release, err := mem.Alloc[rt.Value](env.Alloc, len(tags))
	if err != nil {
		return nil, func() {}, env.Throw(errors.OutOfMemory(class, name, desc, err))
	}
	for i, t := range tags {
		v, err := read(va, t)
		if err != nil {
			release()
			return nil, func() {}, env.Throw(errors.IllegalArgument(class, name, desc,
				fmt.Errorf("argument %d: %w", i, err)))
		}
		args[i] = v
	}
	return args, release, nil
}

// read 以提升后的宽度读取一个参数，再收窄到参数类型
func read(va *VaList, t descriptor.Tag) (rt.Value, error) {
	switch t {
	case descriptor.TagByte, descriptor.TagBoolean, descriptor.TagShort, descriptor.TagChar, descriptor.TagInt:
		v, err := va.Int()
		if err != nil {
			return rt.Value{}, err
		}
		return narrow(t, v), nil
	case descriptor.TagLong:
		v, err := va.Long()
		return rt.Long(v), err
	case descriptor.TagFloat:
		v, err := va.Double()
		return rt.Float(float32(v)), err
	case descriptor.TagDouble:
		v, err := va.Double()
		return rt.Double(v), err
	}
	p, err := va.Pointer()
	return rt.Ref(p), err
}

func narrow(t descriptor.Tag, v int32) rt.Value {
	switch t {
	case descriptor.TagByte:
		return rt.Byte(int8(v))
	case descriptor.TagBoolean:
		return rt.Boolean(uint8(v) != 0)
	case descriptor.TagShort:
		return rt.Short(int16(v))
	case descriptor.TagChar:
		return rt.Char(uint16(v))
	}
	return rt.Int(v)
}
