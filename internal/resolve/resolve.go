// Package resolve 按 (名称, 描述符) 在类层次中定位方法
//
// 查找失败会通过 Env 的报告通道抛出一次，再以错误返回。
package resolve

import (
	"go.uber.org/zap"

	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/rt"
)

// inherited 构造器与静态初始化器只在声明类中查找
func inherited(name string) bool {
	return name != rt.InitName && name != rt.ClinitName
}

// Lookup 纯查找，不报告
// 先线性扫描声明的方法，再沿父类链向上。
func Lookup(class *rt.Class, name, desc string) *rt.Method {
	walk := inherited(name)
	for c := class; c != nil; c = c.Super {
		if m := c.DeclaredMethod(name, desc); m != nil {
			return m
		}
		if !walk {
			break
		}
	}
	return nil
}

// Method 查找方法，不检查静态属性
func Method(env *rt.Env, class *rt.Class, name, desc string) (*rt.Method, error) {
	m := Lookup(class, name, desc)
	env.Log().Debug("resolve method",
		zap.Stringer("class", class),
		zap.String("name", name),
		zap.String("desc", desc),
		zap.Bool("found", m != nil))
	if m != nil {
		return m, nil
	}
	err := errors.NoSuchMethod(class.String(), name, desc).
		WithHints(errors.SuggestMethod(name, desc, candidates(class, name))...)
	return nil, env.Throw(err)
}

// ClassMethod 查找静态方法
func ClassMethod(env *rt.Env, class *rt.Class, name, desc string) (*rt.Method, error) {
	return lookupKind(env, class, name, desc, true)
}

// InstanceMethod 查找实例方法
func InstanceMethod(env *rt.Env, class *rt.Class, name, desc string) (*rt.Method, error) {
	return lookupKind(env, class, name, desc, false)
}

func lookupKind(env *rt.Env, class *rt.Class, name, desc string, static bool) (*rt.Method, error) {
	m, err := Method(env, class, name, desc)
	if err != nil {
		return nil, err
	}
	if m.IsStatic() != static {
		e := errors.IncompatibleClassChange(class.String(), name, desc).
			WithHints(errors.SuggestDispatch(static)...)
		return nil, env.Throw(e)
	}
	return m, nil
}

// Virtual 按接收者的运行时类重新解析
// 私有方法不参与虚分派，原样返回。
func Virtual(env *rt.Env, obj *rt.Object, m *rt.Method) (*rt.Method, error) {
	if m.IsPrivate() || obj == nil || obj.Class == m.Class {
		return m, nil
	}
	return Method(env, obj.Class, m.Name, m.Desc)
}

// candidates 收集查找可见的方法，用于修复建议
func candidates(class *rt.Class, name string) []errors.Candidate {
	var out []errors.Candidate
	walk := inherited(name)
	for c := class; c != nil; c = c.Super {
		for _, m := range c.Methods {
			out = append(out, errors.Candidate{Name: m.Name, Desc: m.Desc})
		}
		if !walk {
			break
		}
	}
	return out
}
