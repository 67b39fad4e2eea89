// Package rt 定义调用核心使用的运行时实体
//
// 类、方法在类加载完成后不可变，调用核心只读访问。
package rt

import (
	"fmt"
)

// 特殊方法名，构造器与静态初始化器不被继承
const (
	InitName   = "<init>"
	ClinitName = "<clinit>"
)

// 访问标志
type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSynchronized AccessFlags = 0x0020
	AccNative       AccessFlags = 0x0100
	AccAbstract     AccessFlags = 0x0400
)

func (f AccessFlags) IsPublic() bool    { return f&AccPublic != 0 }
func (f AccessFlags) IsPrivate() bool   { return f&AccPrivate != 0 }
func (f AccessFlags) IsProtected() bool { return f&AccProtected != 0 }
func (f AccessFlags) IsStatic() bool    { return f&AccStatic != 0 }
func (f AccessFlags) IsNative() bool    { return f&AccNative != 0 }

// flagNames 访问标志名称（用于加载器和展示）
var flagNames = []struct {
	flag AccessFlags
	name string
}{
	{AccPublic, "public"},
	{AccPrivate, "private"},
	{AccProtected, "protected"},
	{AccStatic, "static"},
	{AccFinal, "final"},
	{AccSynchronized, "synchronized"},
	{AccNative, "native"},
	{AccAbstract, "abstract"},
}

// ParseAccessFlag 解析单个访问标志名称
func ParseAccessFlag(name string) (AccessFlags, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return 0, false
}

func (f AccessFlags) String() string {
	s := ""
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			if s != "" {
				s += " "
			}
			s += fn.name
		}
	}
	return s
}

// Impl 本地实现入口（不透明句柄），0 表示尚未链接
type Impl uintptr

// ============================================================================
// 类与方法
// ============================================================================

// Class 类
type Class struct {
	Name    string    // 内部名称，如 java/lang/Object
	Super   *Class    // 父类，根类为 nil
	Methods []*Method // 声明的方法（有序）
}

// NewClass 创建类
func NewClass(name string, super *Class) *Class {
	return &Class{Name: name, Super: super}
}

// AddMethod 声明方法并返回它
func (c *Class) AddMethod(name, desc string, access AccessFlags, impl Impl) *Method {
	m := &Method{
		Class:  c,
		Name:   name,
		Desc:   desc,
		Access: access,
		Impl:   impl,
	}
	c.Methods = append(c.Methods, m)
	return m
}

// DeclaredMethod 只在本类中查找
func (c *Class) DeclaredMethod(name, desc string) *Method {
	for _, m := range c.Methods {
		if m.Name == name && m.Desc == desc {
			return m
		}
	}
	return nil
}

// IsSubclassOf 是否为 other 或其子类
func (c *Class) IsSubclassOf(other *Class) bool {
	for k := c; k != nil; k = k.Super {
		if k == other {
			return true
		}
	}
	return false
}

func (c *Class) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// Method 方法
type Method struct {
	Class  *Class      // 声明类
	Name   string      // 方法名
	Desc   string      // 描述符
	Access AccessFlags // 访问标志
	Impl   Impl        // 本地实现
}

// IsStatic 是否为静态方法
func (m *Method) IsStatic() bool { return m.Access.IsStatic() }

// IsPrivate 是否为私有方法
func (m *Method) IsPrivate() bool { return m.Access.IsPrivate() }

// ClassName 声明类名称
func (m *Method) ClassName() string {
	if m.Class == nil {
		return ""
	}
	return m.Class.Name
}

func (m *Method) String() string {
	return fmt.Sprintf("%s.%s%s", m.ClassName(), m.Name, m.Desc)
}

// Object 对象，调用核心只关心其运行时类
type Object struct {
	Class *Class
	Data  any
}

// NewObject 创建对象
func NewObject(class *Class) *Object {
	return &Object{Class: class}
}
