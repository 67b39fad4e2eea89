// convention.go - 本机调用约定定义
//
// 本文件描述各平台参数寄存器的容量。分类器只关心两类寄存器
// （整数/指针类与浮点类）各有多少个，超出部分溢出到栈上。
// 寄存器名称仅用于展示布局。

package abi

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// LeadingSlots 固定前导整数槽：保留槽、Env、接收者
const LeadingSlots = 3

// StackSlotSize 栈槽大小（字节）
const StackSlotSize = 8

var (
	ErrUnknownConvention = errors.New("abi: unknown calling convention")
	ErrTooFewIntRegs     = errors.New("abi: integer register budget smaller than leading slots")
	ErrNegativeRegs      = errors.New("abi: negative register count")
)

// Convention 调用约定
type Convention struct {
	Name         string
	ArgRegs      []string // 整数参数寄存器（按顺序）
	FloatArgRegs []string // 浮点参数寄存器
	RetReg       string
	FloatRetReg  string
}

// IntRegs 整数类寄存器预算（包含前导槽）
func (c Convention) IntRegs() int { return len(c.ArgRegs) }

// FloatRegs 浮点类寄存器预算
func (c Convention) FloatRegs() int { return len(c.FloatArgRegs) }

// Validate 检查约定是否足以容纳前导槽
func (c Convention) Validate() error {
	if c.IntRegs() < LeadingSlots {
		return fmt.Errorf("%w: %s has %d", ErrTooFewIntRegs, c.Name, c.IntRegs())
	}
	return nil
}

func (c Convention) String() string {
	return fmt.Sprintf("%s(int=%d, fp=%d)", c.Name, c.IntRegs(), c.FloatRegs())
}

// SystemV System V AMD64 调用约定 (Linux/macOS)
var SystemV = Convention{
	Name:         "sysv-amd64",
	ArgRegs:      []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"},
	FloatArgRegs: []string{"xmm0", "xmm1", "xmm2", "xmm3", "xmm4", "xmm5", "xmm6", "xmm7"},
	RetReg:       "rax",
	FloatRetReg:  "xmm0",
}

// WindowsX64 Windows x64 调用约定
// 真实约定按位置共享 4 个槽，这里按两类独立预算近似。
var WindowsX64 = Convention{
	Name:         "win64",
	ArgRegs:      []string{"rcx", "rdx", "r8", "r9"},
	FloatArgRegs: []string{"xmm0", "xmm1", "xmm2", "xmm3"},
	RetReg:       "rax",
	FloatRetReg:  "xmm0",
}

// AAPCS64 ARM64 过程调用标准
var AAPCS64 = Convention{
	Name:         "aapcs64",
	ArgRegs:      []string{"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7"},
	FloatArgRegs: []string{"d0", "d1", "d2", "d3", "d4", "d5", "d6", "d7"},
	RetReg:       "x0",
	FloatRetReg:  "d0",
}

var presets = map[string]Convention{
	SystemV.Name:    SystemV,
	WindowsX64.Name: WindowsX64,
	AAPCS64.Name:    AAPCS64,
}

// Presets 返回内置约定名称
func Presets() []string {
	return []string{SystemV.Name, WindowsX64.Name, AAPCS64.Name}
}

// Lookup 按名称查找约定，"native" 表示当前平台
func Lookup(name string) (Convention, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "native" {
		return Native(), nil
	}
	if c, ok := presets[name]; ok {
		return c, nil
	}
	return Convention{}, fmt.Errorf("%w: %q", ErrUnknownConvention, name)
}

// Native 获取当前平台的原生调用约定
func Native() Convention {
	if runtime.GOARCH == "arm64" {
		return AAPCS64
	}
	if runtime.GOOS == "windows" {
		return WindowsX64
	}
	return SystemV
}

// Custom 按寄存器数量构造约定，寄存器以 r0.. / f0.. 命名
func Custom(name string, intRegs, floatRegs int) (Convention, error) {
	if intRegs < 0 || floatRegs < 0 {
		return Convention{}, ErrNegativeRegs
	}
	c := Convention{
		Name:         name,
		ArgRegs:      make([]string, intRegs),
		FloatArgRegs: make([]string, floatRegs),
		RetReg:       "r0",
		FloatRetReg:  "f0",
	}
	for i := range c.ArgRegs {
		c.ArgRegs[i] = fmt.Sprintf("r%d", i)
	}
	for i := range c.FloatArgRegs {
		c.FloatArgRegs[i] = fmt.Sprintf("f%d", i)
	}
	if err := c.Validate(); err != nil {
		return Convention{}, err
	}
	return c, nil
}
