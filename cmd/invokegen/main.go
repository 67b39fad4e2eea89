// invokegen 生成 internal/invoke 的调用族
//
// 用法: invokegen [-o family_gen.go]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
)

const (
	rtPkg      = "github.com/tangzhangming/nvcall/internal/rt"
	varargsPkg = "github.com/tangzhangming/nvcall/internal/varargs"
)

// retType 返回类型
type retType struct {
	Name string   // 名称中的类型部分
	Java string   // 文档中的 Java 类型
	Go   jen.Code // Go 结果类型，void 为 nil
}

var retTypes = []retType{
	{Name: "Void", Java: "void"},
	{Name: "Boolean", Java: "boolean", Go: jen.Bool()},
	{Name: "Byte", Java: "byte", Go: jen.Int8()},
	{Name: "Char", Java: "char", Go: jen.Uint16()},
	{Name: "Short", Java: "short", Go: jen.Int16()},
	{Name: "Int", Java: "int", Go: jen.Int32()},
	{Name: "Long", Java: "long", Go: jen.Int64()},
	{Name: "Float", Java: "float", Go: jen.Float32()},
	{Name: "Double", Java: "double", Go: jen.Float64()},
}

// mode 分派方式
type mode struct {
	Prefix string // Call / CallNonvirtual
	Suffix string // InstanceMethod / ClassMethod
	Mode   string // invoke.Mode 常量
	Doc    string
}

var modes = []mode{
	{Prefix: "Call", Suffix: "InstanceMethod", Mode: "Virtual", Doc: "按接收者运行时类分派"},
	{Prefix: "CallNonvirtual", Suffix: "InstanceMethod", Mode: "Nonvirtual", Doc: "不做虚分派"},
	{Prefix: "Call", Suffix: "ClassMethod", Mode: "Static", Doc: "调用静态方法"},
}

// style 参数形式
type style struct {
	Suffix string
	Core   string // 委托的泛型例程
	Doc    string
}

var styles = []style{
	{Suffix: "A", Core: "callA", Doc: "参数数组"},
	{Suffix: "V", Core: "callV", Doc: "可变参数列表"},
	{Suffix: "", Core: "call", Doc: "普通 Go 参数"},
}

func (m mode) instance() bool { return m.Mode != "Static" }

// Generate 生成调用族源码
func Generate() ([]byte, error) {
	f := jen.NewFile("invoke")
	f.HeaderComment("Code generated by invokegen. DO NOT EDIT.")

	for _, md := range modes {
		for _, rt := range retTypes {
			for _, st := range styles {
				genMember(f, md, rt, st)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func genMember(f *jen.File, md mode, rt retType, st style) {
	name := md.Prefix + rt.Name + md.Suffix + st.Suffix

	params := []jen.Code{jen.Id("env").Op("*").Qual(rtPkg, "Env")}
	recv := jen.Nil()
	if md.instance() {
		params = append(params, jen.Id("obj").Op("*").Qual(rtPkg, "Object"))
		recv = jen.Id("obj")
	} else {
		params = append(params, jen.Id("c").Op("*").Qual(rtPkg, "Class"))
	}
	params = append(params, jen.Id("m").Op("*").Qual(rtPkg, "Method"))
	switch st.Suffix {
	case "A":
		params = append(params, jen.Id("args").Index().Qual(rtPkg, "Value"))
	case "V":
		params = append(params, jen.Id("args").Op("*").Qual(varargsPkg, "VaList"))
	default:
		params = append(params, jen.Id("args").Op("...").Id("any"))
	}

	callArgs := []jen.Code{jen.Id("env"), jen.Id(md.Mode), recv, jen.Id("m"), jen.Id("args")}

	f.Commentf("%s 以%s调用返回 %s 的方法，%s", name, st.Doc, rt.Java, md.Doc)
	if rt.Go == nil {
		f.Func().Id(name).Params(params...).Error().Block(
			jen.List(jen.Id("_"), jen.Err()).Op(":=").Id(st.Core).Types(jen.Id("Void")).Call(callArgs...),
			jen.Return(jen.Err()),
		)
	} else {
		f.Func().Id(name).Params(params...).Params(rt.Go, jen.Error()).Block(
			jen.Return(jen.Id(st.Core).Types(rt.Go).Call(callArgs...)),
		)
	}
	f.Line()
}

func main() {
	out := flag.String("o", "family_gen.go", "output file")
	flag.Parse()

	src, err := Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invokegen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "invokegen: %v\n", err)
		os.Exit(1)
	}
}
