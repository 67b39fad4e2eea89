package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tangzhangming/nvcall/internal/config"
	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/i18n"
	"github.com/tangzhangming/nvcall/internal/loader"
	"github.com/tangzhangming/nvcall/internal/logging"
	"github.com/tangzhangming/nvcall/internal/resolve"
	"github.com/tangzhangming/nvcall/internal/rt"
)

// cmdResolve 在类层次中解析方法
func cmdResolve(cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	classes := fs.String("classes", "", "YAML class hierarchy")
	className := fs.String("class", "", "class to start the lookup from")
	name := fs.String("name", "", "method name")
	desc := fs.String("desc", "", "method descriptor")
	kind := fs.String("kind", "any", "any | static | instance")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if missing := firstMissing([]requiredFlag{
		{"classes", *classes},
		{"class", *className},
		{"name", *name},
		{"desc", *desc},
	}); missing != "" {
		fmt.Fprintf(os.Stderr, i18n.T("cli.missing_arg")+"\n", "-"+missing)
		return 2
	}

	h, err := loader.LoadFile(*classes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nvcall: %v\n", err)
		return 1
	}
	class, ok := h.Class(*className)
	if !ok {
		fmt.Fprintf(os.Stderr, i18n.T("cli.unknown_class")+"\n", *className)
		return 1
	}

	conv, err := cfg.Convention()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nvcall: %v\n", err)
		return 1
	}
	rec := errors.NewRecorder(logging.L())
	env := rt.NewEnv(nil,
		rt.WithABI(conv),
		rt.WithAllocator(cfg.Allocator()),
		rt.WithReporter(rec),
		rt.WithLogger(logging.L()))

	var m *rt.Method
	switch *kind {
	case "static":
		m, err = resolve.ClassMethod(env, class, *name, *desc)
	case "instance":
		m, err = resolve.InstanceMethod(env, class, *name, *desc)
	default:
		m, err = resolve.Method(env, class, *name, *desc)
	}
	if err != nil {
		if e := rec.Pending(); e != nil {
			fmt.Fprint(os.Stderr, errors.Format(e))
		} else {
			fmt.Fprintf(os.Stderr, "nvcall: %v\n", err)
		}
		return 1
	}

	fmt.Println(errors.BoldGreen(i18n.T("cli.resolved", m.Name, m.Desc, m.ClassName(), uint16(m.Access))))
	fmt.Printf("  %s\n", i18n.T("cli.visibility", visibility(m.Access)))
	if m.Access != 0 {
		fmt.Printf("  %s\n", m.Access)
	}
	return 0
}

// requiredFlag 必填参数
type requiredFlag struct {
	name  string
	value string
}

// firstMissing 按声明顺序返回第一个未给出的参数名
func firstMissing(flags []requiredFlag) string {
	for _, f := range flags {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

// visibility 访问级别，未标注时为包内可见
func visibility(f rt.AccessFlags) string {
	switch {
	case f.IsPublic():
		return "public"
	case f.IsProtected():
		return "protected"
	case f.IsPrivate():
		return "private"
	}
	return "package"
}
