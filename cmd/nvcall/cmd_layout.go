package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/tangzhangming/nvcall/internal/abi"
	"github.com/tangzhangming/nvcall/internal/callframe"
	"github.com/tangzhangming/nvcall/internal/config"
	"github.com/tangzhangming/nvcall/internal/descriptor"
	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/i18n"
)

// cmdLayout 显示参数布局
func cmdLayout(cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	abiName := fs.String("abi", "", "calling convention ("+fmt.Sprint(abi.Presets())+")")
	static := fs.Bool("static", false, "method is static (no receiver slot)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, i18n.T("cli.missing_arg")+"\n", "desc")
		return 2
	}

	desc := fs.Arg(0)
	if err := descriptor.Validate(desc); err != nil {
		fmt.Fprintln(os.Stderr, errors.Red(i18n.T("cli.invalid_descriptor", desc, err)))
		return 1
	}

	conv, err := cfg.Convention()
	if *abiName != "" {
		conv, err = abi.Lookup(*abiName)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "nvcall: %v\n", err)
		return 1
	}

	fmt.Print(renderLayout(callframe.Plan(conv, *static, desc)))
	return 0
}

// renderLayout 布局的文本形式
func renderLayout(l callframe.Layout) string {
	out := fmt.Sprintln(i18n.T("cli.convention", l.Conv))
	out += fmt.Sprintln(i18n.T("cli.leading", l.Leading))
	leading := []string{"reserved", "env", "receiver"}[:l.Leading]
	for i, name := range leading {
		reg := ""
		if i < len(l.Conv.ArgRegs) {
			reg = l.Conv.ArgRegs[i]
		}
		out += fmt.Sprintf("   -  %-10s %s\n", name, errors.Yellow(reg))
	}

	out += fmt.Sprintln(i18n.T("cli.params", len(l.Params)))
	rows := lo.Map(l.Params, func(p callframe.Placement, i int) string {
		loc := p.Location()
		if p.Class == callframe.OnStack {
			loc = errors.Red(loc)
		} else {
			loc = errors.Green(loc)
		}
		return fmt.Sprintf("  %2d  %-10s %s\n", i, p.Tag, loc)
	})
	for _, row := range rows {
		out += row
	}

	out += fmt.Sprintln(i18n.T("cli.registers", l.Ints, l.Conv.IntRegs(), l.Floats, l.Conv.FloatRegs()))
	spilled := lo.Filter(l.Params, func(p callframe.Placement, _ int) bool {
		return p.Class == callframe.OnStack
	})
	out += fmt.Sprintln(i18n.T("cli.overflow", len(spilled)))
	return out
}
