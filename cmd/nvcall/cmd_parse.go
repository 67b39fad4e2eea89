package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/tangzhangming/nvcall/internal/descriptor"
	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/i18n"
)

// cmdParse 显示描述符的参数标签与返回标签
func cmdParse(args []string) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
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

	tags := descriptor.Params(desc)
	fmt.Println(i18n.T("cli.params", len(tags)))
	for i, t := range tags {
		fmt.Printf("  %2d  %s\n", i, errors.Cyan(t.String()))
	}
	fmt.Println(i18n.T("cli.return", descriptor.Return(desc)))
	fmt.Printf("  %s\n", strings.Join(lo.Map(tags, func(t descriptor.Tag, _ int) string {
		return string(rune(t))
	}), " "))
	return 0
}
