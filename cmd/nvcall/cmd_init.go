package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tangzhangming/nvcall/internal/config"
	"github.com/tangzhangming/nvcall/internal/i18n"
)

// cmdInit 生成默认配置文件
func cmdInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	convention := fs.String("abi", "", "calling convention written to the file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	dir := "."
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(os.Stderr, i18n.T("cli.config_exists")+"\n", configPath)
		return 1
	}

	cfg := config.GenerateDefault()
	if *convention != "" {
		cfg.ABI.Convention = *convention
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "nvcall: %v\n", err)
		return 1
	}
	if err := cfg.Save(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "nvcall: %v\n", err)
		return 1
	}
	fmt.Printf(i18n.T("cli.config_written")+"\n", configPath)
	return 0
}
