package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tangzhangming/nvcall/internal/config"
	"github.com/tangzhangming/nvcall/internal/i18n"
	"github.com/tangzhangming/nvcall/internal/logging"
)

const (
	Version = "0.1.0"
)

// 全局参数
var (
	globalLang   string
	globalConfig string
)

func main() {
	args := preprocessArgs(os.Args[1:])

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nvcall: %v\n", err)
		os.Exit(1)
	}

	lang := cfg.Log.Lang
	if globalLang != "" {
		lang = globalLang
	}
	i18n.SetLanguageFromString(lang)

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nvcall: %v\n", err)
		os.Exit(1)
	}
	logging.SetLogger(logger)

	code := run(cfg, args)
	_ = logger.Sync()
	os.Exit(code)
}

// run 执行子命令并返回退出码
func run(cfg *config.Config, args []string) int {
	if len(args) < 1 {
		printUsage()
		return 0
	}

	command := args[0]
	logging.L().Debug("command", zap.String("name", command), zap.Strings("args", args[1:]))

	switch command {
	case "parse":
		return cmdParse(args[1:])
	case "layout":
		return cmdLayout(cfg, args[1:])
	case "resolve":
		return cmdResolve(cfg, args[1:])
	case "init":
		return cmdInit(args[1:])
	case "version", "-v", "--version":
		fmt.Printf("nvcall %s\n", Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, i18n.T("cli.unknown_command")+"\n\n", command)
		printUsage()
		return 1
	}
	return 0
}

// preprocessArgs 提取全局参数 -lang 与 -config
func preprocessArgs(args []string) []string {
	var result []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || (name != "lang" && name != "config") {
			result = append(result, arg)
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				result = append(result, arg)
				continue
			}
			value = args[i+1]
			i++
		}
		if name == "lang" {
			globalLang = value
		} else {
			globalConfig = value
		}
	}
	return result
}

// loadConfig 优先使用 -config，其次向上查找 nvcall.toml，都没有时取默认值
func loadConfig() (*config.Config, error) {
	path := globalConfig
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func printUsage() {
	fmt.Printf("nvcall %s\n\n", Version)
	fmt.Println(i18n.T("cli.usage"))
	fmt.Println()
	fmt.Println(i18n.T("cli.commands"))
	fmt.Printf("  parse <desc>                       %s\n", i18n.T("cli.cmd_parse"))
	fmt.Printf("  layout [-abi name] [-static] <desc> %s\n", i18n.T("cli.cmd_layout"))
	fmt.Printf("  resolve -classes f.yaml -class C -name m -desc D\n")
	fmt.Printf("                                     %s\n", i18n.T("cli.cmd_resolve"))
	fmt.Printf("  init [dir]                         %s\n", i18n.T("cli.cmd_init"))
	fmt.Printf("  help                               %s\n", i18n.T("cli.cmd_help"))
}
