// Package config 读取调用核心的配置文件 nvcall.toml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/pelletier/go-toml/v2"

	"github.com/tangzhangming/nvcall/internal/abi"
	"github.com/tangzhangming/nvcall/internal/i18n"
	"github.com/tangzhangming/nvcall/internal/mem"
)

// 常量定义
const (
	ConfigFileName   = "nvcall.toml" // 配置文件名
	ConventionCustom = "custom"      // 按寄存器数量自定义约定
)

var (
	ErrBadLogLevel  = errors.New("config: unknown log level")
	ErrBadLanguage  = errors.New("config: unknown language")
	ErrNegativeSize = errors.New("config: negative memory limit")
)

// Config 配置
type Config struct {
	ABI    ABIConfig    `toml:"abi"`
	Memory MemoryConfig `toml:"memory"`
	Log    LogConfig    `toml:"log"`
}

// ABIConfig 调用约定
type ABIConfig struct {
	// Convention 约定名称：native、sysv-amd64、win64、aapcs64 或 custom
	Convention string `toml:"convention"`

	// IntRegs 整数寄存器数量（仅 custom，包含前导槽）
	IntRegs int64 `toml:"int_regs"`

	// FloatRegs 浮点寄存器数量（仅 custom）
	FloatRegs int64 `toml:"float_regs"`
}

// MemoryConfig 分配器
type MemoryConfig struct {
	// Limit 配额上限（字节），0 表示不限
	Limit int64 `toml:"limit"`
}

// LogConfig 日志与消息语言
type LogConfig struct {
	Level string `toml:"level"`
	Lang  string `toml:"lang"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		ABI:    ABIConfig{Convention: "native", IntRegs: 6, FloatRegs: 8},
		Memory: MemoryConfig{Limit: 0},
		Log:    LogConfig{Level: "info", Lang: "en"},
	}
}

// LoadConfig 从文件加载配置，未给出的字段取默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate 检查配置
func (c *Config) Validate() error {
	if _, err := c.Convention(); err != nil {
		return err
	}
	if c.Memory.Limit < 0 {
		return ErrNegativeSize
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok && c.Log.Level != "" {
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Lang) {
	case "", "en", "english", "zh", "zh-cn", "zh_cn", "zh-tw", "zh-hk", "chinese":
	default:
		return fmt.Errorf("%w: %q", ErrBadLanguage, c.Log.Lang)
	}
	return nil
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Convention 解析调用约定
func (c *Config) Convention() (abi.Convention, error) {
	if strings.ToLower(c.ABI.Convention) != ConventionCustom {
		return abi.Lookup(c.ABI.Convention)
	}
	intRegs, err := safecast.Convert[int](c.ABI.IntRegs)
	if err != nil {
		return abi.Convention{}, fmt.Errorf("config: int_regs: %w", err)
	}
	floatRegs, err := safecast.Convert[int](c.ABI.FloatRegs)
	if err != nil {
		return abi.Convention{}, fmt.Errorf("config: float_regs: %w", err)
	}
	return abi.Custom(ConventionCustom, intRegs, floatRegs)
}

// Allocator 按配额创建分配器
func (c *Config) Allocator() *mem.Heap {
	return mem.NewHeap(c.Memory.Limit)
}

// Language 消息语言
func (c *Config) Language() i18n.Language {
	return i18n.ParseLanguage(c.Log.Lang)
}

// Save 保存配置到文件
func (c *Config) Save(path string) error {
	content := generateConfigWithComments(c)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// generateConfigWithComments 生成带注释的配置文件内容
func generateConfigWithComments(c *Config) string {
	var sb strings.Builder

	sb.WriteString("[abi]\n")
	sb.WriteString("# 调用约定：native | sysv-amd64 | win64 | aapcs64 | custom\n")
	sb.WriteString(fmt.Sprintf("convention = %q\n", c.ABI.Convention))
	sb.WriteString("# 寄存器数量（仅 custom 使用，整数寄存器包含 3 个前导槽）\n")
	sb.WriteString(fmt.Sprintf("int_regs = %d\n", c.ABI.IntRegs))
	sb.WriteString(fmt.Sprintf("float_regs = %d\n\n", c.ABI.FloatRegs))

	sb.WriteString("[memory]\n")
	sb.WriteString("# 调用帧与参数数组的配额（字节），0 表示不限\n")
	sb.WriteString(fmt.Sprintf("limit = %d\n\n", c.Memory.Limit))

	sb.WriteString("[log]\n")
	sb.WriteString("# 日志级别：debug | info | warn | error\n")
	sb.WriteString(fmt.Sprintf("level = %q\n", c.Log.Level))
	sb.WriteString("# 消息语言：en | zh\n")
	sb.WriteString(fmt.Sprintf("lang = %q\n", c.Log.Lang))

	return sb.String()
}

// GenerateDefault 生成默认配置
func GenerateDefault() *Config {
	return Default()
}

// FindConfigFile 从指定路径向上查找配置文件
// 找不到时返回空字符串。
func FindConfigFile(startPath string) string {
	info, err := os.Stat(startPath)
	if err != nil {
		return ""
	}

	dir := startPath
	if !info.IsDir() {
		dir = filepath.Dir(startPath)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
