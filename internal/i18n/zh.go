package i18n

var messagesZH = map[string]string{
	// ========== 调用 ==========
	"invoke.no_such_method":            "类 %[1]s 及其父类中不存在方法 %[2]s%[3]s",
	"invoke.incompatible_class_change": "方法 %[1]s.%[2]s%[3]s 与请求的分派方式不符",
	"invoke.out_of_memory":             "无法为 %[1]s.%[2]s%[3]s 分配调用存储",
	"invoke.unsatisfied_link":          "找不到 %[1]s.%[2]s%[3]s 的本地实现",
	"invoke.illegal_argument":          "参数与 %[1]s.%[2]s%[3]s 的描述符不符",
	"invoke.null_receiver":             "在 null 上调用实例方法 %[1]s.%[2]s%[3]s",

	// ========== 建议 ==========
	"suggestion.did_you_mean_method": "你是否想调用 '%s'？",
	"suggestion.other_descriptor":    "存在方法 '%s'，其描述符为 %s",
	"suggestion.use_instance_call":   "该方法是实例方法，请使用实例查找",
	"suggestion.use_static_call":     "该方法是静态方法，请使用类查找",

	// ========== 命令行 ==========
	"cli.usage":              "用法: nvcall [-lang en|zh] [-config 文件] <命令> [参数]",
	"cli.commands":           "命令:",
	"cli.cmd_parse":          "显示方法描述符的类型标签",
	"cli.cmd_layout":         "显示参数在寄存器和栈上的位置",
	"cli.cmd_resolve":        "在 YAML 类层次中解析方法",
	"cli.cmd_init":           "生成默认的 nvcall.toml",
	"cli.cmd_help":           "显示帮助",
	"cli.unknown_command":    "未知命令: %s",
	"cli.missing_arg":        "缺少参数: %s",
	"cli.invalid_descriptor": "无效的描述符 %q: %v",
	"cli.unknown_class":      "未知类: %s",
	"cli.params":             "参数个数: %d",
	"cli.return":             "返回类型: %s",
	"cli.convention":         "调用约定: %s",
	"cli.leading":            "前导槽: %d",
	"cli.registers":          "寄存器: 整数 %d/%d，浮点 %d/%d",
	"cli.overflow":           "栈（溢出）: %d",
	"cli.resolved":           "已解析 %s%s，声明于 %s（访问标志 0x%04x）",
	"cli.visibility":         "可见性: %s",
	"cli.config_written":     "已写入 %s",
	"cli.config_exists":      "%s 已存在",
}
