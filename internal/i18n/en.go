package i18n

// 调用错误消息统一接收 (class, name, desc) 三个参数，使用显式下标引用。
var messagesEN = map[string]string{
	// ========== Invoke ==========
	"invoke.no_such_method":            "no such method %[2]s%[3]s in class %[1]s or its superclasses",
	"invoke.incompatible_class_change": "method %[1]s.%[2]s%[3]s does not match the requested dispatch kind",
	"invoke.out_of_memory":             "cannot allocate call storage for %[1]s.%[2]s%[3]s",
	"invoke.unsatisfied_link":          "no native implementation found for %[1]s.%[2]s%[3]s",
	"invoke.illegal_argument":          "arguments do not match descriptor of %[1]s.%[2]s%[3]s",
	"invoke.null_receiver":             "instance method %[1]s.%[2]s%[3]s invoked on null",

	// ========== Suggestions ==========
	"suggestion.did_you_mean_method": "did you mean '%s'?",
	"suggestion.other_descriptor":    "a method '%s' exists with descriptor %s",
	"suggestion.use_instance_call":   "the method is an instance method; resolve it with the instance lookup",
	"suggestion.use_static_call":     "the method is static; resolve it with the class lookup",

	// ========== CLI ==========
	"cli.usage":              "Usage: nvcall [-lang en|zh] [-config file] <command> [arguments]",
	"cli.commands":           "Commands:",
	"cli.cmd_parse":          "Show the tags of a method descriptor",
	"cli.cmd_layout":         "Show how arguments are placed in registers and on the stack",
	"cli.cmd_resolve":        "Resolve a method in a YAML class hierarchy",
	"cli.cmd_init":           "Write a default nvcall.toml",
	"cli.cmd_help":           "Show this help",
	"cli.unknown_command":    "unknown command: %s",
	"cli.missing_arg":        "missing argument: %s",
	"cli.invalid_descriptor": "invalid descriptor %q: %v",
	"cli.unknown_class":      "unknown class: %s",
	"cli.params":             "parameters: %d",
	"cli.return":             "return: %s",
	"cli.convention":         "convention: %s",
	"cli.leading":            "leading slots: %d",
	"cli.registers":          "registers: int %d/%d, fp %d/%d",
	"cli.overflow":           "stack (overflow): %d",
	"cli.resolved":           "resolved %s%s in %s (access 0x%04x)",
	"cli.visibility":         "visibility: %s",
	"cli.config_written":     "wrote %s",
	"cli.config_exists":      "%s already exists",
}
