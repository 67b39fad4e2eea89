package native

import (
	"go.uber.org/zap"

	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/rt"
)

// SymbolTable 动态符号表
type SymbolTable interface {
	Lookup(symbol string) (rt.Impl, bool)
}

// Linker 按短名称、长名称的顺序查找本地实现
type Linker struct {
	Symbols SymbolTable
}

// NewLinker 创建链接器
func NewLinker(symbols SymbolTable) *Linker {
	return &Linker{Symbols: symbols}
}

// Find 查找实现，不报告
func (l *Linker) Find(log *zap.Logger, m *rt.Method) (rt.Impl, string, bool) {
	short := ShortName(m.ClassName(), m.Name)
	long := LongName(m.ClassName(), m.Name, m.Desc)
	for _, symbol := range []string{short, long} {
		log.Debug("searching for native method", zap.String("symbol", symbol))
		if impl, ok := l.Symbols.Lookup(symbol); ok {
			log.Debug("found native method", zap.String("symbol", symbol))
			return impl, symbol, true
		}
	}
	return 0, "", false
}

// Link 实现 rt.Linker
// 方法在加载后只读，找到的入口只用于本次调用。
func (l *Linker) Link(env *rt.Env, m *rt.Method) (rt.Impl, error) {
	if impl, _, ok := l.Find(env.Log(), m); ok {
		return impl, nil
	}
	return 0, env.Throw(errors.UnsatisfiedLink(m.ClassName(), m.Name, m.Desc))
}
