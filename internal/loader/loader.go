// Package loader 从 YAML 描述加载类层次
//
// 加载时校验方法描述符和访问标志，调用路径上不再校验。
//
//	classes:
//	  - name: demo/Animal
//	    methods:
//	      - name: speak
//	        desc: (I)I
//	        access: [public, native]
//	  - name: demo/Dog
//	    super: demo/Animal
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/tangzhangming/nvcall/internal/descriptor"
	"github.com/tangzhangming/nvcall/internal/rt"
)

var (
	ErrNoName          = errors.New("loader: class or method without name")
	ErrDuplicateClass  = errors.New("loader: duplicate class")
	ErrDuplicateMethod = errors.New("loader: duplicate method")
	ErrUnknownSuper    = errors.New("loader: unknown superclass")
	ErrCycle           = errors.New("loader: inheritance cycle")
	ErrBadAccess       = errors.New("loader: unknown access flag")
	ErrBadDescriptor   = errors.New("loader: malformed descriptor")
)

// File 类层次文件
type File struct {
	Classes []ClassSpec `yaml:"classes"`
}

// ClassSpec 类
type ClassSpec struct {
	Name    string       `yaml:"name"`
	Super   string       `yaml:"super,omitempty"`
	Methods []MethodSpec `yaml:"methods,omitempty"`
}

// MethodSpec 方法
type MethodSpec struct {
	Name   string   `yaml:"name"`
	Desc   string   `yaml:"desc"`
	Access []string `yaml:"access,omitempty"`
}

// Hierarchy 加载完成的类层次
type Hierarchy struct {
	classes map[string]*rt.Class
}

// Class 按名称取类
func (h *Hierarchy) Class(name string) (*rt.Class, bool) {
	c, ok := h.classes[name]
	return c, ok
}

// Names 全部类名（排序）
func (h *Hierarchy) Names() []string {
	names := lo.Keys(h.classes)
	sort.Strings(names)
	return names
}

// Methods 全部方法，按类名排序
func (h *Hierarchy) Methods() []*rt.Method {
	return lo.FlatMap(h.Names(), func(name string, _ int) []*rt.Method {
		return h.classes[name].Methods
	})
}

// Len 类数
func (h *Hierarchy) Len() int { return len(h.classes) }

// LoadFile 从文件加载
func LoadFile(path string) (*Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// Load 从 YAML 流加载
func Load(r io.Reader) (*Hierarchy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse class file: %w", err)
	}
	return Build(&f)
}

// Build 由解析结果构造类层次
// 父类可以在子类之后声明。
func Build(f *File) (*Hierarchy, error) {
	h := &Hierarchy{classes: make(map[string]*rt.Class, len(f.Classes))}

	for _, cs := range f.Classes {
		if cs.Name == "" {
			return nil, ErrNoName
		}
		if _, dup := h.classes[cs.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, cs.Name)
		}
		class := rt.NewClass(cs.Name, nil)
		for _, ms := range cs.Methods {
			if err := addMethod(class, ms); err != nil {
				return nil, err
			}
		}
		h.classes[cs.Name] = class
	}

	for _, cs := range f.Classes {
		if cs.Super == "" {
			continue
		}
		super, ok := h.classes[cs.Super]
		if !ok {
			return nil, fmt.Errorf("%w: %s extends %s", ErrUnknownSuper, cs.Name, cs.Super)
		}
		h.classes[cs.Name].Super = super
	}

	for _, name := range h.Names() {
		if err := checkCycle(h.classes[name]); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func addMethod(class *rt.Class, ms MethodSpec) error {
	if ms.Name == "" {
		return fmt.Errorf("%w in %s", ErrNoName, class.Name)
	}
	if err := descriptor.Validate(ms.Desc); err != nil {
		return fmt.Errorf("%w: %s.%s%s: %w", ErrBadDescriptor, class.Name, ms.Name, ms.Desc, err)
	}
	if class.DeclaredMethod(ms.Name, ms.Desc) != nil {
		return fmt.Errorf("%w: %s.%s%s", ErrDuplicateMethod, class.Name, ms.Name, ms.Desc)
	}

	var access rt.AccessFlags
	for _, name := range lo.Uniq(ms.Access) {
		flag, ok := rt.ParseAccessFlag(name)
		if !ok {
			return fmt.Errorf("%w: %q on %s.%s", ErrBadAccess, name, class.Name, ms.Name)
		}
		access |= flag
	}
	class.AddMethod(ms.Name, ms.Desc, access, 0)
	return nil
}

// checkCycle 沿父类链检测环
func checkCycle(class *rt.Class) error {
	seen := map[*rt.Class]bool{}
	for c := class; c != nil; c = c.Super {
		if seen[c] {
			return fmt.Errorf("%w: %s", ErrCycle, class.Name)
		}
		seen[c] = true
	}
	return nil
}
