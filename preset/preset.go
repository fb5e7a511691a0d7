package preset

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"

	"labelsheet/dsl"
)

//go:embed catalog/*.labels
var catalogFS embed.FS

const catalogDir = "catalog"

// Names 返回所有内置标签格式的名称（字典序）。
func Names() []string {
	entries, err := catalogFS.ReadDir(catalogDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".labels"))
	}
	sort.Strings(names)
	return names
}

// Source 返回内置模板的原始内容，name 可带或不带 .labels 后缀。
func Source(name string) ([]byte, error) {
	clean := strings.TrimSuffix(strings.TrimSpace(name), ".labels")
	data, err := catalogFS.ReadFile(catalogDir + "/" + clean + ".labels")
	if err != nil {
		return nil, fmt.Errorf("未找到内置模板 %s（可用：%s）", name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Load 解析内置模板为 AST。
func Load(name string) (*dsl.Document, error) {
	data, err := Source(name)
	if err != nil {
		return nil, err
	}
	doc, err := dsl.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解析内置模板 %s 失败: %w", name, err)
	}
	return doc, nil
}
