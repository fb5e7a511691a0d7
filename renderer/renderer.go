package renderer

import "labelsheet/layout"

// Renderer 将布局结果输出为最终文件，例如 SVG 模板或 PDF 校样。
// Render 返回生成的文档字节以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
