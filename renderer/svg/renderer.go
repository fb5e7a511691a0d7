package svgrenderer

import (
	"encoding/xml"
	"fmt"

	"labelsheet/layout"
	"labelsheet/renderer"
)

// 标签轮廓统一使用模板蓝描边、不填充，便于在编辑器里区分模板与内容。
const shapeStyle = "fill:none;stroke:#0086e5;stroke-width:0.2"

// Renderer 将布局结果写成 Inkscape 可直接打开的 SVG 模板文档：
// 参考线进入 sodipodi:namedview，轮廓进入独立的 Shapes 图层。
type Renderer struct{}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates an SVG template renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render 生成 SVG 文档字节。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	doc := buildDocument(result)
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("序列化 SVG 失败: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(data)+1)
	out = append(out, xml.Header...)
	out = append(out, data...)
	out = append(out, '\n')
	return out, nil
}

func buildDocument(result *layout.Result) *svgDoc {
	page := result.Page
	doc := &svgDoc{
		XmlnsSVG:      "http://www.w3.org/2000/svg",
		XmlnsSodipodi: "http://sodipodi.sourceforge.net/DTD/sodipodi-0.0.dtd",
		XmlnsInkscape: "http://www.inkscape.org/namespaces/inkscape",
		Width:         fmt.Sprintf("%g%s", page.Width, page.Units),
		Height:        fmt.Sprintf("%g%s", page.Height, page.Units),
		ViewBox:       fmt.Sprintf("0 0 %g %g", page.Width, page.Height),
		Version:       "1.1",
		Title:         result.Template.Name,
		NamedView: namedView{
			ID:            "namedview",
			DocumentUnits: page.Units,
			ShowGuides:    "true",
		},
	}

	for i, g := range result.Guides {
		if node, ok := guideElem(g, page, i); ok {
			doc.NamedView.Guides = append(doc.NamedView.Guides, node)
		}
	}

	if result.Grid != nil {
		doc.NamedView.Grid = &gridNode{
			ID:       "grid",
			Type:     "modular",
			OriginX:  fmt.Sprintf("%g", result.Grid.OriginX),
			OriginY:  fmt.Sprintf("%g", result.Grid.OriginY),
			SpacingX: fmt.Sprintf("%g", result.Grid.SpacingX),
			SpacingY: fmt.Sprintf("%g", result.Grid.SpacingY),
			Units:    result.Grid.Units,
		}
	}

	if len(result.Shapes) > 0 {
		layer := &layerNode{
			ID:        "shapes",
			Label:     "Shapes",
			GroupMode: "layer",
		}
		for i, s := range result.Shapes {
			appendShape(layer, s, i)
		}
		doc.Shapes = layer
	}
	return doc
}

// guideElem 转换一条参考线。Inkscape 的参考线锚点以左下角为原点，
// 因此水平线的纵坐标要用页面高度换算。未知方向的参考线不输出。
func guideElem(g layout.Guide, page layout.Page, idx int) (guideNode, bool) {
	node := guideNode{
		ID:    fmt.Sprintf("guide%d", idx),
		Label: g.Name,
	}
	switch g.Axis {
	case layout.Vertical:
		node.Position = fmt.Sprintf("%g,0", g.Position)
		node.Orientation = "1,0"
	case layout.Horizontal:
		node.Position = fmt.Sprintf("0,%g", page.Height-g.Position)
		node.Orientation = "0,1"
	default:
		return guideNode{}, false
	}
	return node, true
}

func appendShape(layer *layerNode, s layout.Shape, idx int) {
	switch s.Kind {
	case layout.KindEllipse:
		layer.Ellipses = append(layer.Ellipses, ellipseNode{
			ID:    fmt.Sprintf("label%d", idx),
			CX:    s.X + s.Width/2,
			CY:    s.Y + s.Height/2,
			RX:    s.Width / 2,
			RY:    s.Height / 2,
			Style: shapeStyle,
		})
	default:
		layer.Rects = append(layer.Rects, rectNode{
			ID:     fmt.Sprintf("label%d", idx),
			X:      s.X,
			Y:      s.Y,
			Width:  s.Width,
			Height: s.Height,
			RX:     s.CornerRadius,
			Style:  shapeStyle,
		})
	}
}

// 以下结构体直接带命名空间前缀序列化，避免 encoding/xml 为
// sodipodi/inkscape 生成默认前缀。
type svgDoc struct {
	XMLName       xml.Name   `xml:"svg"`
	XmlnsSVG      string     `xml:"xmlns,attr"`
	XmlnsSodipodi string     `xml:"xmlns:sodipodi,attr"`
	XmlnsInkscape string     `xml:"xmlns:inkscape,attr"`
	Width         string     `xml:"width,attr"`
	Height        string     `xml:"height,attr"`
	ViewBox       string     `xml:"viewBox,attr"`
	Version       string     `xml:"version,attr"`
	Title         string     `xml:"title,omitempty"`
	NamedView     namedView  `xml:"sodipodi:namedview"`
	Shapes        *layerNode `xml:"g"`
}

type namedView struct {
	ID            string      `xml:"id,attr"`
	DocumentUnits string      `xml:"inkscape:document-units,attr"`
	ShowGuides    string      `xml:"showguides,attr"`
	Guides        []guideNode `xml:"sodipodi:guide"`
	Grid          *gridNode   `xml:"inkscape:grid"`
}

type guideNode struct {
	ID          string `xml:"id,attr"`
	Position    string `xml:"position,attr"`
	Orientation string `xml:"orientation,attr"`
	Label       string `xml:"inkscape:label,attr,omitempty"`
}

// gridNode 的数值属性必须是字符串，Inkscape 不接受数字类型的写法。
type gridNode struct {
	ID       string `xml:"id,attr"`
	Type     string `xml:"type,attr"`
	OriginX  string `xml:"originx,attr"`
	OriginY  string `xml:"originy,attr"`
	SpacingX string `xml:"spacingx,attr"`
	SpacingY string `xml:"spacingy,attr"`
	Units    string `xml:"units,attr"`
}

type layerNode struct {
	ID        string        `xml:"id,attr"`
	Label     string        `xml:"inkscape:label,attr"`
	GroupMode string        `xml:"inkscape:groupmode,attr"`
	Rects     []rectNode    `xml:"rect"`
	Ellipses  []ellipseNode `xml:"ellipse"`
}

type rectNode struct {
	ID     string  `xml:"id,attr"`
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
	RX     float64 `xml:"rx,attr,omitempty"`
	Style  string  `xml:"style,attr"`
}

type ellipseNode struct {
	ID    string  `xml:"id,attr"`
	CX    float64 `xml:"cx,attr"`
	CY    float64 `xml:"cy,attr"`
	RX    float64 `xml:"rx,attr"`
	RY    float64 `xml:"ry,attr"`
	Style string  `xml:"style,attr"`
}
