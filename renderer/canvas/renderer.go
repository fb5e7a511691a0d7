package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"labelsheet/layout"
	"labelsheet/renderer"
)

// 线宽单位为 mm，与布局坐标一致。
const (
	guideStrokeWidth = 0.1
	shapeStrokeWidth = 0.2
)

var (
	// 标签轮廓使用模板蓝，与 SVG 模板中的描边一致。
	shapeStroke = color.RGBA{R: 0x00, G: 0x86, B: 0xE5, A: 0xFF}
	// 参考线用浅色细线，打印校样时不喧宾夺主。
	guideStroke = color.RGBA{R: 0x9D, G: 0xC9, B: 0xEF, A: 0xFF}
)

// Renderer 通过 github.com/tdewolff/canvas 将布局结果绘制成 PDF 校样。
type Renderer struct{}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a canvas-based PDF proof renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render 渲染单页 PDF 并返回字节。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if result.Page.Width <= 0 || result.Page.Height <= 0 {
		return nil, fmt.Errorf("页面尺寸非法：%g x %g", result.Page.Width, result.Page.Height)
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Page.Width, result.Page.Height, nil)
	r.applyMeta(writer, result.Template)

	c := canvas.New(result.Page.Width, result.Page.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	r.drawGuides(ctx, result.Guides, result.Page)
	r.drawShapes(ctx, result.Shapes)
	c.RenderTo(writer)

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) applyMeta(writer *pdf.PDF, meta layout.TemplateMeta) {
	if writer == nil {
		return
	}
	writer.SetInfo(meta.Name, meta.Description, "", meta.Vendor, "labelsheet")
}

// drawGuides 将参考线画满整个页面（横向到页宽、纵向到页高）。
// 未知方向的参考线跳过，不猜测。
func (r *Renderer) drawGuides(ctx *canvas.Context, guides []layout.Guide, page layout.Page) {
	ctx.SetStrokeColor(guideStroke)
	ctx.SetStrokeWidth(guideStrokeWidth)
	for _, g := range guides {
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		switch g.Axis {
		case layout.Vertical:
			p.LineTo(0, page.Height)
			ctx.DrawPath(g.Position, 0, p)
		case layout.Horizontal:
			p.LineTo(page.Width, 0)
			ctx.DrawPath(0, g.Position, p)
		}
	}
}

// drawShapes 绘制标签轮廓：矩形（含圆角）与椭圆。
func (r *Renderer) drawShapes(ctx *canvas.Context, shapes []layout.Shape) {
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(shapeStroke)
	ctx.SetStrokeWidth(shapeStrokeWidth)
	for _, s := range shapes {
		p, x, y := shapeOutline(s)
		ctx.DrawPath(x, y, p)
	}
}

// shapeOutline 返回轮廓路径与绘制锚点，保证轮廓恰好占据
// [X, X+W]×[Y, Y+H]：矩形路径以角为原点，椭圆路径以圆心为原点，
// 因此椭圆的锚点取外接框中心。
func shapeOutline(s layout.Shape) (*canvas.Path, float64, float64) {
	switch s.Kind {
	case layout.KindEllipse:
		rx := s.Width / 2
		ry := s.Height / 2
		return canvas.Ellipse(rx, ry), s.X + rx, s.Y + ry
	default:
		if s.CornerRadius > 0 {
			return canvas.RoundedRectangle(s.Width, s.Height, s.CornerRadius), s.X, s.Y
		}
		return canvas.Rectangle(s.Width, s.Height), s.X, s.Y
	}
}
