package canvasrenderer

import (
	"math"
	"strings"
	"testing"

	"labelsheet/layout"
)

func workedResult(t *testing.T) *layout.Result {
	t.Helper()
	sheet := layout.SheetSpec{
		Rows: 2, Columns: 3,
		MarginLeft: 10, MarginTop: 10,
		SpacingX: 5, SpacingY: 5,
		CellWidth: 50, CellHeight: 30,
	}
	guides, err := layout.ComputeGuides(sheet)
	if err != nil {
		t.Fatalf("ComputeGuides: %v", err)
	}
	shapes, err := layout.ComputeShapes(layout.LabelSpec{Kind: layout.KindRect, Width: 50, Height: 30, CornerRadius: 2}, sheet)
	if err != nil {
		t.Fatalf("ComputeShapes: %v", err)
	}
	return &layout.Result{
		Template: layout.TemplateMeta{Name: "Worked Example", Vendor: "Testing"},
		Page:     layout.Page{Width: 210, Height: 297, Units: "mm"},
		Guides:   guides,
		Shapes:   shapes,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := NewRenderer().Render(workedResult(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("empty output")
	}
	if !strings.HasPrefix(string(out[:8]), "%PDF") {
		t.Fatalf("output does not start with %%PDF: %q", out[:8])
	}
}

// 圆角矩形与椭圆都必须能绘制。
func TestRenderShapeKinds(t *testing.T) {
	res := workedResult(t)
	res.Shapes = []layout.Shape{
		{Kind: layout.KindRect, X: 10, Y: 10, Width: 50, Height: 30},
		{Kind: layout.KindRect, X: 70, Y: 10, Width: 50, Height: 30, CornerRadius: 2},
		{Kind: layout.KindEllipse, X: 10, Y: 50, Width: 40, Height: 40},
	}
	out, err := NewRenderer().Render(res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("empty output")
	}
}

// TestShapeOutlineBounds 验证平移到锚点后，轮廓路径恰好占据
// [X, X+W]×[Y, Y+H]。椭圆路径以圆心为原点，曾经按外接框原点绘制，
// 导致 PDF 校样中的圆形标签整体偏移半个标签。
func TestShapeOutlineBounds(t *testing.T) {
	const eps = 1e-6
	cases := []struct {
		name  string
		shape layout.Shape
	}{
		{"ellipse", layout.Shape{Kind: layout.KindEllipse, X: 10, Y: 50, Width: 40, Height: 40}},
		{"rect", layout.Shape{Kind: layout.KindRect, X: 10, Y: 10, Width: 50, Height: 30}},
		{"rounded rect", layout.Shape{Kind: layout.KindRect, X: 65, Y: 10, Width: 50, Height: 30, CornerRadius: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, x, y := shapeOutline(tc.shape)
			b := p.Translate(x, y).Bounds()
			if math.Abs(b.X0-tc.shape.X) > eps || math.Abs(b.Y0-tc.shape.Y) > eps {
				t.Fatalf("outline origin (%g,%g), want (%g,%g)", b.X0, b.Y0, tc.shape.X, tc.shape.Y)
			}
			wantX1 := tc.shape.X + tc.shape.Width
			wantY1 := tc.shape.Y + tc.shape.Height
			if math.Abs(b.X1-wantX1) > eps || math.Abs(b.Y1-wantY1) > eps {
				t.Fatalf("outline extent (%g,%g), want (%g,%g)", b.X1, b.Y1, wantX1, wantY1)
			}
		})
	}
}

// 未知方向的参考线被跳过，渲染不应失败。
func TestRenderSkipsUnknownGuideAxis(t *testing.T) {
	res := workedResult(t)
	res.Shapes = nil
	res.Guides = append(res.Guides, layout.Guide{Axis: "diagonal", Position: 42})
	out, err := NewRenderer().Render(res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("empty output")
	}
}

func TestRenderGuidesOnly(t *testing.T) {
	res := workedResult(t)
	res.Shapes = nil
	out, err := NewRenderer().Render(res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("empty output")
	}
}

func TestRenderNilResult(t *testing.T) {
	if _, err := NewRenderer().Render(nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
}

func TestRenderInvalidPage(t *testing.T) {
	res := workedResult(t)
	res.Page.Width = 0
	if _, err := NewRenderer().Render(res); err == nil {
		t.Fatalf("expected error for zero-width page")
	}
}
