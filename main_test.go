package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"labelsheet/layout"
	canvasrenderer "labelsheet/renderer/canvas"
	svgrenderer "labelsheet/renderer/svg"
)

// stubRenderer 是一个最小实现，仅用于测试 run 的串联逻辑，
// 避免真实渲染。
type stubRenderer struct {
	last *layout.Result
}

func (s *stubRenderer) Render(res *layout.Result) ([]byte, error) {
	s.last = res
	return []byte("rendered"), nil
}

const mainTestTemplate = `
template Worked v1 {
  meta {
    name: "Worked Example"
  }

  sheet 210mm x 297mm {
    label rect 50mm x 30mm
    grid 3 x 2
    offset 10mm 10mm
    spacing 5mm 5mm
  }
}
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.labels")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入临时模板失败: %v", err)
	}
	return path
}

func TestRunWithTemplateFile(t *testing.T) {
	in := writeTemplate(t, mainTestTemplate)
	out := filepath.Join(t.TempDir(), "out", "labels.svg")
	stub := &stubRenderer{}

	if err := run(in, "", out, "", nil, layout.BuildOptions{Shapes: true}, stub); err != nil {
		t.Fatalf("run error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("输出文件未写入: %v", err)
	}
	if string(data) != "rendered" {
		t.Fatalf("unexpected output %q", data)
	}
	if stub.last == nil {
		t.Fatalf("renderer not invoked")
	}
	if len(stub.last.Guides) != 7 {
		t.Fatalf("expected 7 guides, got %d", len(stub.last.Guides))
	}
	if len(stub.last.Shapes) != 6 {
		t.Fatalf("expected 6 shapes, got %d", len(stub.last.Shapes))
	}
}

func TestRunWithPreset(t *testing.T) {
	out := filepath.Join(t.TempDir(), "labels.svg")
	stub := &stubRenderer{}

	if err := run("", "topstick-8707", out, "", nil, layout.BuildOptions{}, stub); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if stub.last == nil {
		t.Fatalf("renderer not invoked")
	}
	// 3 列 7 行：8+4 条参考线
	if len(stub.last.Guides) != 12 {
		t.Fatalf("expected 12 guides, got %d", len(stub.last.Guides))
	}
}

// -in 与 -preset 互斥，且必须二选一。
func TestRunSourceSelection(t *testing.T) {
	out := filepath.Join(t.TempDir(), "labels.svg")
	stub := &stubRenderer{}

	err := run("some.labels", "topstick-8707", out, "", nil, layout.BuildOptions{}, stub)
	if err == nil {
		t.Fatalf("expected error when both -in and -preset are given")
	}
	if !strings.Contains(err.Error(), "-preset") {
		t.Fatalf("error should mention the flags: %v", err)
	}

	if err := run("", "", out, "", nil, layout.BuildOptions{}, stub); err == nil {
		t.Fatalf("expected error when neither -in nor -preset is given")
	}
	if stub.last != nil {
		t.Fatalf("renderer must not run without a source")
	}
}

func TestRunNilRenderer(t *testing.T) {
	if err := run("", "topstick-8707", "labels.svg", "", nil, layout.BuildOptions{}, nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRunWithBindingData(t *testing.T) {
	in := writeTemplate(t, `
template Bound v1 {
  sheet A4 {
    label rect 70mm x 41mm
    grid ${grid.cols} x ${grid.rows}
  }
}
`)
	out := filepath.Join(t.TempDir(), "labels.svg")
	stub := &stubRenderer{}
	data := map[string]interface{}{
		"grid": map[string]interface{}{"cols": 3.0, "rows": 7.0},
	}

	if err := run(in, "", out, "", data, layout.BuildOptions{Shapes: true}, stub); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(stub.last.Shapes) != 21 {
		t.Fatalf("expected 21 shapes, got %d", len(stub.last.Shapes))
	}

	// 没有数据时，占位符必须让整个流程失败
	if err := run(in, "", out, "", nil, layout.BuildOptions{}, stub); err == nil {
		t.Fatalf("expected error for unresolved placeholders")
	}
}

func TestRunWritesDebugJSON(t *testing.T) {
	in := writeTemplate(t, mainTestTemplate)
	tmp := t.TempDir()
	out := filepath.Join(tmp, "labels.svg")
	debug := filepath.Join(tmp, "debug", "layout.json")

	if err := run(in, "", out, debug, nil, layout.BuildOptions{}, &stubRenderer{}); err != nil {
		t.Fatalf("run error: %v", err)
	}
	data, err := os.ReadFile(debug)
	if err != nil {
		t.Fatalf("调试 JSON 未写入: %v", err)
	}
	if !strings.Contains(string(data), `"guides"`) {
		t.Fatalf("debug JSON missing guides: %s", data)
	}
}

func TestRendererFor(t *testing.T) {
	r, err := rendererFor("out/labels.svg")
	if err != nil {
		t.Fatalf("svg: %v", err)
	}
	if _, ok := r.(*svgrenderer.Renderer); !ok {
		t.Fatalf("expected SVG renderer, got %T", r)
	}

	r, err = rendererFor("proof.PDF") // 扩展名大小写不敏感
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if _, ok := r.(*canvasrenderer.Renderer); !ok {
		t.Fatalf("expected canvas renderer, got %T", r)
	}

	if _, err := rendererFor("labels.txt"); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
