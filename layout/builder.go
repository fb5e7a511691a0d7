package layout

import (
	"fmt"
	"strconv"
	"strings"

	"labelsheet/dsl"
)

// 标签模板默认单位为 mm，与原始标签规格表保持一致。
const defaultUnits = "mm"

// knownCommands 列出 sheet 段落允许的语句；拼写错误的语句会在
// 布局前被拒绝，而不是被悄悄忽略。
var knownCommands = map[string]bool{
	"label":   true,
	"grid":    true,
	"offset":  true,
	"spacing": true,
	"corner":  true,
}

// Build 根据模板 AST 生成页面、参考线与标签轮廓的布局结果。
func Build(doc *dsl.Document, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	sheet := doc.Sheet()
	if sheet == nil {
		return nil, fmt.Errorf("文档中缺少 sheet 段落")
	}

	for _, cmd := range sheet.Commands {
		if !knownCommands[cmd.Name] {
			return nil, fmt.Errorf("未知的 sheet 语句 %s（第 %d 行）", cmd.Name, cmd.Pos.Line)
		}
	}

	page, err := resolvePageSize(sheet.Size)
	if err != nil {
		return nil, err
	}

	label, err := resolveLabel(sheet)
	if err != nil {
		return nil, err
	}

	grid, err := resolveGrid(sheet)
	if err != nil {
		return nil, err
	}

	offsetX, offsetY, err := resolvePair(sheet, "offset")
	if err != nil {
		return nil, err
	}
	spacingX, spacingY, err := resolvePair(sheet, "spacing")
	if err != nil {
		return nil, err
	}

	spec := SheetSpec{
		Rows:       grid.rows,
		Columns:    grid.cols,
		MarginLeft: offsetX,
		MarginTop:  offsetY,
		SpacingX:   spacingX,
		SpacingY:   spacingY,
		CellWidth:  label.Width,
		CellHeight: label.Height,
	}

	guides, err := ComputeGuides(spec)
	if err != nil {
		return nil, err
	}
	// 始终计算轮廓以校验标签种类；仅在请求时写入结果。
	shapes, err := ComputeShapes(label, spec)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Template: collectMeta(doc),
		Page:     page,
		Guides:   guides,
	}
	if opts.Shapes {
		res.Shapes = shapes
	}
	if opts.Grid {
		res.Grid = &ModularGrid{
			OriginX:  offsetX,
			OriginY:  offsetY,
			SpacingX: label.Width,
			SpacingY: label.Height,
			Units:    page.Units,
		}
	}
	return res, nil
}

// collectMeta 读取 meta 段落，缺省时以文档名兜底。
func collectMeta(doc *dsl.Document) TemplateMeta {
	meta := doc.Meta()
	tm := TemplateMeta{
		Name:        meta.Get("name"),
		Vendor:      meta.Get("vendor"),
		Description: meta.Get("description"),
	}
	if tm.Name == "" {
		tm.Name = doc.Name
	}
	return tm
}

// namedPageSizes 列出支持的纸张名称（mm）。
var namedPageSizes = map[string][2]float64{
	"a3":     {297, 420},
	"a4":     {210, 297},
	"a5":     {148, 210},
	"letter": {215.9, 279.4},
	"legal":  {215.9, 355.6},
}

func resolvePageSize(size dsl.PageSize) (Page, error) {
	if size.Name != "" {
		dims, ok := namedPageSizes[strings.ToLower(size.Name)]
		if !ok {
			return Page{}, fmt.Errorf("暂不支持的纸张尺寸：%s", size.Name)
		}
		return Page{Width: dims[0], Height: dims[1], Units: defaultUnits}, nil
	}
	w, ok := ParseLength(size.Width)
	if !ok {
		return Page{}, fmt.Errorf("无法解析页面宽度：%s", size.Width)
	}
	h, ok := ParseLength(size.Height)
	if !ok {
		return Page{}, fmt.Errorf("无法解析页面高度：%s", size.Height)
	}
	return Page{Width: w.ToMM(), Height: h.ToMM(), Units: defaultUnits}, nil
}

// labelKinds 将模板中的形状别名归一到内部种类。
// 未列出的名字原样传给 ComputeShapes，由其报告 InvalidLabelTypeError。
var labelKinds = map[string]LabelKind{
	"rect":        KindRect,
	"rectangle":   KindRect,
	"rectangular": KindRect,
	"ellipse":     KindEllipse,
	"circle":      KindEllipse,
	"circular":    KindEllipse,
	"round":       KindEllipse,
}

func resolveLabel(sheet *dsl.SheetSection) (LabelSpec, error) {
	cmd := sheet.Command("label")
	if cmd == nil {
		return LabelSpec{}, fmt.Errorf("sheet 段落缺少 label 语句")
	}
	if len(cmd.Args) == 0 {
		return LabelSpec{}, fmt.Errorf("label 语句缺少形状种类（第 %d 行）", cmd.Pos.Line)
	}

	kind, ok := labelKinds[strings.ToLower(cmd.Args[0])]
	if !ok {
		kind = LabelKind(cmd.Args[0])
	}

	dims := lengthArgs(cmd.Args[1:])
	var label LabelSpec
	switch len(dims) {
	case 1:
		// 圆形标签只给直径：`label circle 40mm`
		label = LabelSpec{Kind: kind, Width: dims[0].ToMM(), Height: dims[0].ToMM()}
	case 2:
		label = LabelSpec{Kind: kind, Width: dims[0].ToMM(), Height: dims[1].ToMM()}
	default:
		return LabelSpec{}, fmt.Errorf("label 语句需要 1 或 2 个尺寸，实际 %d 个（第 %d 行）", len(dims), cmd.Pos.Line)
	}

	if corner := sheet.Command("corner"); corner != nil {
		r := lengthArgs(corner.Args)
		if len(r) != 1 {
			return LabelSpec{}, fmt.Errorf("corner 语句需要 1 个长度，实际 %d 个（第 %d 行）", len(r), corner.Pos.Line)
		}
		if r[0].Value < 0 {
			return LabelSpec{}, fmt.Errorf("corner 不能为负数（第 %d 行）", corner.Pos.Line)
		}
		label.CornerRadius = r[0].ToMM()
	}
	return label, nil
}

type gridCounts struct {
	cols, rows int
}

// resolveGrid 解析 `grid <cols> x <rows>`。
func resolveGrid(sheet *dsl.SheetSection) (gridCounts, error) {
	cmd := sheet.Command("grid")
	if cmd == nil {
		return gridCounts{}, fmt.Errorf("sheet 段落缺少 grid 语句")
	}
	var counts []int
	for _, arg := range cmd.Args {
		if strings.EqualFold(arg, "x") {
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return gridCounts{}, fmt.Errorf("grid 参数 %s 不是整数（第 %d 行）", arg, cmd.Pos.Line)
		}
		counts = append(counts, n)
	}
	if len(counts) != 2 {
		return gridCounts{}, fmt.Errorf("grid 语句需要 2 个整数，实际 %d 个（第 %d 行）", len(counts), cmd.Pos.Line)
	}
	return gridCounts{cols: counts[0], rows: counts[1]}, nil
}

// resolvePair 解析形如 `offset 0mm 5mm` 的两个长度；语句缺省时返回 0。
func resolvePair(sheet *dsl.SheetSection, name string) (float64, float64, error) {
	cmd := sheet.Command(name)
	if cmd == nil {
		return 0, 0, nil
	}
	dims := lengthArgs(cmd.Args)
	if len(dims) != 2 {
		return 0, 0, fmt.Errorf("%s 语句需要 2 个长度，实际 %d 个（第 %d 行）", name, len(dims), cmd.Pos.Line)
	}
	return dims[0].ToMM(), dims[1].ToMM(), nil
}

// lengthArgs 解析参数中的长度，忽略分隔用的 x。
func lengthArgs(args []string) []Length {
	var out []Length
	for _, arg := range args {
		if strings.EqualFold(arg, "x") {
			continue
		}
		if l, ok := ParseLength(arg); ok {
			out = append(out, l)
		}
	}
	return out
}
