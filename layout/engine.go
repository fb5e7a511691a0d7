package layout

import "fmt"

// 本文件是纯几何计算核心：给定标签与纸张参数，计算参考线与标签轮廓。
// 所有函数无副作用，相同输入总是得到相同输出；任何非法输入在产生
// 任何结果之前即返回错误。

// validateSheet 校验网格参数，非法时返回 InvalidSheetSpecError。
func validateSheet(sheet SheetSpec) error {
	switch {
	case sheet.Rows <= 0:
		return &InvalidSheetSpecError{Reason: fmt.Sprintf("rows must be positive, got %d", sheet.Rows)}
	case sheet.Columns <= 0:
		return &InvalidSheetSpecError{Reason: fmt.Sprintf("columns must be positive, got %d", sheet.Columns)}
	case sheet.CellWidth <= 0:
		return &InvalidSheetSpecError{Reason: fmt.Sprintf("cell width must be positive, got %g", sheet.CellWidth)}
	case sheet.CellHeight <= 0:
		return &InvalidSheetSpecError{Reason: fmt.Sprintf("cell height must be positive, got %g", sheet.CellHeight)}
	}
	return nil
}

// ComputeGuides 计算单元格边界参考线：先行后列，
// 共 rows+1 条水平线与 columns+1 条垂直线。
func ComputeGuides(sheet SheetSpec) ([]Guide, error) {
	if err := validateSheet(sheet); err != nil {
		return nil, err
	}

	guides := make([]Guide, 0, sheet.Rows+sheet.Columns+2)
	for r := 0; r <= sheet.Rows; r++ {
		y := sheet.MarginTop + float64(r)*(sheet.CellHeight+sheet.SpacingY)
		guides = append(guides, Guide{Axis: Horizontal, Position: y})
	}
	for c := 0; c <= sheet.Columns; c++ {
		x := sheet.MarginLeft + float64(c)*(sheet.CellWidth+sheet.SpacingX)
		guides = append(guides, Guide{Axis: Vertical, Position: x})
	}
	return guides, nil
}

// ComputeShapes 以行优先顺序计算每个单元格的标签轮廓，
// 共 rows×columns 个。未知的形状种类返回 InvalidLabelTypeError。
func ComputeShapes(label LabelSpec, sheet SheetSpec) ([]Shape, error) {
	if label.Kind != KindRect && label.Kind != KindEllipse {
		return nil, &InvalidLabelTypeError{Kind: label.Kind}
	}
	if label.Width <= 0 {
		return nil, &InvalidSheetSpecError{Reason: fmt.Sprintf("label width must be positive, got %g", label.Width)}
	}
	if label.Height <= 0 {
		return nil, &InvalidSheetSpecError{Reason: fmt.Sprintf("label height must be positive, got %g", label.Height)}
	}
	if err := validateSheet(sheet); err != nil {
		return nil, err
	}

	shapes := make([]Shape, 0, sheet.Rows*sheet.Columns)
	for r := 0; r < sheet.Rows; r++ {
		for c := 0; c < sheet.Columns; c++ {
			s := Shape{
				Kind:   label.Kind,
				X:      sheet.MarginLeft + float64(c)*(label.Width+sheet.SpacingX),
				Y:      sheet.MarginTop + float64(r)*(label.Height+sheet.SpacingY),
				Width:  label.Width,
				Height: label.Height,
			}
			if label.Kind == KindRect {
				s.CornerRadius = label.CornerRadius
			}
			shapes = append(shapes, s)
		}
	}
	return shapes, nil
}
