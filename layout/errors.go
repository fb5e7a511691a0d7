package layout

import "fmt"

// InvalidLabelTypeError indicates a label shape kind outside {rect, ellipse}.
type InvalidLabelTypeError struct {
	Kind LabelKind
}

func (e *InvalidLabelTypeError) Error() string {
	return fmt.Sprintf("unknown label shape type: %q", string(e.Kind))
}

// InvalidSheetSpecError indicates sheet parameters that cannot form a grid,
// eg. non-positive row/column counts or cell dimensions.
type InvalidSheetSpecError struct {
	Reason string
}

func (e *InvalidSheetSpecError) Error() string {
	return fmt.Sprintf("invalid sheet spec: %s", e.Reason)
}
