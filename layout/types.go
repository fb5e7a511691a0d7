package layout

// 该文件定义布局结果与标签描述，供布局计算、渲染与调试 JSON 共用。

// LabelKind 表示单个标签的形状种类。
type LabelKind string

const (
	// KindRect 是矩形标签（可带圆角）。
	KindRect LabelKind = "rect"
	// KindEllipse 是椭圆/圆形标签。
	KindEllipse LabelKind = "ellipse"
)

// GuideAxis 表示参考线方向。
type GuideAxis string

const (
	// Horizontal 水平参考线（沿 X 轴延伸，Position 为 Y 坐标）。
	Horizontal GuideAxis = "horizontal"
	// Vertical 垂直参考线（沿 Y 轴延伸，Position 为 X 坐标）。
	Vertical GuideAxis = "vertical"
)

// Result 保存一次布局计算的完整输出。
type Result struct {
	Template TemplateMeta `json:"template"`
	Page     Page         `json:"page"`
	Guides   []Guide      `json:"guides"`
	Shapes   []Shape      `json:"shapes,omitempty"`
	Grid     *ModularGrid `json:"grid,omitempty"`
}

// TemplateMeta 保存模板元信息（写入输出文档的文档属性）。
type TemplateMeta struct {
	Name        string `json:"name"`
	Vendor      string `json:"vendor,omitempty"`
	Description string `json:"description,omitempty"`
}

// Page 记录页面尺寸，单位为 mm。
type Page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Units  string  `json:"units"`
}

// LabelSpec 描述单个标签格的形状与尺寸（mm）。
// CornerRadius 仅对矩形有意义，0 表示直角。
type LabelSpec struct {
	Kind         LabelKind `json:"kind"`
	Width        float64   `json:"width"`
	Height       float64   `json:"height"`
	CornerRadius float64   `json:"cornerRadius,omitempty"`
}

// SheetSpec 描述整张纸的网格布局（mm）。
// CellWidth/CellHeight 为单元格尺寸，与标签尺寸一致，
// 使参考线计算仅依赖 SheetSpec 本身。
type SheetSpec struct {
	Rows       int     `json:"rows"`
	Columns    int     `json:"columns"`
	MarginLeft float64 `json:"marginLeft"`
	MarginTop  float64 `json:"marginTop"`
	SpacingX   float64 `json:"spacingX"`
	SpacingY   float64 `json:"spacingY"`
	CellWidth  float64 `json:"cellWidth"`
	CellHeight float64 `json:"cellHeight"`
}

// Guide 表示一条参考线。Name 仅在需要标注时非空。
type Guide struct {
	Axis     GuideAxis `json:"axis"`
	Position float64   `json:"position"`
	Name     string    `json:"name,omitempty"`
}

// Shape 表示一个已定位的标签轮廓。
// 坐标为左上角（矩形）或外接框原点（椭圆），单位 mm。
type Shape struct {
	Kind         LabelKind `json:"kind"`
	X            float64   `json:"x"`
	Y            float64   `json:"y"`
	Width        float64   `json:"width"`
	Height       float64   `json:"height"`
	CornerRadius float64   `json:"cornerRadius,omitempty"`
}

// ModularGrid 描述可选的模块化网格：原点取偏移量，间距取标签尺寸。
type ModularGrid struct {
	OriginX  float64 `json:"originX"`
	OriginY  float64 `json:"originY"`
	SpacingX float64 `json:"spacingX"`
	SpacingY float64 `json:"spacingY"`
	Units    string  `json:"units"`
}
