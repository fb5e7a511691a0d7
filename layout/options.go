package layout

// BuildOptions 控制布局阶段的可选输出。
// 参考线总是生成；轮廓与网格按需生成。
type BuildOptions struct {
	Shapes bool // 输出每个标签的轮廓
	Grid   bool // 输出模块化网格描述
}
