package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"labelsheet/binding"
	"labelsheet/dsl"
	"labelsheet/layout"
	"labelsheet/preset"
	"labelsheet/renderer"
	canvasrenderer "labelsheet/renderer/canvas"
	svgrenderer "labelsheet/renderer/svg"
)

func main() {
	input := flag.String("in", "", "标签模板文件路径（.labels）")
	presetName := flag.String("preset", "", "内置标签格式名称")
	list := flag.Bool("list", false, "列出内置标签格式后退出")
	output := flag.String("out", "output/labels.svg", "输出路径（.svg 模板或 .pdf 校样）")
	shapes := flag.Bool("shapes", false, "在输出中加入每个标签的轮廓")
	grid := flag.Bool("grid", false, "在 SVG 模板中加入模块化网格")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到模板占位符的 JSON 数据")
	flag.Parse()

	if *list {
		for _, name := range preset.Names() {
			fmt.Println(name)
		}
		return
	}

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	r, err := rendererFor(*output)
	if err != nil {
		log.Fatalf("%v", err)
	}

	opts := layout.BuildOptions{Shapes: *shapes, Grid: *grid}
	if err := run(*input, *presetName, *output, *debug, inputData, opts, r); err != nil {
		log.Fatalf("生成标签模板失败: %v", err)
	}
	fmt.Printf("已生成：%s\n", *output)
}

// rendererFor 按输出扩展名选择渲染器。
func rendererFor(outputPath string) (renderer.Renderer, error) {
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".svg":
		return svgrenderer.NewRenderer(), nil
	case ".pdf":
		return canvasrenderer.NewRenderer(), nil
	default:
		return nil, fmt.Errorf("无法根据扩展名选择渲染器：%s（支持 .svg 与 .pdf）", outputPath)
	}
}

// run 串联模板读取、数据绑定、解析、布局与渲染。
func run(inputPath, presetName, outputPath, debugPath string, data any, opts layout.BuildOptions, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}

	source, err := loadSource(inputPath, presetName)
	if err != nil {
		return err
	}

	bound, err := binding.Apply(source, data)
	if err != nil {
		return err
	}

	doc, err := dsl.ParseString(bound)
	if err != nil {
		return fmt.Errorf("解析模板失败: %w", err)
	}

	result, err := layout.Build(doc, opts)
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	out, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}

	return nil
}

// loadSource 读取模板内容：-in 与 -preset 必须且只能指定一个。
func loadSource(inputPath, presetName string) (string, error) {
	switch {
	case inputPath != "" && presetName != "":
		return "", fmt.Errorf("-in 与 -preset 只能指定一个")
	case inputPath != "":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("无法读取模板文件 %s: %w", inputPath, err)
		}
		return string(data), nil
	case presetName != "":
		data, err := preset.Source(presetName)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("需要 -in 或 -preset 指定模板")
	}
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
