// Package chatmd 把受限的 Markdown 方言渲染为可安全嵌入聊天气泡的 HTML
//
// 这个包面向 LLM 聊天转写场景：模型回复先经过本包再插入消息气泡，
// 对任意（包括恶意构造的）输入都产出确定的 HTML，绝不 panic、绝不返回错误。
//
// 核心功能：
//   - 两阶段渲染管道：先用占位符保护围栏代码块，再做转义、行内替换与块级分段
//   - 标题、强调、链接、行内代码、列表、表格、引用、分割线、段落
//   - 配套的 Strip()：把同一方言降解为纯文本（预览、历史序列化）
//   - Preview()：按 UTF-16 预算截断的纯文本预览
//   - RenderRich()：可选的 goldmark + bluemonday 完整 GFM 渲染（受信任场景）
//
// 主要 API：
//   - Render(): markdown → HTML 字符串
//   - RenderBlocks(): markdown → 有序块列表，供按块分页的宿主使用
//   - Strip(): markdown → 纯文本
//
// 示例：
//
//	html := chatmd.Render("# 标题\n\n**加粗** 和 `代码`")
//	text := chatmd.Strip("**加粗** 和 `代码`")
package chatmd

import (
	"strings"

	"github.com/jianghao-zhang/chatmd/internal/fence"
	"github.com/jianghao-zhang/chatmd/internal/inline"
	"github.com/jianghao-zhang/chatmd/internal/segment"
	"github.com/jianghao-zhang/chatmd/internal/util"
)

// Render 把聊天 markdown 渲染为 HTML
//
// 管道顺序固定：提取代码块 → HTML 转义 → 行内替换 → 块级分段 →
// 重组还原占位符。对任意输入都是全函数：空串进、空串出，
// 畸形 markdown 降解为字面段落而不是失败。
func Render(markdown string, opts ...Option) string {
	blocks := RenderBlocks(markdown, opts...)
	htmls := make([]string, 0, len(blocks))
	for _, b := range blocks {
		htmls = append(htmls, b.HTML)
	}
	return strings.Join(htmls, "\n")
}

// RenderBlocks 渲染为有序的块列表
//
// 与 Render() 走同一条管道，但在拼接之前返回各个块，
// 代码块占位符已经还原为 <pre>/<code> 片段。
// 需要把长回复按块分页的宿主配合 SplitBlocks() 使用。
func RenderBlocks(markdown string, opts ...Option) []Block {
	options := applyOptions(opts...)
	cfg := options.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// 保护 → 变换 → 还原
	text, store := fence.Extract(markdown, cfg)
	text = util.EscapeHTML(text)
	text = inline.Apply(text, cfg)

	blocks := segment.Scan(text, cfg)

	resolved := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		b.HTML = store.Restore(b.HTML)
		if b.HTML == "" {
			// 没有对应存量的占位符被移除而不是留在输出里
			continue
		}
		resolved = append(resolved, b)
	}
	return resolved
}
