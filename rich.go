package chatmd

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Configured once and reused across all calls; both are safe for
// concurrent use.
var (
	richMarkdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	// UGC policy: allows safe elements (p, a, img, code, etc.)
	// while stripping script, iframe, object, embed, form tags.
	richPolicy = bluemonday.UGCPolicy()
)

// RenderRich 用 goldmark 做完整的 GFM 渲染并经 bluemonday 消毒
//
// 面向受信任的非聊天场景（笔记面板、导出的转写）。聊天气泡请使用
// Render()：聊天方言的语义（h2 起步的标题层级、按标记类切分的列表、
// 未闭合围栏保持字面量）是刻意偏离 CommonMark 的，goldmark 无法复现。
func RenderRich(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := richMarkdown.Convert([]byte(markdown), &buf); err != nil {
		Logger.Printf("rich render failed: %v", err)
		return "", err
	}
	return richPolicy.Sanitize(buf.String()), nil
}
