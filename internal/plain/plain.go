// Package plain 把聊天 markdown 降解为纯文本
//
// 与渲染管道完全独立的一趟删除序列：不转义、不使用占位符，
// 删除语法、保留内容。输出面向纯文本场景（截断预览、历史记录），
// 不可用于 HTML 嵌入。
package plain

import (
	"regexp"
	"strings"
)

var (
	fencedRe     = regexp.MustCompile("(?s)```[A-Za-z0-9._+#-]*[ \t]*\n?.*?```")
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")

	boldItalicRe = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)
	boldAltRe    = regexp.MustCompile(`__(.+?)__`)
	italicAltRe  = regexp.MustCompile(`_(.+?)_`)

	linkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

	headingPrefixRe   = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	orderedPrefixRe   = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	unorderedPrefixRe = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+`)
	quotePrefixRe     = regexp.MustCompile(`(?m)^>[ \t]?`)
)

// Strip 按固定顺序删除 markdown 语法并 trim 首尾空白
//
// 围栏代码块整体删除（代码不适合读入纯文本预览），行内语法解包为
// 内部文本，标题/列表/引用只去掉行前缀。
func Strip(text string) string {
	text = fencedRe.ReplaceAllString(text, "")
	text = inlineCodeRe.ReplaceAllString(text, "$1")

	text = boldItalicRe.ReplaceAllString(text, "$1")
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = boldAltRe.ReplaceAllString(text, "$1")
	text = italicAltRe.ReplaceAllString(text, "$1")

	text = linkRe.ReplaceAllString(text, "$1")

	text = headingPrefixRe.ReplaceAllString(text, "")
	text = orderedPrefixRe.ReplaceAllString(text, "")
	text = unorderedPrefixRe.ReplaceAllString(text, "")
	text = quotePrefixRe.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}
