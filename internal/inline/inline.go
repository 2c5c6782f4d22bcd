// Package inline 对已转义文本做行内样式替换
//
// 固定顺序的替换序列：行内代码 → 标题 → 强调 → 链接。
// 顺序不可调换：代码先于标题可以让 `# x` 进入 <code>，
// 强调先于链接保证生成的 target="_blank" 属性不会被下划线
// 规则误判为斜体。
package inline

import (
	"regexp"

	"github.com/jianghao-zhang/chatmd/internal/types"
)

var (
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")

	// Longest hash prefix first so ## never half-matches ###.
	// Note the tier shift: one hash renders as <h2>, the host owns <h1>.
	heading3Re = regexp.MustCompile(`(?m)^### (.+)$`)
	heading2Re = regexp.MustCompile(`(?m)^## (.+)$`)
	heading1Re = regexp.MustCompile(`(?m)^# (.+)$`)

	// Most specific emphasis first; all non-greedy, single-line.
	boldItalicRe = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)
	boldAltRe    = regexp.MustCompile(`__(.+?)__`)
	italicAltRe  = regexp.MustCompile(`_(.+?)_`)

	linkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
)

// Apply 按固定顺序对整段文本执行全部行内替换
func Apply(text string, cfg *types.RenderConfig) string {
	text = inlineCodeRe.ReplaceAllString(text, "<code>$1</code>")

	text = heading3Re.ReplaceAllString(text, "<h4>$1</h4>")
	text = heading2Re.ReplaceAllString(text, "<h3>$1</h3>")
	text = heading1Re.ReplaceAllString(text, "<h2>$1</h2>")

	text = boldItalicRe.ReplaceAllString(text, "<strong><em>$1</em></strong>")
	text = boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicRe.ReplaceAllString(text, "<em>$1</em>")
	text = boldAltRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicAltRe.ReplaceAllString(text, "<em>$1</em>")

	link := `<a href="$2" target="` + cfg.LinkTarget + `" rel="` + cfg.LinkRel + `">$1</a>`
	text = linkRe.ReplaceAllString(text, link)

	return text
}
