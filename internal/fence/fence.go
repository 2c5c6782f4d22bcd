// Package fence 提取围栏代码块并用占位符保护其内容
//
// 渲染管道的第一阶段：在任何转义或行内替换发生之前，把 ```...```
// 区域整体取出、单独转义并替换为 @@BLOCK<i>@@ 占位符，
// 重组阶段再按下标换回渲染好的 <pre><code> 片段。
// 未闭合的围栏不匹配，原样流入后续阶段。
package fence

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jianghao-zhang/chatmd/internal/types"
	"github.com/jianghao-zhang/chatmd/internal/util"
)

var (
	// fenceRe matches ``` + optional bare language word + newline + body + ```.
	// The body is non-greedy so adjacent fences stay separate.
	fenceRe = regexp.MustCompile("(?s)```([A-Za-z0-9._+#-]*)[ \t]*\n(.*?)```")

	// tokenRe matches a placeholder produced by Extract. The @@ frame cannot
	// arise from escaped text, so tokens never collide with user content.
	tokenRe = regexp.MustCompile(`@@BLOCK(\d+)@@`)

	// lineTokenRe matches a line that is exactly one placeholder.
	lineTokenRe = regexp.MustCompile(`^@@BLOCK\d+@@$`)
)

// Store holds rendered code blocks in discovery order, one per placeholder.
type Store struct {
	blocks []string
}

// Len returns the number of extracted code blocks.
func (s *Store) Len() int {
	return len(s.blocks)
}

// Extract 扫描原始文本中的围栏代码块
//
// 每个匹配的围栏：正文 trim 后单独 HTML 转义，包进 <pre>/<code>
// （有语言标识时 <pre> 带 class），存入 Store；源文本中的匹配区域
// 替换为两侧带换行的占位符，保证分段阶段把它当作独立的一行。
func Extract(text string, cfg *types.RenderConfig) (string, *Store) {
	store := &Store{}
	replaced := fenceRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := fenceRe.FindStringSubmatch(match)
		lang := util.NormalizeLanguage(sub[1])
		body := util.EscapeHTML(strings.TrimSpace(sub[2]))

		var b strings.Builder
		if lang != "" {
			b.WriteString(`<pre class="`)
			b.WriteString(cfg.CodeClassPrefix)
			b.WriteString(lang)
			b.WriteString(`">`)
		} else {
			b.WriteString("<pre>")
		}
		b.WriteString("<code>")
		b.WriteString(body)
		b.WriteString("</code></pre>")

		index := len(store.blocks)
		store.blocks = append(store.blocks, b.String())
		return "\n@@BLOCK" + strconv.Itoa(index) + "@@\n"
	})
	return replaced, store
}

// Restore replaces every placeholder token with its stored code-block HTML.
// A token with no matching stored block is removed rather than left literal.
func (s *Store) Restore(html string) string {
	return tokenRe.ReplaceAllStringFunc(html, func(match string) string {
		index, err := strconv.Atoi(tokenRe.FindStringSubmatch(match)[1])
		if err != nil || index < 0 || index >= len(s.blocks) {
			return ""
		}
		return s.blocks[index]
	})
}

// IsTokenLine reports whether line consists of exactly one placeholder.
func IsTokenLine(line string) bool {
	return lineTokenRe.MatchString(line)
}
