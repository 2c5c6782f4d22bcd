// Package segment 把行内变换后的文本切分为块级结构
//
// 在行序列上用单个游标做一次无回溯扫描，按固定优先级应用第一条
// 命中的规则：空行 → 代码占位符 → 分割线 → 标题 → 引用 → 表格 →
// 列表 → 段落。每一行恰好被一条规则消费一次。
package segment

import (
	"regexp"
	"strings"

	"github.com/jianghao-zhang/chatmd/internal/fence"
	"github.com/jianghao-zhang/chatmd/internal/types"
)

const quotePrefix = "&gt; "

var (
	headingLineRe   = regexp.MustCompile(`^<h[2-4]>`)
	orderedMarkerRe = regexp.MustCompile(`^\d+\. `)
	// Divider rows contain only whitespace, pipes, hyphens and colons.
	dividerRe = regexp.MustCompile(`^[\s|:-]+$`)
)

type markerClass int

const (
	markerNone markerClass = iota
	markerOrdered
	markerUnordered
)

// scanner walks the line sequence with one cursor, accumulating blocks.
type scanner struct {
	lines  []string
	pos    int
	cfg    *types.RenderConfig
	blocks []types.Block
}

// Scan 把文本按行切分为有序的块列表
func Scan(text string, cfg *types.RenderConfig) []types.Block {
	s := &scanner{lines: strings.Split(text, "\n"), cfg: cfg}
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		switch {
		case isBlank(line):
			s.pos++
		case isToken(line):
			s.emit(types.BlockCode, strings.TrimSpace(line))
			s.pos++
		case isRule(line):
			s.emit(types.BlockRule, "<hr>")
			s.pos++
		case isHeading(line):
			// Headings are never grouped with neighbors.
			s.emit(types.BlockHeading, line)
			s.pos++
		case isQuote(line):
			s.quote()
		case s.isTableHeader(s.pos):
			s.table()
		case listMarker(line) != markerNone:
			s.list()
		default:
			s.paragraph()
		}
	}
	return s.blocks
}

func (s *scanner) emit(kind types.BlockKind, html string) {
	s.blocks = append(s.blocks, types.Block{Kind: kind, HTML: html})
}

// Named predicates, one per block type, in precedence order.

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isToken(line string) bool {
	return fence.IsTokenLine(strings.TrimSpace(line))
}

func isRule(line string) bool {
	return strings.TrimSpace(line) == "---"
}

func isHeading(line string) bool {
	return headingLineRe.MatchString(line)
}

func isQuote(line string) bool {
	return strings.HasPrefix(line, quotePrefix)
}

func isDivider(line string) bool {
	return dividerRe.MatchString(line) && strings.Contains(line, "-")
}

// isTableHeader reports whether the line at i starts a table: it must
// contain a pipe and be followed by a divider row.
func (s *scanner) isTableHeader(i int) bool {
	if i+1 >= len(s.lines) {
		return false
	}
	return strings.Contains(s.lines[i], "|") && isDivider(s.lines[i+1])
}

func listMarker(line string) markerClass {
	if orderedMarkerRe.MatchString(line) {
		return markerOrdered
	}
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return markerUnordered
	}
	return markerNone
}

// startsBlock reports whether the line at i opens any non-paragraph block.
// Paragraph accumulation stops at the first such line.
func (s *scanner) startsBlock(i int) bool {
	line := s.lines[i]
	return isBlank(line) || isToken(line) || isRule(line) || isHeading(line) ||
		isQuote(line) || s.isTableHeader(i) || listMarker(line) != markerNone
}

// quote consumes contiguous "&gt; " lines into one blockquote.
func (s *scanner) quote() {
	var inner []string
	for s.pos < len(s.lines) && isQuote(s.lines[s.pos]) {
		inner = append(inner, s.lines[s.pos][len(quotePrefix):])
		s.pos++
	}
	s.emit(types.BlockQuote, "<blockquote>"+strings.Join(inner, s.cfg.BreakTag)+"</blockquote>")
}

// splitCells splits a table row on pipes, trims each cell, and discards
// the leading/trailing empty cell produced by edge pipes.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// table consumes a header row, the divider, and contiguous body rows.
// Body rows are mapped onto the header's column count.
func (s *scanner) table() {
	header := splitCells(s.lines[s.pos])
	s.pos += 2

	var rows [][]string
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		if isBlank(line) || !strings.Contains(line, "|") {
			break
		}
		cells := splitCells(line)
		row := make([]string, len(header))
		copy(row, cells)
		rows = append(rows, row)
		s.pos++
	}

	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, cell := range header {
		b.WriteString("<th>")
		b.WriteString(cell)
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead>")
	if len(rows) > 0 {
		b.WriteString("<tbody>")
		for _, row := range rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				b.WriteString("<td>")
				b.WriteString(cell)
				b.WriteString("</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody>")
	}
	b.WriteString("</table>")
	s.emit(types.BlockTable, b.String())
}

// list consumes contiguous lines of one marker class. A class change
// starts a new list block on the next rule application.
func (s *scanner) list() {
	class := listMarker(s.lines[s.pos])

	var b strings.Builder
	if class == markerOrdered {
		b.WriteString("<ol>")
	} else {
		b.WriteString("<ul>")
	}
	for s.pos < len(s.lines) && listMarker(s.lines[s.pos]) == class {
		line := s.lines[s.pos]
		var item string
		if class == markerOrdered {
			item = line[orderedMarkerRe.FindStringIndex(line)[1]:]
		} else {
			item = line[2:]
		}
		b.WriteString("<li>")
		b.WriteString(item)
		b.WriteString("</li>")
		s.pos++
	}
	if class == markerOrdered {
		b.WriteString("</ol>")
	} else {
		b.WriteString("</ul>")
	}
	s.emit(types.BlockList, b.String())
}

// paragraph consumes contiguous lines matching no block-start pattern.
func (s *scanner) paragraph() {
	var inner []string
	for s.pos < len(s.lines) && !s.startsBlock(s.pos) {
		inner = append(inner, s.lines[s.pos])
		s.pos++
	}
	s.emit(types.BlockParagraph, "<p>"+strings.Join(inner, s.cfg.BreakTag)+"</p>")
}
