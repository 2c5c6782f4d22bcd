package chatmd

import (
	"strings"
	"testing"
)

// countOccurrences 统计子串出现次数
func countOccurrences(s, sub string) int {
	return strings.Count(s, sub)
}

// TestTable_HeaderAndBody 测试两列表头加一行数据的表格结构
func TestTable_HeaderAndBody(t *testing.T) {
	got := Render("| a | b |\n| --- | --- |\n| 1 | 2 |")
	if countOccurrences(got, "<th>") != 2 {
		t.Errorf("Render() = %q, want 2 <th> cells", got)
	}
	if countOccurrences(got, "<td>") != 2 {
		t.Errorf("Render() = %q, want 2 <td> cells", got)
	}
	if countOccurrences(got, "<thead>") != 1 || countOccurrences(got, "<tbody>") != 1 {
		t.Errorf("Render() = %q, want one thead and one tbody", got)
	}
	if !strings.Contains(got, "<th>a</th><th>b</th>") {
		t.Errorf("Render() = %q, header cells should be trimmed", got)
	}
	if !strings.Contains(got, "<td>1</td><td>2</td>") {
		t.Errorf("Render() = %q, body cells should be trimmed", got)
	}
}

// TestTable_NoBody 测试只有表头和分隔行时省略 tbody
func TestTable_NoBody(t *testing.T) {
	got := Render("| a | b |\n| --- | --- |")
	if strings.Contains(got, "<tbody>") {
		t.Errorf("Render() = %q, tbody should be omitted without body rows", got)
	}
	if !strings.Contains(got, "<thead>") {
		t.Errorf("Render() = %q, want thead", got)
	}
}

// TestTable_ColumnMapping 测试数据行按表头列数对齐
func TestTable_ColumnMapping(t *testing.T) {
	got := Render("| a | b |\n| --- | --- |\n| only |")
	if countOccurrences(got, "<td>") != 2 {
		t.Errorf("Render() = %q, short row should pad to 2 columns", got)
	}
	if !strings.Contains(got, "<td>only</td><td></td>") {
		t.Errorf("Render() = %q, missing cell should be empty", got)
	}
}

// TestTable_DividerRequired 测试没有分隔行时管道行按段落处理
func TestTable_DividerRequired(t *testing.T) {
	got := Render("a | b\nplain line")
	if strings.Contains(got, "<table>") {
		t.Errorf("Render() = %q, no divider means no table", got)
	}
	if !strings.Contains(got, "<p>") {
		t.Errorf("Render() = %q, want paragraph fallback", got)
	}
}

// TestList_UnorderedGrouping 测试连续无序项合并为一个 ul
func TestList_UnorderedGrouping(t *testing.T) {
	got := Render("- one\n- two\n- three")
	want := "<ul><li>one</li><li>two</li><li>three</li></ul>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// TestList_Ordered 测试有序列表
func TestList_Ordered(t *testing.T) {
	got := Render("1. first\n2. second")
	want := "<ol><li>first</li><li>second</li></ol>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// TestList_MarkerClassSwitch 测试标记类切换开启新列表块
func TestList_MarkerClassSwitch(t *testing.T) {
	got := Render("- one\n- two\n1. three")
	want := "<ul><li>one</li><li>two</li></ul>\n<ol><li>three</li></ol>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// TestList_StarMarker 测试星号作为无序标记
func TestList_StarMarker(t *testing.T) {
	got := Render("* one\n* two")
	want := "<ul><li>one</li><li>two</li></ul>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// TestList_BlankLineTerminates 测试空行结束列表
func TestList_BlankLineTerminates(t *testing.T) {
	got := Render("- one\n\n- two")
	if countOccurrences(got, "<ul>") != 2 {
		t.Errorf("Render() = %q, blank line should split into 2 lists", got)
	}
}

// TestRenderBlocks_Kinds 测试块类型与顺序
func TestRenderBlocks_Kinds(t *testing.T) {
	md := "# T\n\npara\n\n- a\n\n> q\n\n---\n\n| h |\n| - |\n\n```\nc\n```"
	blocks := RenderBlocks(md)
	want := []BlockKind{BlockHeading, BlockParagraph, BlockList, BlockQuote, BlockRule, BlockTable, BlockCode}
	if len(blocks) != len(want) {
		t.Fatalf("RenderBlocks() returned %d blocks, want %d: %+v", len(blocks), len(want), blocks)
	}
	for i, b := range blocks {
		if b.Kind != want[i] {
			t.Errorf("block %d kind = %s, want %s", i, b.Kind, want[i])
		}
		if b.HTML == "" {
			t.Errorf("block %d has empty HTML", i)
		}
	}
}

// TestRenderBlocks_CodeResolved 测试返回的代码块已还原占位符
func TestRenderBlocks_CodeResolved(t *testing.T) {
	blocks := RenderBlocks("```\nx\n```")
	if len(blocks) != 1 {
		t.Fatalf("RenderBlocks() returned %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != BlockCode {
		t.Errorf("block kind = %s, want code", blocks[0].Kind)
	}
	if strings.Contains(blocks[0].HTML, "@@BLOCK") {
		t.Errorf("block HTML = %q, placeholder should be resolved", blocks[0].HTML)
	}
}

// TestSplitBlocks_Packing 测试按 UTF-16 预算贪心打包
func TestSplitBlocks_Packing(t *testing.T) {
	blocks := []Block{
		{Kind: BlockParagraph, HTML: strings.Repeat("a", 40)},
		{Kind: BlockParagraph, HTML: strings.Repeat("b", 40)},
		{Kind: BlockParagraph, HTML: strings.Repeat("c", 40)},
	}
	groups := SplitBlocks(blocks, 100)
	if len(groups) != 2 {
		t.Fatalf("SplitBlocks() = %d groups, want 2", len(groups))
	}
	if len(groups[0]) != 2 || len(groups[1]) != 1 {
		t.Errorf("SplitBlocks() group sizes = %d/%d, want 2/1", len(groups[0]), len(groups[1]))
	}
}

// TestSplitBlocks_OversizeBlock 测试超预算的单块独占一组且不被拆分
func TestSplitBlocks_OversizeBlock(t *testing.T) {
	big := Block{Kind: BlockCode, HTML: strings.Repeat("x", 500)}
	small := Block{Kind: BlockParagraph, HTML: "small"}
	groups := SplitBlocks([]Block{small, big, small}, 100)
	if len(groups) != 3 {
		t.Fatalf("SplitBlocks() = %d groups, want 3", len(groups))
	}
	if len(groups[1]) != 1 || groups[1][0].HTML != big.HTML {
		t.Errorf("oversize block should be alone in its group")
	}
}

// TestSplitBlocks_NoBudget 测试无预算时返回单组
func TestSplitBlocks_NoBudget(t *testing.T) {
	blocks := []Block{{HTML: "a"}, {HTML: "b"}}
	groups := SplitBlocks(blocks, 0)
	if len(groups) != 1 || len(groups[0]) != 2 {
		t.Errorf("SplitBlocks(maxUnits=0) should return one group")
	}
}
