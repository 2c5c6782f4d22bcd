package chatmd

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// The host stores chat history in a UTF-16 string environment, so length
// budgets are measured in UTF-16 code units, not Go bytes or runes.
// Characters outside the BMP (codepoint > 0xFFFF) take 2 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// Preview 生成按 UTF-16 预算截断的纯文本预览
//
// 先 Strip() 去掉 markdown 语法，超出 maxUnits 时在 rune 边界截断
// 并追加省略号。maxUnits <= 0 时返回完整纯文本。
func Preview(text string, maxUnits int) string {
	stripped := Strip(text)
	if maxUnits <= 0 || UTF16Len(stripped) <= maxUnits {
		return stripped
	}

	// Reserve one unit for the ellipsis.
	budget := maxUnits - 1
	if budget < 1 {
		budget = 1
	}

	used := 0
	end := 0
	for i, r := range stripped {
		cost := 1
		if r > 0xFFFF {
			cost = 2
		}
		if used+cost > budget {
			end = i
			break
		}
		used += cost
		end = i + len(string(r))
	}
	return stripped[:end] + "…"
}
