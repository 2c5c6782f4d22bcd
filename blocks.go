package chatmd

import (
	"github.com/jianghao-zhang/chatmd/internal/types"
)

// 导出类型别名
type Block = types.Block
type BlockKind = types.BlockKind

const (
	BlockParagraph = types.BlockParagraph
	BlockHeading   = types.BlockHeading
	BlockRule      = types.BlockRule
	BlockQuote     = types.BlockQuote
	BlockTable     = types.BlockTable
	BlockList      = types.BlockList
	BlockCode      = types.BlockCode
)

// SplitBlocks 把渲染好的块贪心打包为不超过 maxUnits 个 UTF-16 code units 的分组
//
// 供把长回复分成多个气泡的宿主使用。永远不在块内部拆分：
// 单个块超出预算时独占一组。maxUnits <= 0 时返回单组。
func SplitBlocks(blocks []Block, maxUnits int) [][]Block {
	if len(blocks) == 0 {
		return nil
	}
	if maxUnits <= 0 {
		return [][]Block{blocks}
	}

	var groups [][]Block
	var current []Block
	used := 0

	for _, b := range blocks {
		cost := UTF16Len(b.HTML)
		if len(current) > 0 && used+cost > maxUnits {
			groups = append(groups, current)
			current = nil
			used = 0
		}
		current = append(current, b)
		used += cost
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
