package types

// BlockKind 表示渲染输出中一个块的类型
type BlockKind int

const (
	// BlockParagraph 段落
	BlockParagraph BlockKind = iota
	// BlockHeading 标题
	BlockHeading
	// BlockRule 水平分割线
	BlockRule
	// BlockQuote 引用块
	BlockQuote
	// BlockTable 表格
	BlockTable
	// BlockList 有序或无序列表
	BlockList
	// BlockCode 围栏代码块
	BlockCode
)

// String returns the string representation of BlockKind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockRule:
		return "rule"
	case BlockQuote:
		return "quote"
	case BlockTable:
		return "table"
	case BlockList:
		return "list"
	case BlockCode:
		return "code"
	default:
		return "unknown"
	}
}

// Block 表示渲染输出中的一个结构单元
//
// HTML 在块生成后不可变；块按源文本中触发行的顺序产生，
// 生成后不再重排或合并。
type Block struct {
	Kind BlockKind
	HTML string
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// LinkTarget 链接的 target 属性
	LinkTarget string
	// LinkRel 链接的 rel 属性
	LinkRel string
	// CodeClassPrefix 代码块 <pre> 标签上语言 class 的前缀
	CodeClassPrefix string
	// BreakTag 段落和引用内部换行使用的标签
	BreakTag string
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		LinkTarget:      "_blank",
		LinkRel:         "noopener",
		CodeClassPrefix: "lang-",
		BreakTag:        "<br>",
	}
}
