package chatmd

import (
	"github.com/jianghao-zhang/chatmd/internal/plain"
)

// Strip 把聊天 markdown 降解为纯文本
//
// 与 Render() 完全独立的一趟删除序列：删除围栏代码块，解包行内
// 代码/强调/链接，去掉标题、列表和引用的行前缀，最后 trim 首尾空白。
// 不做 HTML 转义；输出面向纯文本场景（截断预览、历史序列化），
// 不可直接嵌入 HTML。
func Strip(markdown string) string {
	return plain.Strip(markdown)
}
