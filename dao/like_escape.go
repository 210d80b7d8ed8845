package dao

import "strings"

// 使用 ! 作为 LIKE 转义符，mysql 与 sqlite 写法一致
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// escapeLike 转义 LIKE 通配符，关键字统一转小写
func escapeLike(s string) string {
	return likeEscaper.Replace(strings.ToLower(s))
}
