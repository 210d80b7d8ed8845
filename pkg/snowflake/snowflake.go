package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 全局递增 ID，用于对象存储的文件名
func GenID() int64 {
	return node.Generate().Int64()
}

func GenString() string {
	return node.Generate().String()
}
