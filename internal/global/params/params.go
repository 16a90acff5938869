package params

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ID 解析路径参数中的正整数 id，非法值视为不存在
func ID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
