package handler

import (
	"strconv"

	"social_graph/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID 解析路径中的 UUID 参数，失败时直接写 400
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt 读取非负整数查询参数
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		utils.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}
