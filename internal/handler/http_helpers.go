package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"ok": false, "error": message})
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// parseIntForm coerces a submitted numeric field, falling back to zero
// on parse failure.
func parseIntForm(c *gin.Context, key string) int {
	raw := strings.TrimSpace(c.PostForm(key))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func formChecked(c *gin.Context, key string) bool {
	return c.PostForm(key) == "on"
}

// redirectSaved 带着一次性 saved 标记跳回后台页面，
// 前端据此显示“已保存”提示后再从地址栏清除标记。
func redirectSaved(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, path+"?saved="+uuid.NewString())
}
