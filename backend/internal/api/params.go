package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "gourmet-graph/backend/pkg/errors"
)

// queryInt reads an integer query parameter, falling back to def when absent
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationFailed(name, "must be an integer")
	}
	return n, nil
}

// requiredQueryInt reads an integer query parameter that must be present
func requiredQueryInt(c *gin.Context, name string) (int, error) {
	if strings.TrimSpace(c.Query(name)) == "" {
		return 0, apperrors.NewValidationFailed(name, "is required")
	}
	return queryInt(c, name, 0)
}

// queryList accepts both repeated parameters and comma separated values
func queryList(c *gin.Context, name string) []string {
	out := make([]string, 0)
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
