// Package admin holds the administration handlers. All routes in this
// package sit behind the system admin middleware.
package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"deskhub/internal/shared/errors"
)

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + param)
	}
	return uint(id), nil
}
