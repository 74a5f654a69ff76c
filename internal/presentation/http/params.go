package httppresentation

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		writeBadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		writeBadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		writeBadRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}
