// internal/handler/version_handler.go

package handler

import (
	"net/http"

	"github.com/ajez/logtide/internal/version"
	"github.com/gin-gonic/gin"
)

// VersionHandler returns version information about the running binary.
func VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"build":   version.BuildDate,
		"commit":  version.CommitHash,
	})
}
