// internal/handler/log.go

package handler

import (
	"errors"
	"net/http"

	"github.com/ajez/logtide/internal/config"
	"github.com/ajez/logtide/internal/logger"
	"github.com/ajez/logtide/internal/rules"
	"github.com/gin-gonic/gin"
)

// LogRequestBody defines the structure for the /log endpoint request body
type LogRequestBody struct {
	Logger  string `json:"logger" binding:"required"`
	Level   string `json:"level" binding:"required"`
	Message string `json:"message" binding:"required"`
	Error   string `json:"error"` // Optional, only meaningful for error/fatal
}

// LogHandlerDependencies holds dependencies for the log handler
type LogHandlerDependencies struct {
	Resolver  *rules.Resolver
	Config    *config.Config
	AppLogger *logger.AppLogger
}

// NewLogHandler creates a Gin handler function for the /log endpoint.
// Accepted messages are answered with 202 before any sink has processed
// them; submission into the pipeline is fire-and-forget.
func NewLogHandler(deps LogHandlerDependencies) gin.HandlerFunc {
	if deps.Resolver == nil {
		panic("LogHandler requires a non-nil Resolver")
	}
	if deps.Config == nil {
		panic("LogHandler requires a non-nil Config")
	}
	if deps.AppLogger == nil {
		panic("LogHandler requires a non-nil AppLogger")
	}

	return func(ctx *gin.Context) {
		// Limit request body size BEFORE parsing JSON
		if deps.Config.Server.RequestLimits.MaxBodySize > 0 {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, int64(deps.Config.Server.RequestLimits.MaxBodySize))
		}

		var reqBody LogRequestBody
		if err := ctx.ShouldBindJSON(&reqBody); err != nil {
			deps.AppLogger.Warn("Log Handler: JSON binding error from IP %s: %v", ctx.ClientIP(), err)
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		level, err := logger.ParseLevel(reqBody.Level)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		msg := buildMessage(level, reqBody)

		lgr, err := deps.Resolver.Resolve(reqBody.Logger)
		if err != nil {
			deps.AppLogger.Error("Log Handler: failed to resolve logger '%s': %v", reqBody.Logger, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "logger resolution failed"})
			return
		}

		lgr.Submit(msg)
		ctx.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
	}
}

// buildMessage maps the request onto a message variant. A failure string is
// only carried by ERROR and FATAL, matching the message model.
func buildMessage(level logger.Level, reqBody LogRequestBody) logger.Message {
	switch level {
	case logger.DEBUG:
		return logger.NewDebug(reqBody.Message)
	case logger.INFO:
		return logger.NewInfo(reqBody.Message)
	case logger.WARN:
		return logger.NewWarn(reqBody.Message)
	case logger.ERROR:
		return logger.NewError(reqBody.Message, failureFrom(reqBody.Error))
	case logger.FATAL:
		return logger.NewFatal(reqBody.Message, failureFrom(reqBody.Error))
	default:
		return logger.NewInfo(reqBody.Message)
	}
}

func failureFrom(text string) error {
	if text == "" {
		return nil
	}
	return errors.New(text)
}
