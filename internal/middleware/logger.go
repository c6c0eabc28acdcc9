package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Logger returns the HTTP access-log middleware. The request id set by
// RequestID is included so a log line can be tied back to a response.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:request_id}\n",
		TimeFormat: "15:04:05",
	})
}
