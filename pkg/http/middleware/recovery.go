package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	applogger "LendRisk/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover returns recovery middleware that converts panics into 500 responses.
func Recover(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					l.Error("panic recovered",
						applogger.Error(err),
						applogger.String("path", c.Request().URL.Path),
						applogger.String("stack", string(debug.Stack())),
					)
					_ = c.JSON(http.StatusInternalServerError, echo.Map{
						"error": "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}
