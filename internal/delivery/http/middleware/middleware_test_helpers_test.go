package middleware

import (
	"bytes"
	"log/slog"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func newContext(e *echo.Echo, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}
