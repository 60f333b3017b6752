package main

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp_WritesAccessLog(t *testing.T) {
	var access bytes.Buffer
	app := newApp(zap.NewNop(), &access)
	app.Get("/api/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest("GET", "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, access.String(), "/api/ping")
	assert.Contains(t, access.String(), "200")
}

func TestNewApp_RecoversPanics(t *testing.T) {
	var access bytes.Buffer
	app := newApp(zap.NewNop(), &access)
	app.Get("/api/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/api/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
