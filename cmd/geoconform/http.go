package main

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akuznet/geoconform/pkg/log"
)

//go:embed templates
var templates embed.FS

func (app *App) RunHTTP(addr string) {
	engine := html.NewFileSystem(http.FS(templates), ".html")

	srv := fiber.New(fiber.Config{EnablePrintRoutes: false, DisableStartupMessage: true, Views: engine})

	srv.Use(log.NewFiberLogger(&log.LoggerConfig{Name: "http", DoMetrics: true}))

	srv.Get("/", getIndexHandler(app))
	srv.Get("/api/results", getResultsHandler(app))
	srv.Get("/metrics", getMetricsHandler())

	app.logger.Info("listening on " + addr)

	if err := srv.Listen(addr); err != nil {
		app.logger.Error("http server error: " + err.Error())
	}
}

func getIndexHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.Render("templates/index", fiber.Map{
			"summary": app.Summary(),
		})
	}
}

func getResultsHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sum := app.Summary()
		if sum == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "no run yet")
		}

		return ctx.JSON(sum)
	}
}

func getMetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{DisableCompression: true},
	))
}
