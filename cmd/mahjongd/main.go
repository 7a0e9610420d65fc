// mahjongd - HTTP preview server for mahjong notation rendering.
//
// Renders hand blocks and markdown documents on demand so notation and
// styling can be iterated on without rebuilding a site.
package main

import (
	"bytes"
	"flag"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/Neumenon/mahjong/mahjong"
	"github.com/Neumenon/mahjong/markdown"
)

type renderRequest struct {
	Content        string `json:"content" binding:"required"`
	Theme          string `json:"theme"`
	ClosedKanStyle string `json:"closed_kan_style"`
}

type markdownRequest struct {
	Markdown       string `json:"markdown" binding:"required"`
	Theme          string `json:"theme"`
	ClosedKanStyle string `json:"closed_kan_style"`
}

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/render", handleRender)
		api.POST("/markdown", handleMarkdown)
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	logger.Info("mahjongd listening", zap.String("addr", *addr))
	if err := r.Run(*addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func handleRender(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hand, opts, notation, err := mahjong.BuildHand(req.Content, mahjong.NewParser())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"html":  mahjong.ErrorHTML(err.Error()),
		})
		return
	}

	renderer := newRenderer(req.Theme, req.ClosedKanStyle)
	c.JSON(http.StatusOK, gin.H{"html": renderer.Render(hand, opts.Title, notation)})
}

func handleMarkdown(c *gin.Context) {
	var req markdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	md := goldmark.New(goldmark.WithExtensions(
		markdown.New(
			markdown.WithTheme(themeOrDefault(req.Theme)),
			markdown.WithClosedKanStyle(kanStyleOrDefault(req.ClosedKanStyle)),
		),
	))

	var buf bytes.Buffer
	if err := md.Convert([]byte(req.Markdown), &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": buf.String()})
}

func newRenderer(theme, kanStyle string) *mahjong.Renderer {
	return mahjong.NewRenderer(
		mahjong.WithTheme(themeOrDefault(theme)),
		mahjong.WithClosedKanStyle(kanStyleOrDefault(kanStyle)),
	)
}

func themeOrDefault(s string) mahjong.Theme {
	switch mahjong.Theme(s) {
	case mahjong.ThemeLight, mahjong.ThemeDark, mahjong.ThemeAuto:
		return mahjong.Theme(s)
	}
	return mahjong.ThemeAuto
}

func kanStyleOrDefault(s string) mahjong.KanStyle {
	switch mahjong.KanStyle(s) {
	case mahjong.KanStyleOuter, mahjong.KanStyleInner:
		return mahjong.KanStyle(s)
	}
	return mahjong.KanStyleOuter
}
