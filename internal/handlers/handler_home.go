package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func getHome(c *gin.Context) {
	c.String(http.StatusOK, "Server is running...")
}
