package display

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	PathDisplay = "/display"
)

type RefreshResult struct {
	Delivered int `json:"delivered"`
}

func RegisterDisplayRestAPI(r gin.IRouter, hub *Hub, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathDisplay, middleWares...)
	g.GET("/ws", func(c *gin.Context) {
		hub.Serve(c.Writer, c.Request)
	})
	g.GET("/snapshot", handleSnapshot)
	g.GET("/board", handleBoard)
	g.POST("/refresh", func(c *gin.Context) {
		n, err := hub.Broadcast()
		if err != nil {
			panic(err)
		}
		c.JSON(http.StatusOK, &RefreshResult{Delivered: n})
	})
}

func handleSnapshot(c *gin.Context) {
	payload, err := LoadPayloadFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, payload)
}

func handleBoard(c *gin.Context) {
	payload, err := LoadPayloadFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, BuildBoard(payload.Projects, payload.Names, time.Now()))
}
