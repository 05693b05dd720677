package servehttp

import (
	"houseprojects/analytics"
	"houseprojects/bizerror"
	"houseprojects/common"
	"houseprojects/display"
	"houseprojects/domain/group"
	"houseprojects/domain/person"
	"houseprojects/domain/project"
	"houseprojects/event"
	"houseprojects/infra/tracing"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewEngine builds the gin engine with every API under basePath and subscribes hub to change events.
func NewEngine(basePath string, hub *display.Hub) *gin.Engine {
	engine := gin.Default()
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, common.ServiceName)
	})

	RegisterRoutes(engine.Group(basePath), hub)
	event.EventHandlers = append(event.EventHandlers, hub.HandleEvent)
	return engine
}

func RegisterRoutes(r gin.IRouter, hub *display.Hub) {
	middleWares := []gin.HandlerFunc{tracing.TracingIngress(), bizerror.ErrorHandling()}

	project.RegisterProjectsRestAPI(r, middleWares...)
	group.RegisterGroupsRestAPI(r, middleWares...)
	person.RegisterNamesRestAPI(r, middleWares...)
	analytics.RegisterAnalyticsRestAPI(r, middleWares...)
	display.RegisterDisplayRestAPI(r, hub, middleWares...)
}
