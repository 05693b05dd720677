package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	PathAnalytics = "/analytics"
)

func RegisterAnalyticsRestAPI(r gin.IRouter, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathAnalytics, middleWares...)
	g.GET("/overview", handleQueryOverview)
	g.GET("/trends", handleQueryTrends)
}

func handleQueryOverview(c *gin.Context) {
	o, err := QueryOverviewFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, o)
}

func handleQueryTrends(c *gin.Context) {
	t, err := QueryTrendsFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, t)
}
