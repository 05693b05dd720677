package group

import (
	"houseprojects/bizerror"
	"houseprojects/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathGroups = "/groups"
)

func RegisterGroupsRestAPI(r gin.IRouter, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathGroups, middleWares...)
	g.GET("", handleQueryGroups)
	g.POST("", handleCreateGroup)
	g.PUT("/:id", handleUpdateGroup)
	g.DELETE("/:id", handleDeleteGroup)
	g.POST("/:id/subgroups", handleAddSubgroup)
	g.DELETE("/:id/subgroups/:subgroupId", handleDeleteSubgroup)
}

func handleQueryGroups(c *gin.Context) {
	groups, err := QueryGroupsFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, groups)
}

func handleCreateGroup(c *gin.Context) {
	creation := domain.GroupCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	g, err := CreateGroupFunc(creation)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, g)
}

func handleUpdateGroup(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	updating := domain.GroupUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	g, err := UpdateGroupFunc(id, updating)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, g)
}

func handleDeleteGroup(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	if err := DeleteGroupFunc(id); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, domain.Deleted("Group"))
}

func handleAddSubgroup(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	creation := domain.SubgroupCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	g, err := AddSubgroupFunc(id, creation)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, g)
}

func handleDeleteSubgroup(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	subgroupId := domain.MustParamID(c, "subgroupId")
	g, err := DeleteSubgroupFunc(id, subgroupId)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, g)
}
