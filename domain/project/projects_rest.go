package project

import (
	"houseprojects/bizerror"
	"houseprojects/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathProjects = "/projects"
)

func RegisterProjectsRestAPI(r gin.IRouter, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathProjects, middleWares...)
	g.GET("", handleQueryProjects)
	g.POST("", handleCreateProject)
	g.GET("/:id", handleDetailProject)
	g.PUT("/:id", handleUpdateProject)
	g.DELETE("/:id", handleDeleteProject)
	g.PUT("/:id/complete", handleCompleteProject)
	g.PUT("/:id/reopen", handleReopenProject)
	g.PUT("/:id/progress", handleUpdateProgress)
	g.POST("/:id/notes", handleAddNote)
}

func handleQueryProjects(c *gin.Context) {
	projects, err := QueryProjectsFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, projects)
}

func handleDetailProject(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	p, err := DetailProjectFunc(id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, p)
}

func handleCreateProject(c *gin.Context) {
	creation := domain.ProjectCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	p, err := CreateProjectFunc(creation)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, p)
}

func handleUpdateProject(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	updating := domain.ProjectUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	p, err := UpdateProjectFunc(id, updating)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, p)
}

func handleDeleteProject(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	if err := DeleteProjectFunc(id); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, domain.Deleted("Project"))
}

func handleCompleteProject(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	p, err := CompleteProjectFunc(id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, p)
}

func handleReopenProject(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	p, err := ReopenProjectFunc(id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, p)
}

func handleUpdateProgress(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	updating := domain.ProgressUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	p, err := UpdateProgressFunc(id, updating)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, p)
}

func handleAddNote(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	creation := domain.NoteCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	p, err := AddNoteFunc(id, creation)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, p)
}
