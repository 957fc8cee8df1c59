package http

import (
	"github.com/gin-gonic/gin"

	"prod-tracker/internal/prod"
	"prod-tracker/pkg/log"
)

// Handler is the public interface for the batch form HTTP delivery layer.
type Handler interface {
	CreateForm(c *gin.Context)
	EditForm(c *gin.Context)
	Detail(c *gin.Context)
	Open(c *gin.Context)
	Close(c *gin.Context)
	EditSelection(c *gin.Context)
	EditNumber(c *gin.Context)
	ToggleStatus(c *gin.Context)
	Submit(c *gin.Context)
	Options(c *gin.Context)
	Dept(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc prod.UseCase
}

// New creates a new HTTP handler for the batch form domain.
func New(l log.Logger, uc prod.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
