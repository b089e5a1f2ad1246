package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resource is the admin CRUD surface shared by hotels, users, bookings and reviews.
type Resource[V, In, F any] interface {
	List(ctx context.Context, f F) ([]V, error)
	Get(ctx context.Context, id int64) (V, error)
	Create(ctx context.Context, in In) (V, error)
	Update(ctx context.Context, id int64, in In) (V, error)
	Delete(ctx context.Context, id int64) error
}

// CRUDHandler serves one admin resource. Filter reads list filters from the
// query string and reports false after it has already responded.
type CRUDHandler[V, In, F any] struct {
	Svc      Resource[V, In, F]
	Singular string
	Plural   string
	Label    string
	Filter   func(c *gin.Context) (F, bool)
}

func (h CRUDHandler[V, In, F]) List(c *gin.Context) {
	var f F
	if h.Filter != nil {
		var ok bool
		if f, ok = h.Filter(c); !ok {
			return
		}
	}
	items, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "count": len(items), h.Plural: items})
}

func (h CRUDHandler[V, In, F]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", h.Singular: item})
}

func (h CRUDHandler[V, In, F]) Create(c *gin.Context) {
	var in In
	if !BindJSONOrError(c, &in) {
		return
	}
	item, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", h.Singular: item})
}

func (h CRUDHandler[V, In, F]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in In
	if !BindJSONOrError(c, &in) {
		return
	}
	item, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", h.Singular: item})
}

// Delete succeeds whether or not the row existed.
func (h CRUDHandler[V, In, F]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": h.Label + " deleted"})
}

// Mount registers the five routes on g.
func (h CRUDHandler[V, In, F]) Mount(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
