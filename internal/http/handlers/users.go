package handlers

import (
	"strings"

	"innstay/internal/domain/models"
	"innstay/internal/repositories"

	"github.com/gin-gonic/gin"
)

func NewUserAdmin(svc Resource[models.PublicUser, models.UserInput, repositories.UserFilter]) CRUDHandler[models.PublicUser, models.UserInput, repositories.UserFilter] {
	return CRUDHandler[models.PublicUser, models.UserInput, repositories.UserFilter]{
		Svc:      svc,
		Singular: "user",
		Plural:   "users",
		Label:    "User",
		Filter: func(c *gin.Context) (repositories.UserFilter, bool) {
			limit, ok := queryUint(c, "limit")
			return repositories.UserFilter{
				Role:  strings.ToLower(strings.TrimSpace(c.Query("role"))),
				Query: strings.TrimSpace(c.Query("q")),
				Limit: limit,
			}, ok
		},
	}
}
