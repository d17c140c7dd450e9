package middleware

import (
	"github.com/dmaulana/cinetix/internal/repository"
	"github.com/gin-gonic/gin"
)

func RepositoryMiddleware(tickets repository.TicketRepository, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("ticket_repository", tickets)
		c.Set("user_repository", users)
		c.Next()
	}
}

func GetTicketRepository(c *gin.Context) repository.TicketRepository {
	repo, exists := c.Get("ticket_repository")
	if !exists {
		return nil
	}
	tickets, ok := repo.(repository.TicketRepository)
	if !ok {
		return nil
	}
	return tickets
}

func GetUserRepository(c *gin.Context) repository.UserRepository {
	repo, exists := c.Get("user_repository")
	if !exists {
		return nil
	}
	users, ok := repo.(repository.UserRepository)
	if !ok {
		return nil
	}
	return users
}
