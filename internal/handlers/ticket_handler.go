package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/dmaulana/cinetix/internal/helpers"
	"github.com/dmaulana/cinetix/internal/middleware"
	"github.com/dmaulana/cinetix/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TicketRequest struct {
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func CreateTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Token not found")
		return
	}

	repo := middleware.GetTicketRepository(c)
	if repo == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	ticket := models.Ticket{
		Title:       req.Title,
		Genre:       req.Genre,
		Description: req.Description,
		Price:       req.Price,
		UserID:      userID.(uint),
	}

	if err := repo.Create(&ticket); err != nil {
		log.Printf("Failed to create ticket: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func ListTickets(c *gin.Context) {
	repo := middleware.GetTicketRepository(c)
	if repo == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	tickets, err := repo.FindAll()
	if err != nil {
		log.Printf("Failed to list tickets: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func GetTicket(c *gin.Context) {
	ticketID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	repo := middleware.GetTicketRepository(c)
	if repo == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	ticket, err := repo.FindByID(uint(ticketID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found")
			return
		}
		log.Printf("Failed to retrieve ticket %d: %v", ticketID, err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// UpdateTicket surfaces a missing identifier as a store error and a
// generic 500, not a 404.
func UpdateTicket(c *gin.Context) {
	ticketID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	repo := middleware.GetTicketRepository(c)
	if repo == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	ticket, err := repo.FindByID(uint(ticketID))
	if err != nil {
		log.Printf("Failed to update ticket %d: %v", ticketID, err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	ticket.Title = req.Title
	ticket.Genre = req.Genre
	ticket.Description = req.Description
	ticket.Price = req.Price

	if err := repo.Update(ticket); err != nil {
		log.Printf("Failed to update ticket %d: %v", ticketID, err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func DeleteTicket(c *gin.Context) {
	ticketID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	repo := middleware.GetTicketRepository(c)
	if repo == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := repo.Delete(uint(ticketID)); err != nil {
		log.Printf("Failed to delete ticket %d: %v", ticketID, err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket deleted successfully",
	})
}
