package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialmedia/internal/models"
)

// AccountDirectory is the slice of AccountService the handlers need.
type AccountDirectory interface {
	CreateAccount(account models.Account) (*models.Account, error)
	LoginAccount(account models.Account) (*models.Account, error)
}

// MessageBoard is the slice of MessageService the handlers need.
type MessageBoard interface {
	AddMessage(message models.Message) (*models.Message, error)
	GetAllMessages() []models.Message
	GetMessageByID(id int) *models.Message
	DeleteMessageByID(id int) *models.Message
	PatchMessageByID(text string, id int) (*models.Message, error)
	GetAllMessagesByAccountID(accountID int) []models.Message
}

type Handler struct {
	Accounts AccountDirectory
	Messages MessageBoard
}

func NewAPIHandler(accounts AccountDirectory, messages MessageBoard) *Handler {
	return &Handler{
		Accounts: accounts,
		Messages: messages,
	}
}

// Register creates a new account. Any validation or persistence failure
// is a 400 with an empty body.
func (h *Handler) Register(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	created, err := h.Accounts.CreateAccount(account)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, created)
}

// Login checks credentials and returns the stored account on a match.
// Any mismatch is a 401 with an empty body.
func (h *Handler) Login(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}
	found, err := h.Accounts.LoginAccount(account)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *Handler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.Messages.GetAllMessages())
}

func (h *Handler) CreateMessage(c *gin.Context) {
	var message models.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	created, err := h.Messages.AddMessage(message)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, created)
}

// GetMessage returns the message, or 200 with an empty body when the id
// does not exist; absence is not an error at this boundary.
func (h *Handler) GetMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	message := h.Messages.GetMessageByID(id)
	if message == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, message)
}

// DeleteMessage removes the message and returns its pre-delete
// snapshot, or 200 with an empty body when nothing was deleted.
func (h *Handler) DeleteMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	message := h.Messages.DeleteMessageByID(id)
	if message == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, message)
}

// UpdateMessage replaces a message's text. The response body carries the
// updated snapshot, so a 200 confirms the new text is stored.
func (h *Handler) UpdateMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var message models.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	patched, err := h.Messages.PatchMessageByID(message.MessageText, id)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, patched)
}

func (h *Handler) ListAccountMessages(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("account_id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, h.Messages.GetAllMessagesByAccountID(accountID))
}
