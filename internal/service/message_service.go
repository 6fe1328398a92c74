package service

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"socialmedia/internal/models"
)

// MaxMessageLength caps message_text. The cap applies to the untrimmed
// text; trimming is used only for the blank check.
const MaxMessageLength = 255

var (
	// ErrInvalidMessage signals a message mutation that failed validation
	// or could not be persisted.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrMessageNotFound signals a patch against a message id that does
	// not exist.
	ErrMessageNotFound = errors.New("message not found")
)

type MessageRepository interface {
	InsertMessage(message models.Message) (*models.Message, error)
	GetMessageByID(id int) (*models.Message, error)
	GetAllMessages() ([]models.Message, error)
	GetMessagesByAccountID(accountID int) ([]models.Message, error)
	DeleteMessageByID(id int) (bool, error)
	UpdateMessageText(id int, text string) (bool, error)
	AuthorExists(accountID int) (bool, error)
}

// MessageCache records recently created messages. Cache failures never
// affect the outcome of the operation that triggered them.
type MessageCache interface {
	RecordMessage(id int, postedAt time.Time) error
}

type MessageService struct {
	repo  MessageRepository
	cache MessageCache
}

// NewMessageService builds a MessageService. cache may be nil, in which
// case created messages are simply not recorded.
func NewMessageService(repo MessageRepository, cache MessageCache) *MessageService {
	return &MessageService{repo: repo, cache: cache}
}

func validMessageText(text string) bool {
	return strings.TrimSpace(text) != "" && len(text) <= MaxMessageLength
}

// AddMessage persists a new message. The text must be non-blank after
// trimming and at most MaxMessageLength characters untrimmed, and
// PostedBy must reference an existing account. The stored text is the
// original, untrimmed input.
func (s *MessageService) AddMessage(message models.Message) (*models.Message, error) {
	if !validMessageText(message.MessageText) {
		return nil, ErrInvalidMessage
	}
	known, err := s.repo.AuthorExists(message.PostedBy)
	if err != nil {
		logrus.WithError(err).Error("author lookup failed")
		return nil, ErrInvalidMessage
	}
	if !known {
		return nil, ErrInvalidMessage
	}
	created, err := s.repo.InsertMessage(message)
	if err != nil {
		logrus.WithError(err).Error("message insert failed")
		return nil, ErrInvalidMessage
	}
	if s.cache != nil {
		if err := s.cache.RecordMessage(created.ID, time.UnixMilli(created.TimePostedEpoch)); err != nil {
			logrus.WithError(err).WithField("message_id", created.ID).Warn("failed to cache message")
		}
	}
	return created, nil
}

// GetAllMessages returns every stored message, possibly empty. A store
// fault is logged and yields an empty sequence.
func (s *MessageService) GetAllMessages() []models.Message {
	messages, err := s.repo.GetAllMessages()
	if err != nil {
		logrus.WithError(err).Error("message scan failed")
		return []models.Message{}
	}
	return messages
}

// GetMessageByID returns the message, or nil if no such id exists.
// Absence is not an error.
func (s *MessageService) GetMessageByID(id int) *models.Message {
	message, err := s.repo.GetMessageByID(id)
	if err != nil {
		logrus.WithError(err).WithField("message_id", id).Error("message lookup failed")
		return nil
	}
	return message
}

// DeleteMessageByID removes a message and returns its pre-delete
// snapshot. The delete must be confirmed by row count: if the message
// existed but the delete affected no rows, nil is returned and the
// deletion is treated as failed.
func (s *MessageService) DeleteMessageByID(id int) *models.Message {
	message := s.GetMessageByID(id)
	if message == nil {
		return nil
	}
	deleted, err := s.repo.DeleteMessageByID(id)
	if err != nil {
		logrus.WithError(err).WithField("message_id", id).Error("message delete failed")
		return nil
	}
	if !deleted {
		return nil
	}
	return message
}

// PatchMessageByID replaces a message's text and returns the updated
// snapshot (the stored entity with the new text applied). Fails with
// ErrMessageNotFound for an unknown id and ErrInvalidMessage for text
// that violates the same rules AddMessage enforces.
func (s *MessageService) PatchMessageByID(text string, id int) (*models.Message, error) {
	message := s.GetMessageByID(id)
	if message == nil {
		return nil, ErrMessageNotFound
	}
	if !validMessageText(text) {
		return nil, ErrInvalidMessage
	}
	updated, err := s.repo.UpdateMessageText(id, text)
	if err != nil {
		logrus.WithError(err).WithField("message_id", id).Error("message update failed")
		return nil, ErrInvalidMessage
	}
	if !updated {
		return nil, ErrInvalidMessage
	}
	message.MessageText = text
	return message, nil
}

// GetAllMessagesByAccountID returns every message posted by the given
// account, possibly empty. An unknown account yields an empty sequence,
// not an error.
func (s *MessageService) GetAllMessagesByAccountID(accountID int) []models.Message {
	messages, err := s.repo.GetMessagesByAccountID(accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("message scan failed")
		return []models.Message{}
	}
	return messages
}
