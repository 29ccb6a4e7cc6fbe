package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/models"
	"gorm.io/gorm"
)

const (
	maxMessages = 50
	maxTextLen  = 500
)

// MessageView is a message row annotated with the author's first name
// (a read-only join, not an ownership check).
type MessageView struct {
	ID          uint      `json:"id"`
	Text        string    `json:"text"`
	AuthorEmail string    `json:"author_email"`
	FirstName   string    `json:"first_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// MessageService enforces that only a message's author may mutate it.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrTextRequired
	}
	if utf8.RuneCountInString(text) > maxTextLen {
		return "", ErrTextTooLong
	}
	return text, nil
}

func (s *MessageService) Create(authorEmail, text string) (uint, error) {
	text, err := validateText(text)
	if err != nil {
		return 0, err
	}

	msg := models.Message{Text: text, AuthorEmail: authorEmail}
	if err := s.db.Create(&msg).Error; err != nil {
		return 0, fmt.Errorf("failed to create message: %w", err)
	}
	return msg.ID, nil
}

// Edit mutates the text of a live message owned by sessionEmail.
// CreatedAt and AuthorEmail are never touched.
func (s *MessageService) Edit(sessionEmail string, id uint, text string) error {
	text, err := validateText(text)
	if err != nil {
		return err
	}

	var msg models.Message
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to load message: %w", err)
	}
	if msg.AuthorEmail != sessionEmail {
		return ErrNotOwner
	}

	return s.db.Model(&msg).Update("text", text).Error
}

// Delete soft-deletes a single live message owned by sessionEmail.
func (s *MessageService) Delete(sessionEmail string, id uint) error {
	var msg models.Message
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to load message: %w", err)
	}
	if msg.AuthorEmail != sessionEmail {
		return ErrNotOwner
	}

	return s.db.Delete(&msg).Error
}

// DeleteMany soft-deletes every live message in ids owned by
// sessionEmail in one statement. Ids belonging to other users are
// silently excluded; the returned count is the rows actually
// transitioned in this call, so re-deleting is a counted no-op.
func (s *MessageService) DeleteMany(sessionEmail string, rawIDs []interface{}) (int64, error) {
	ids := coerceIDs(rawIDs)
	if len(ids) == 0 {
		return 0, ErrNoValidIDs
	}

	res := s.db.Where("id IN ? AND author_email = ?", ids, sessionEmail).Delete(&models.Message{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete messages: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// coerceIDs keeps entries that parse as positive integers and drops the rest.
func coerceIDs(raw []interface{}) []uint {
	ids := make([]uint, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			if n > 0 && n == float64(int64(n)) {
				ids = append(ids, uint(n))
			}
		case int:
			if n > 0 {
				ids = append(ids, uint(n))
			}
		case string:
			if parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil && parsed > 0 {
				ids = append(ids, uint(parsed))
			}
		}
	}
	return ids
}

// List returns at most 50 live messages, oldest first. A non-empty
// query filters by case-insensitive substring. The query runs
// newest-first so the limit keeps the most recent rows, then the page
// is reversed to honor the ascending ordering contract.
func (s *MessageService) List(query string) ([]MessageView, error) {
	q := s.db.Model(&models.Message{}).
		Select("messages.id, messages.text, messages.author_email, messages.created_at, users.first_name").
		Joins("JOIN users ON users.email = messages.author_email")

	query = strings.TrimSpace(query)
	if query != "" {
		q = q.Where("LOWER(messages.text) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	views := make([]MessageView, 0, maxMessages)
	err := q.Order("messages.created_at DESC, messages.id DESC").
		Limit(maxMessages).
		Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}
	return views, nil
}
