package service

import (
	"errors"
	"strings"

	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/logger"
)

type ContactServiceInterface interface {
	Submit(msg models.ContactMessage) error
}

// ContactService accepts contact form submissions. There is no delivery
// channel yet; accepted messages are logged so they are at least visible in
// the service output.
type ContactService struct {
	logger *logger.Logger
}

func NewContactService(log *logger.Logger) *ContactService {
	return &ContactService{
		logger: log.WithComponent("contact_service"),
	}
}

// Submit validates and records a contact message
func (s *ContactService) Submit(msg models.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(msg.Email) == "" {
		return errors.New("email is required")
	}
	if strings.TrimSpace(msg.Message) == "" {
		return errors.New("message is required")
	}

	s.logger.Info("Contact form submitted",
		"name", msg.Name,
		"email", msg.Email,
		"message_length", len(msg.Message))
	return nil
}
