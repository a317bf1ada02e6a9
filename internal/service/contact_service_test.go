package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brookxc/etmenu/models"
)

func TestContactSubmit(t *testing.T) {
	svc := NewContactService(newTestLogger())

	t.Run("Should accept a complete message", func(t *testing.T) {
		err := svc.Submit(models.ContactMessage{
			Name:    "Abebe",
			Email:   "abebe@example.com",
			Message: "Please add my restaurant.",
		})
		assert.NoError(t, err)
	})

	t.Run("Should reject blank fields", func(t *testing.T) {
		assert.Error(t, svc.Submit(models.ContactMessage{Email: "a@b.c", Message: "hi"}))
		assert.Error(t, svc.Submit(models.ContactMessage{Name: "Abebe", Message: "hi"}))
		assert.Error(t, svc.Submit(models.ContactMessage{Name: "Abebe", Email: "a@b.c", Message: "   "}))
	})
}
