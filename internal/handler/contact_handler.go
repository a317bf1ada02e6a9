package handler

import (
	"net/http"
	"time"

	"github.com/brookxc/etmenu/internal/service"
	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/logger"
)

// ContactHandler accepts contact form submissions
type ContactHandler struct {
	contactService service.ContactServiceInterface
	logger         *logger.Logger
}

func NewContactHandler(contactService service.ContactServiceInterface, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         log.WithComponent("contact_handler"),
	}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	if r.Method != http.MethodPost {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		reqCtx.StatusCode = http.StatusMethodNotAllowed
		h.logger.LogResponse(reqCtx)
		return
	}

	var msg models.ContactMessage
	if err := parseRequestBody(r, &msg); err != nil {
		h.logger.Warn("Invalid contact form body", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	if err := h.contactService.Submit(msg); err != nil {
		h.logger.Warn("Contact form rejected", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Message sent successfully!",
	})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
