package handler

import (
	"net/http"
	"time"

	"github.com/brookxc/etmenu/internal/service"
	"github.com/brookxc/etmenu/pkg/logger"
)

// debugSuccessResponse is the payload of a successful database overview
type debugSuccessResponse struct {
	Success       bool                   `json:"success"`
	CurrentDBName string                 `json:"currentDbName"`
	Databases     []service.DatabaseInfo `json:"databases"`
}

// debugErrorResponse is the payload of a failed database overview
type debugErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DebugHandler exposes the database topology overview for connection
// troubleshooting.
type DebugHandler struct {
	debugService service.DebugServiceInterface
	logger       *logger.Logger
}

func NewDebugHandler(debugService service.DebugServiceInterface, log *logger.Logger) *DebugHandler {
	return &DebugHandler{
		debugService: debugService,
		logger:       log.WithComponent("debug_handler"),
	}
}

// DatabaseOverview handles GET /api/debug
func (h *DebugHandler) DatabaseOverview(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	overview, err := h.debugService.GetDatabaseOverview(r.Context())
	if err != nil {
		h.logger.Error("Failed to build database overview", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, debugErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, debugSuccessResponse{
		Success:       true,
		CurrentDBName: overview.CurrentDBName,
		Databases:     overview.Databases,
	})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
