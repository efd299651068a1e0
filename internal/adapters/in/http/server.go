package http

import (
	"net/http"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/application/usecases/queries"
	"medassist/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	PlaceMedicineOrder   commands.PlaceMedicineOrderCommandHandler
	BookLabTest          commands.BookLabTestCommandHandler
	AdvanceOrderStep     commands.AdvanceOrderStepCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler
	SendChatMessage      commands.SendChatMessageCommandHandler

	// Query handlers
	ListOrders        queries.ListOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ListNotifications queries.ListNotificationsQueryHandler
	GetChatTranscript queries.GetChatTranscriptQueryHandler
	SearchCatalog     queries.SearchCatalogQueryHandler
	AnalyzeImage      queries.AnalyzeImageQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code), //nolint:gosec // http status codes fit
		Message: message,
	})
}
