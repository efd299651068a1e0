package http

import (
	"fmt"
	"io"
	"net/http"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/application/usecases/queries"
	"medassist/internal/core/domain/model/catalog"
	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	view, err := s.h.ListNotifications.Handle(ctx.Request().Context(), queries.NewListNotificationsQuery())
	if err != nil {
		return handlerError(ctx, err, "Failed to retrieve notifications")
	}

	items := make([]servers.Notification, 0, len(view.Items))
	for _, n := range view.Items {
		items = append(items, servers.Notification{
			Id:        n.ID.Google(),
			Kind:      servers.NotificationKind(n.Kind),
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
			Read:      n.Read,
		})
	}
	return ctx.JSON(http.StatusOK, servers.NotificationList{Items: items, UnreadCount: view.UnreadCount})
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, notificationID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(notificationID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid notification id: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationReadCommand(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid notification id: "+err.Error())
	}

	if err = s.h.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err, "Failed to mark notification")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetChatMessages handles GET /api/v1/chat/messages - the transcript oldest first.
func (s *Server) GetChatMessages(ctx echo.Context) error {
	views, err := s.h.GetChatTranscript.Handle(ctx.Request().Context(), queries.NewGetChatTranscriptQuery())
	if err != nil {
		return handlerError(ctx, err, "Failed to retrieve messages")
	}

	response := make([]servers.ChatMessage, 0, len(views))
	for _, m := range views {
		response = append(response, servers.ChatMessage{
			Id:        m.ID.Google(),
			Sender:    servers.ChatMessageSender(m.Sender),
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// SendChatMessage handles POST /api/v1/chat/messages - returns the assistant reply.
func (s *Server) SendChatMessage(ctx echo.Context) error {
	var body servers.NewChatMessage
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSendChatMessageCommand(body.Text)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid message: "+err.Error())
	}

	reply, err := s.h.SendChatMessage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err, "Failed to send message")
	}
	return ctx.JSON(http.StatusCreated, servers.ChatMessage{
		Id:        reply.ID().Google(),
		Sender:    servers.ChatMessageSender(reply.Sender()),
		Text:      reply.Text(),
		CreatedAt: reply.CreatedAt(),
	})
}

// AnalyzeImage handles POST /api/v1/analysis/images - a multipart upload with
// a "file" part and an optional "instruction" field.
func (s *Server) AnalyzeImage(ctx echo.Context) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Missing file: "+err.Error())
	}
	if file.Size > queries.MaxImageSize {
		return errorJSON(ctx, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File is larger than %d bytes", queries.MaxImageSize))
	}

	src, err := file.Open()
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Unreadable file: "+err.Error())
	}
	defer src.Close()

	image, err := io.ReadAll(io.LimitReader(src, queries.MaxImageSize+1))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Unreadable file: "+err.Error())
	}

	mimeType := file.Header.Get(echo.HeaderContentType)
	if mimeType == "" || mimeType == echo.MIMEOctetStream {
		mimeType = http.DetectContentType(image)
	}

	query, err := queries.NewAnalyzeImageQuery(image, mimeType, ctx.FormValue("instruction"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid upload: "+err.Error())
	}

	text, err := s.h.AnalyzeImage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to analyze file")
	}
	return ctx.JSON(http.StatusOK, servers.Analysis{Text: text})
}

// SearchCatalog handles GET /api/v1/catalog/search?q=.
func (s *Server) SearchCatalog(ctx echo.Context, params servers.SearchCatalogParams) error {
	query, err := queries.NewSearchCatalogQuery(params.Q)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid search: "+err.Error())
	}

	items, err := s.h.SearchCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to search catalog")
	}

	response := make([]servers.CatalogItem, 0, len(items))
	for _, item := range items {
		response = append(response, toCatalogItem(item))
	}
	return ctx.JSON(http.StatusOK, response)
}

func toCatalogItem(item catalog.Item) servers.CatalogItem {
	out := servers.CatalogItem{
		Id:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.InexactFloat64(),
		Type:        servers.CatalogItemType(item.Type),
	}
	if item.Category != "" {
		category := item.Category
		out.Category = &category
	}
	if item.Preparation != "" {
		preparation := item.Preparation
		out.Preparation = &preparation
	}
	return out
}
