// Package handler exposes the to-do REST surface. It is a pure translation
// layer: each route maps to exactly one service call, and every outcome is
// rendered through the shared JSON envelopes.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"checklist/internal/platform/metrics"
	"checklist/internal/platform/middleware"
	"checklist/internal/todo/models"
	"checklist/pkg/domain"
	dErrors "checklist/pkg/domain-errors"
	"checklist/pkg/platform/httputil"
)

// Service defines the operations the handler translates requests into.
type Service interface {
	ListLists(ctx context.Context) ([]models.ListSummary, error)
	CreateList(ctx context.Context, name string) (*models.TodoList, error)
	GetList(ctx context.Context, id domain.ListID) (*models.TodoList, error)
	RenameList(ctx context.Context, id domain.ListID, name string) (*models.TodoList, error)
	DeleteList(ctx context.Context, id domain.ListID) error
	CreateItem(ctx context.Context, listID domain.ListID, label string) (*models.Item, error)
	DeleteItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID) error
	UpdateItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID, patch models.ItemPatch) (*models.Item, error)
	SetCheckedState(ctx context.Context, listID domain.ListID, itemID domain.ItemID, checked bool) (*models.Item, error)
	Ping(ctx context.Context) error
}

// Handler handles the to-do list endpoints.
type Handler struct {
	logger     *slog.Logger
	todos      Service
	metrics    *metrics.Metrics
	corsOrigin string
}

// New creates a new to-do Handler.
func New(todos Service, logger *slog.Logger, m *metrics.Metrics, corsOrigin string) *Handler {
	return &Handler{
		logger:     logger,
		todos:      todos,
		metrics:    m,
		corsOrigin: corsOrigin,
	}
}

// Register mounts the /api routes with their middleware chain.
func (h *Handler) Register(r chi.Router) {
	api := chi.NewRouter()
	api.Use(middleware.Recovery(h.logger))
	api.Use(middleware.RequestID)
	api.Use(middleware.Logger(h.logger))
	api.Use(middleware.CORS(h.corsOrigin))
	api.Use(middleware.ContentTypeJSON)
	api.Use(middleware.Latency(h.metrics))

	api.Get("/lists", h.handleListLists)
	api.Post("/lists", h.handleCreateList)
	api.Get("/lists/{listID}", h.handleGetList)
	api.Put("/lists/{listID}", h.handleRenameList)
	api.Delete("/lists/{listID}", h.handleDeleteList)
	api.Post("/lists/{listID}/items", h.handleCreateItem)
	api.Delete("/lists/{listID}/items/{itemID}", h.handleDeleteItem)
	api.Patch("/lists/{listID}/items/{itemID}", h.handleUpdateItem)
	api.Patch("/lists/{listID}/items/{itemID}/checked_state", h.handleSetCheckedState)

	r.Mount("/api", api)
}

// Healthz reports whether the backing store is reachable.
func (h *Handler) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.todos.Ping(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "health check failed", "error", err.Error())
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) handleListLists(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.todos.ListLists(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summaries)
}

func (h *Handler) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	list, err := h.todos.CreateList(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, list.Summary())
}

func (h *Handler) handleGetList(w http.ResponseWriter, r *http.Request) {
	listID, err := domain.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	list, err := h.todos.GetList(r.Context(), listID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleRenameList(w http.ResponseWriter, r *http.Request) {
	listID, err := domain.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req RenameListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	list, err := h.todos.RenameList(r.Context(), listID, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list.Summary())
}

func (h *Handler) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := domain.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.todos.DeleteList(r.Context(), listID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	listID, err := domain.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	item, err := h.todos.CreateItem(r.Context(), listID, req.Label)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := h.parseItemPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.todos.DeleteItem(r.Context(), listID, itemID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := h.parseItemPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	item, err := h.todos.UpdateItem(r.Context(), listID, itemID, models.ItemPatch{
		Label:   req.Label,
		Checked: req.Checked,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) handleSetCheckedState(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := h.parseItemPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req SetCheckedStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.CheckedState == nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "checked_state is required"))
		return
	}

	item, err := h.todos.SetCheckedState(r.Context(), listID, itemID, *req.CheckedState)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) parseItemPath(r *http.Request) (domain.ListID, domain.ItemID, error) {
	listID, err := domain.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		return domain.ListID{}, domain.ItemID{}, err
	}
	itemID, err := domain.ParseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		return domain.ListID{}, domain.ItemID{}, err
	}
	return listID, itemID, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "request failed",
			"request_id", middleware.GetRequestID(ctx),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
	} else {
		h.logger.WarnContext(ctx, "request rejected",
			"request_id", middleware.GetRequestID(ctx),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}
