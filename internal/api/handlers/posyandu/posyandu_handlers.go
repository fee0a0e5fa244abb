// internal/api/handlers/posyandu/posyandu_handlers.go
package posyandu

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"posyandu/internal/lib/logger/utils"
	"posyandu/internal/lib/response"
	"posyandu/internal/models"
	"posyandu/internal/pager"
	"posyandu/internal/service"
	"posyandu/internal/storage"
)

type PosyanduHandlers struct {
	posyanduService *service.PosyanduService
	defaultLimit    int
}

func NewPosyanduHandlers(posyanduService *service.PosyanduService, defaultLimit int) *PosyanduHandlers {
	if defaultLimit <= 0 {
		defaultLimit = models.DefaultLimit
	}
	return &PosyanduHandlers{
		posyanduService: posyanduService,
		defaultLimit:    defaultLimit,
	}
}

// Register mounts the posyandu routes on router.
func (h *PosyanduHandlers) Register(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc("/posyandu", h.ListPosyanduHandler).Methods(http.MethodGet)
	router.HandleFunc("/posyandu", h.AddPosyanduHandler).Methods(http.MethodPost)
	router.HandleFunc("/posyandu/{id}", h.GetPosyanduHandler).Methods(http.MethodGet)
	router.HandleFunc("/posyandu/{id}", h.UpdatePosyanduHandler).Methods(http.MethodPut)
	router.HandleFunc("/posyandu/{id}", h.DeletePosyanduHandler).Methods(http.MethodDelete)
}

// @Summary List posyandu with filtering and pagination
// @Description List posyandu with optional filters and page/limit pagination. The response carries pagination meta.
// @Tags posyandu
// @Produce json
// @Param name query string false "Filter by name (substring)"
// @Param kecamatan query string false "Filter by kecamatan (substring)"
// @Param kelurahan query string false "Filter by kelurahan (exact)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page, at most 100" default(10)
// @Success 200 {object} models.Page[models.Posyandu]
// @Failure 500 {object} map[string]string
// @Router /posyandu [get]
func (h *PosyanduHandlers) ListPosyanduHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("ListPosyanduHandler called")

	queryParams := r.URL.Query()
	page, err := strconv.Atoi(queryParams.Get(pager.PageKey))
	if err != nil {
		page = models.DefaultPage
	}
	limit, err := strconv.Atoi(queryParams.Get(pager.LimitKey))
	if err != nil || limit <= 0 {
		limit = h.defaultLimit
	}
	limit = min(limit, models.MaxLimit)

	pagination := models.NewPagination(page, limit)

	filter := &models.PosyanduFilter{
		Name:      stringPointer(queryParams.Get("name")),
		Kecamatan: stringPointer(queryParams.Get("kecamatan")),
		Kelurahan: stringPointer(queryParams.Get("kelurahan")),
	}

	result, err := h.posyanduService.ListPosyandu(r.Context(), filter, pagination)
	if err != nil {
		utils.Logger.Error("ListPosyanduHandler - posyanduService.ListPosyandu failed", zap.Error(err), zap.Any("pagination", pagination))
		response.Error(w, http.StatusInternalServerError, "Failed to list posyandu")
		return
	}

	response.JSON(w, http.StatusOK, result)
	utils.Logger.Debug("ListPosyanduHandler - posyandu listed", zap.Int("count", len(result.Data)), zap.Int("total", result.Meta.TotalData))
}

// @Summary Add a posyandu
// @Tags posyandu
// @Accept json
// @Produce json
// @Param body body models.PosyanduRequest true "Posyandu to add"
// @Success 201 {object} models.Posyandu
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /posyandu [post]
func (h *PosyanduHandlers) AddPosyanduHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("AddPosyanduHandler called")

	var req models.PosyanduRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("AddPosyanduHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.posyanduService.AddPosyandu(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.ValidationError(w, "Invalid posyandu", service.FieldErrors(err))
			return
		}
		utils.Logger.Error("AddPosyanduHandler - posyanduService.AddPosyandu failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to add posyandu")
		return
	}

	response.JSON(w, http.StatusCreated, created)
	utils.Logger.Info("AddPosyanduHandler - posyandu added", zap.Int("posyandu_id", created.ID))
}

// @Summary Get posyandu by ID
// @Tags posyandu
// @Produce json
// @Param id path int true "Posyandu ID"
// @Success 200 {object} models.Posyandu
// @Failure 404 {object} map[string]string
// @Router /posyandu/{id} [get]
func (h *PosyanduHandlers) GetPosyanduHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetPosyanduHandler called")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	posyandu, err := h.posyanduService.GetPosyandu(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPosyanduNotFound) {
			response.Error(w, http.StatusNotFound, "Posyandu not found")
			return
		}
		utils.Logger.Error("GetPosyanduHandler - posyanduService.GetPosyandu failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to get posyandu")
		return
	}

	response.JSON(w, http.StatusOK, posyandu)
}

// @Summary Update posyandu by ID
// @Tags posyandu
// @Accept json
// @Produce json
// @Param id path int true "Posyandu ID"
// @Param body body models.PosyanduRequest true "New posyandu details"
// @Success 200 {object} models.Posyandu
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posyandu/{id} [put]
func (h *PosyanduHandlers) UpdatePosyanduHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("UpdatePosyanduHandler called")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.PosyanduRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("UpdatePosyanduHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.posyanduService.UpdatePosyandu(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			response.ValidationError(w, "Invalid posyandu", service.FieldErrors(err))
		case errors.Is(err, storage.ErrPosyanduNotFound):
			response.Error(w, http.StatusNotFound, "Posyandu not found")
		default:
			utils.Logger.Error("UpdatePosyanduHandler - posyanduService.UpdatePosyandu failed", zap.Error(err), zap.Int("id", id))
			response.Error(w, http.StatusInternalServerError, "Failed to update posyandu")
		}
		return
	}

	response.JSON(w, http.StatusOK, updated)
	utils.Logger.Info("UpdatePosyanduHandler - posyandu updated", zap.Int("posyandu_id", updated.ID))
}

// @Summary Delete posyandu by ID
// @Tags posyandu
// @Param id path int true "Posyandu ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /posyandu/{id} [delete]
func (h *PosyanduHandlers) DeletePosyanduHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("DeletePosyanduHandler called")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.posyanduService.DeletePosyandu(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrPosyanduNotFound) {
			response.Error(w, http.StatusNotFound, "Posyandu not found")
			return
		}
		utils.Logger.Error("DeletePosyanduHandler - posyanduService.DeletePosyandu failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to delete posyandu")
		return
	}

	w.WriteHeader(http.StatusNoContent)
	utils.Logger.Info("DeletePosyanduHandler - posyandu deleted", zap.Int("posyandu_id", id))
}

func (h *PosyanduHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		utils.Logger.Warn("invalid posyandu ID", zap.String("id", idStr))
		response.Error(w, http.StatusBadRequest, "Invalid posyandu ID")
		return 0, false
	}
	return id, true
}

func stringPointer(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
