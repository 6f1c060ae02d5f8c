package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/dto"
	"github.com/farm-management-api/internal/service"
)

// HarvestHandler обслуживает урожаи и учёт остатков
type HarvestHandler struct {
	harvestService service.HarvestService
	saleService    service.SaleService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewHarvestHandler создаёт новый обработчик
func NewHarvestHandler(
	harvestService service.HarvestService,
	saleService service.SaleService,
	logger *slog.Logger,
) *HarvestHandler {
	return &HarvestHandler{
		harvestService: harvestService,
		saleService:    saleService,
		validator:      validator.New(),
		logger:         logger,
	}
}

// List возвращает все урожаи с текущими остатками
func (h *HarvestHandler) List(w http.ResponseWriter, r *http.Request) {
	harvests, err := h.harvestService.ListAvailable(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.HarvestResponse, len(harvests))
	for i := range harvests {
		resp[i] = toHarvestResponse(&harvests[i])
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

// ListAvailable - то же представление, что и List: каждый урожай
// аннотирован остатком, посчитанным на момент вызова
func (h *HarvestHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	h.List(w, r)
}

func (h *HarvestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid harvest id", err.Error())
		return
	}

	harvest, err := h.harvestService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toHarvestResponse(harvest))
}

// AvailableQuantity возвращает доступный остаток одного урожая
func (h *HarvestHandler) AvailableQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid harvest id", err.Error())
		return
	}

	available, err := h.harvestService.AvailableQuantity(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]int64{"available_quantity": available})
}

// ListSales возвращает продажи по урожаю
func (h *HarvestHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid harvest id", err.Error())
		return
	}

	sales, err := h.saleService.ListByHarvest(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		resp[i] = toSaleResponse(&sales[i])
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *HarvestHandler) Create(w http.ResponseWriter, r *http.Request) {
	harvest, ok := h.decodeRequest(w, r, 0)
	if !ok {
		return
	}

	created, err := h.harvestService.Create(r.Context(), harvest)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, toHarvestResponse(created))
}

func (h *HarvestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid harvest id", err.Error())
		return
	}

	harvest, ok := h.decodeRequest(w, r, id)
	if !ok {
		return
	}

	updated, err := h.harvestService.Update(r.Context(), harvest)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toHarvestResponse(updated))
}

func (h *HarvestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid harvest id", err.Error())
		return
	}

	if err := h.harvestService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HarvestHandler) decodeRequest(w http.ResponseWriter, r *http.Request, id int64) (*domain.Harvest, bool) {
	var req dto.HarvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return nil, false
	}

	harvestDate, err := parseDate(req.HarvestDate)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid harvest_date", err.Error())
		return nil, false
	}

	return &domain.Harvest{
		ID:          id,
		FieldID:     req.FieldID,
		CultureID:   req.CultureID,
		HarvestDate: harvestDate,
		Volume:      req.Volume,
		PricePerKg:  req.PricePerKg,
	}, true
}

func toHarvestResponse(harvest *domain.Harvest) dto.HarvestResponse {
	return dto.HarvestResponse{
		ID:                harvest.ID,
		FieldID:           harvest.FieldID,
		CultureID:         harvest.CultureID,
		HarvestDate:       formatDate(harvest.HarvestDate),
		Volume:            harvest.Volume,
		PricePerKg:        harvest.PricePerKg,
		TotalValue:        harvest.TotalValue(),
		AvailableQuantity: harvest.AvailableQuantity,
		Field:             harvest.Field,
		Culture:           harvest.Culture,
	}
}
