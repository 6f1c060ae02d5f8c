package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/dto"
	"github.com/farm-management-api/internal/service"
)

// SaleHandler обслуживает продажи и контракты
type SaleHandler struct {
	saleService service.SaleService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewSaleHandler создаёт новый обработчик
func NewSaleHandler(saleService service.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.saleService.List(r.Context())
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

func (h *SaleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid sale id", err.Error())
		return
	}

	sale, err := h.saleService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toSaleResponse(sale))
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	sale, ok := h.decodeRequest(w, r, 0)
	if !ok {
		return
	}

	created, err := h.saleService.Create(r.Context(), sale)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, toSaleResponse(created))
}

func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid sale id", err.Error())
		return
	}

	sale, ok := h.decodeRequest(w, r, id)
	if !ok {
		return
	}

	updated, err := h.saleService.Update(r.Context(), sale)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toSaleResponse(updated))
}

func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid sale id", err.Error())
		return
	}

	if err := h.saleService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SaleHandler) decodeRequest(w http.ResponseWriter, r *http.Request, id int64) (*domain.Sale, bool) {
	var req dto.SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return nil, false
	}

	contractDate, err := parseDatePtr(req.ContractDate)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid contract_date", err.Error())
		return nil, false
	}

	deliveryDate, err := parseDatePtr(req.DeliveryDate)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid delivery_date", err.Error())
		return nil, false
	}

	return &domain.Sale{
		ID:           id,
		ClientID:     req.ClientID,
		HarvestID:    req.HarvestID,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		ContractDate: contractDate,
		DeliveryDate: deliveryDate,
		Status:       strings.TrimSpace(req.Status),
		Notes:        strings.TrimSpace(req.Notes),
	}, true
}

func toSaleResponse(sale *domain.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:           sale.ID,
		ClientID:     sale.ClientID,
		HarvestID:    sale.HarvestID,
		Quantity:     sale.Quantity,
		UnitPrice:    sale.UnitPrice,
		TotalAmount:  sale.TotalAmount(),
		IsContract:   sale.IsContract(),
		ContractDate: formatDatePtr(sale.ContractDate),
		DeliveryDate: formatDatePtr(sale.DeliveryDate),
		Status:       sale.Status,
		Notes:        sale.Notes,
		CreatedDate:  sale.CreatedDate,
		Client:       sale.Client,
		Harvest:      sale.Harvest,
	}
}
