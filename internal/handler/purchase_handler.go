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

// PurchaseHandler обслуживает закупки материалов
type PurchaseHandler struct {
	purchaseService service.PurchaseService
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewPurchaseHandler создаёт новый обработчик
func NewPurchaseHandler(purchaseService service.PurchaseService, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		validator:       validator.New(),
		logger:          logger,
	}
}

func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.purchaseService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.PurchaseResponse, len(purchases))
	for i := range purchases {
		resp[i] = toPurchaseResponse(&purchases[i])
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *PurchaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid purchase id", err.Error())
		return
	}

	purchase, err := h.purchaseService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toPurchaseResponse(purchase))
}

func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	purchase, ok := h.decodeRequest(w, r, 0)
	if !ok {
		return
	}

	created, err := h.purchaseService.Create(r.Context(), purchase)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, toPurchaseResponse(created))
}

func (h *PurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid purchase id", err.Error())
		return
	}

	purchase, ok := h.decodeRequest(w, r, id)
	if !ok {
		return
	}

	updated, err := h.purchaseService.Update(r.Context(), purchase)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toPurchaseResponse(updated))
}

func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid purchase id", err.Error())
		return
	}

	if err := h.purchaseService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PurchaseHandler) decodeRequest(w http.ResponseWriter, r *http.Request, id int64) (*domain.Purchase, bool) {
	var req dto.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return nil, false
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid date", err.Error())
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

	return &domain.Purchase{
		ID:           id,
		MaterialID:   req.MaterialID,
		SupplierID:   req.SupplierID,
		Date:         date,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		ContractDate: contractDate,
		DeliveryDate: deliveryDate,
		Status:       strings.TrimSpace(req.Status),
		Notes:        strings.TrimSpace(req.Notes),
	}, true
}

func toPurchaseResponse(purchase *domain.Purchase) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:           purchase.ID,
		MaterialID:   purchase.MaterialID,
		SupplierID:   purchase.SupplierID,
		Date:         formatDate(purchase.Date),
		Quantity:     purchase.Quantity,
		UnitPrice:    purchase.UnitPrice,
		TotalCost:    purchase.TotalCost(),
		IsContract:   purchase.IsContract(),
		ContractDate: formatDatePtr(purchase.ContractDate),
		DeliveryDate: formatDatePtr(purchase.DeliveryDate),
		Status:       purchase.Status,
		Notes:        purchase.Notes,
		Material:     purchase.Material,
		Supplier:     purchase.Supplier,
	}
}
