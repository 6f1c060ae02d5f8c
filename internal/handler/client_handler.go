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

// ClientHandler обслуживает клиентов и их продажи.
// Удаление клиента каскадно удаляет его продажи.
type ClientHandler struct {
	clientService service.ClientService
	saleService   service.SaleService
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewClientHandler создаёт новый обработчик
func NewClientHandler(
	clientService service.ClientService,
	saleService service.SaleService,
	logger *slog.Logger,
) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		saleService:   saleService,
		validator:     validator.New(),
		logger:        logger,
	}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, clients)
}

func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid client id", err.Error())
		return
	}

	client, err := h.clientService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, client)
}

// ListSales возвращает продажи клиента
func (h *ClientHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid client id", err.Error())
		return
	}

	sales, err := h.saleService.ListByClient(r.Context(), id)
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

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	client, ok := h.decodeRequest(w, r, 0)
	if !ok {
		return
	}

	if err := h.clientService.Create(r.Context(), client); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid client id", err.Error())
		return
	}

	client, ok := h.decodeRequest(w, r, id)
	if !ok {
		return
	}

	if err := h.clientService.Update(r.Context(), client); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid client id", err.Error())
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) decodeRequest(w http.ResponseWriter, r *http.Request, id int64) (*domain.Client, bool) {
	var req dto.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return nil, false
	}

	return &domain.Client{
		ID:            id,
		CompanyName:   strings.TrimSpace(req.CompanyName),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         req.Email,
	}, true
}
