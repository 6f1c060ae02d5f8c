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

// Обработчики полевых операций: посевы, работы, расходы материалов,
// затраты.

// PlantingHandler обслуживает посевы
type PlantingHandler struct {
	plantingService service.PlantingService
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewPlantingHandler создаёт новый обработчик
func NewPlantingHandler(plantingService service.PlantingService, logger *slog.Logger) *PlantingHandler {
	return &PlantingHandler{
		plantingService: plantingService,
		validator:       validator.New(),
		logger:          logger,
	}
}

func (h *PlantingHandler) List(w http.ResponseWriter, r *http.Request) {
	plantings, err := h.plantingService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, plantings)
}

func (h *PlantingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid planting id", err.Error())
		return
	}

	planting, err := h.plantingService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, planting)
}

func (h *PlantingHandler) Create(w http.ResponseWriter, r *http.Request) {
	planting, ok := h.decodeRequest(w, r, 0)
	if !ok {
		return
	}

	created, err := h.plantingService.Create(r.Context(), planting)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, created)
}

func (h *PlantingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid planting id", err.Error())
		return
	}

	planting, ok := h.decodeRequest(w, r, id)
	if !ok {
		return
	}

	updated, err := h.plantingService.Update(r.Context(), planting)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, updated)
}

func (h *PlantingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid planting id", err.Error())
		return
	}

	if err := h.plantingService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlantingHandler) decodeRequest(w http.ResponseWriter, r *http.Request, id int64) (*domain.Planting, bool) {
	var req dto.PlantingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return nil, false
	}

	sowingDate, err := parseDate(req.SowingDate)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid sowing_date", err.Error())
		return nil, false
	}

	return &domain.Planting{
		ID:         id,
		FieldID:    req.FieldID,
		CultureID:  req.CultureID,
		SowingDate: sowingDate,
	}, true
}

// WorkHandler обслуживает полевые работы
type WorkHandler struct {
	workService  service.WorkService
	usageService service.MaterialUsageService
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewWorkHandler создаёт новый обработчик
func NewWorkHandler(
	workService service.WorkService,
	usageService service.MaterialUsageService,
	logger *slog.Logger,
) *WorkHandler {
	return &WorkHandler{
		workService:  workService,
		usageService: usageService,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *WorkHandler) List(w http.ResponseWriter, r *http.Request) {
	works, err := h.workService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.WorkResponse, len(works))
	for i := range works {
		resp[i] = toWorkResponse(&works[i])
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *WorkHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid work id", err.Error())
		return
	}

	work, err := h.workService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toWorkResponse(work))
}

// ListUsages возвращает расходы материалов по работе
func (h *WorkHandler) ListUsages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid work id", err.Error())
		return
	}

	usages, err := h.usageService.ListByWork(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, usages)
}

func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	work, ok := h.decodeRequest(w, r, 0)
	if !ok {
		return
	}

	created, err := h.workService.Create(r.Context(), work)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, toWorkResponse(created))
}

func (h *WorkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid work id", err.Error())
		return
	}

	work, ok := h.decodeRequest(w, r, id)
	if !ok {
		return
	}

	updated, err := h.workService.Update(r.Context(), work)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toWorkResponse(updated))
}

func (h *WorkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid work id", err.Error())
		return
	}

	if err := h.workService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WorkHandler) decodeRequest(w http.ResponseWriter, r *http.Request, id int64) (*domain.Work, bool) {
	var req dto.WorkRequest
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

	return &domain.Work{
		ID:          id,
		WorkTypeID:  req.WorkTypeID,
		FieldID:     req.FieldID,
		TechniqueID: req.TechniqueID,
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Duration:    req.Duration,
	}, true
}

func toWorkResponse(work *domain.Work) dto.WorkResponse {
	return dto.WorkResponse{
		ID:          work.ID,
		WorkTypeID:  work.WorkTypeID,
		FieldID:     work.FieldID,
		TechniqueID: work.TechniqueID,
		EmployeeID:  work.EmployeeID,
		Date:        formatDate(work.Date),
		Duration:    work.Duration,
		Cost:        work.Cost(),
		WorkType:    work.WorkType,
		Field:       work.Field,
		Technique:   work.Technique,
		Employee:    work.Employee,
	}
}

// MaterialUsageHandler обслуживает расходы материалов
type MaterialUsageHandler struct {
	usageService service.MaterialUsageService
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewMaterialUsageHandler создаёт новый обработчик
func NewMaterialUsageHandler(usageService service.MaterialUsageService, logger *slog.Logger) *MaterialUsageHandler {
	return &MaterialUsageHandler{
		usageService: usageService,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *MaterialUsageHandler) List(w http.ResponseWriter, r *http.Request) {
	usages, err := h.usageService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, usages)
}

func (h *MaterialUsageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid material usage id", err.Error())
		return
	}

	usage, err := h.usageService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, usage)
}

func (h *MaterialUsageHandler) Create(w http.ResponseWriter, r *http.Request) {
	usage, ok := h.decodeRequest(w, r, 0)
	if !ok {
		return
	}

	created, err := h.usageService.Create(r.Context(), usage)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, created)
}

func (h *MaterialUsageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid material usage id", err.Error())
		return
	}

	usage, ok := h.decodeRequest(w, r, id)
	if !ok {
		return
	}

	updated, err := h.usageService.Update(r.Context(), usage)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, updated)
}

func (h *MaterialUsageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid material usage id", err.Error())
		return
	}

	if err := h.usageService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MaterialUsageHandler) decodeRequest(w http.ResponseWriter, r *http.Request, id int64) (*domain.MaterialUsage, bool) {
	var req dto.MaterialUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return nil, false
	}

	return &domain.MaterialUsage{
		ID:             id,
		MaterialTypeID: req.MaterialTypeID,
		Quantity:       req.Quantity,
		WorkID:         req.WorkID,
	}, true
}

// ExpenseHandler обслуживает затраты
type ExpenseHandler struct {
	expenseService service.ExpenseService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewExpenseHandler создаёт новый обработчик
func NewExpenseHandler(expenseService service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		validator:      validator.New(),
		logger:         logger,
	}
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, expenses)
}

func (h *ExpenseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid expense id", err.Error())
		return
	}

	expense, err := h.expenseService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, expense)
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	expense, ok := h.decodeRequest(w, r, 0)
	if !ok {
		return
	}

	created, err := h.expenseService.Create(r.Context(), expense)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, created)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid expense id", err.Error())
		return
	}

	expense, ok := h.decodeRequest(w, r, id)
	if !ok {
		return
	}

	updated, err := h.expenseService.Update(r.Context(), expense)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, updated)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid expense id", err.Error())
		return
	}

	if err := h.expenseService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ExpenseHandler) decodeRequest(w http.ResponseWriter, r *http.Request, id int64) (*domain.Expense, bool) {
	var req dto.ExpenseRequest
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

	return &domain.Expense{
		ID:          id,
		ExpenseType: strings.TrimSpace(req.ExpenseType),
		Amount:      req.Amount,
		Date:        date,
		WorkID:      req.WorkID,
	}, true
}
