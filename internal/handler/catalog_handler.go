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

// CatalogHandler обслуживает HTTP-операции справочной сущности T с
// телом запроса R. Один универсальный обработчик вместо отдельного
// на каждый справочник.
type CatalogHandler[T any, R any] struct {
	service     service.Catalog[T]
	validator   *validator.Validate
	logger      *slog.Logger
	fromRequest func(req *R, id int64) *T
}

// NewCatalogHandler создаёт обработчик справочника. fromRequest
// отображает проверенный запрос в доменную модель (id нулевой при
// создании).
func NewCatalogHandler[T any, R any](
	svc service.Catalog[T],
	logger *slog.Logger,
	fromRequest func(req *R, id int64) *T,
) *CatalogHandler[T, R] {
	return &CatalogHandler[T, R]{
		service:     svc,
		validator:   validator.New(),
		logger:      logger,
		fromRequest: fromRequest,
	}
}

func (h *CatalogHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, entities)
}

func (h *CatalogHandler[T, R]) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid id", err.Error())
		return
	}

	entity, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, entity)
}

func (h *CatalogHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	var req R
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	entity := h.fromRequest(&req, 0)
	if err := h.service.Create(r.Context(), entity); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, entity)
}

func (h *CatalogHandler[T, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid id", err.Error())
		return
	}

	var req R
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	entity := h.fromRequest(&req, id)
	if err := h.service.Update(r.Context(), id, entity); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, entity)
}

func (h *CatalogHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid id", err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Конструкторы обработчиков справочников с отображением запросов.

// NewFieldHandler создаёт обработчик полей
func NewFieldHandler(svc service.Catalog[domain.Field], logger *slog.Logger) *CatalogHandler[domain.Field, dto.FieldRequest] {
	return NewCatalogHandler(svc, logger, func(req *dto.FieldRequest, id int64) *domain.Field {
		return &domain.Field{
			ID:       id,
			Name:     strings.TrimSpace(req.Name),
			Area:     req.Area,
			SoilType: strings.TrimSpace(req.SoilType),
		}
	})
}

// NewCultureHandler создаёт обработчик культур
func NewCultureHandler(svc service.Catalog[domain.Culture], logger *slog.Logger) *CatalogHandler[domain.Culture, dto.CultureRequest] {
	return NewCatalogHandler(svc, logger, func(req *dto.CultureRequest, id int64) *domain.Culture {
		return &domain.Culture{
			ID:           id,
			Name:         strings.TrimSpace(req.Name),
			Seasonality:  strings.TrimSpace(req.Seasonality),
			AverageYield: req.AverageYield,
		}
	})
}

// NewEmployeeHandler создаёт обработчик работников
func NewEmployeeHandler(svc service.Catalog[domain.Employee], logger *slog.Logger) *CatalogHandler[domain.Employee, dto.EmployeeRequest] {
	return NewCatalogHandler(svc, logger, func(req *dto.EmployeeRequest, id int64) *domain.Employee {
		return &domain.Employee{
			ID:       id,
			FullName: strings.TrimSpace(req.FullName),
			Phone:    strings.TrimSpace(req.Phone),
			Position: strings.TrimSpace(req.Position),
		}
	})
}

// NewTechniqueHandler создаёт обработчик техники
func NewTechniqueHandler(svc service.Catalog[domain.Technique], logger *slog.Logger) *CatalogHandler[domain.Technique, dto.TechniqueRequest] {
	return NewCatalogHandler(svc, logger, func(req *dto.TechniqueRequest, id int64) *domain.Technique {
		return &domain.Technique{
			ID:        id,
			Name:      strings.TrimSpace(req.Name),
			Type:      strings.TrimSpace(req.Type),
			UsageCost: req.UsageCost,
			Condition: req.Condition,
		}
	})
}

// NewMaterialTypeHandler создаёт обработчик видов материалов
func NewMaterialTypeHandler(svc service.Catalog[domain.MaterialType], logger *slog.Logger) *CatalogHandler[domain.MaterialType, dto.MaterialTypeRequest] {
	return NewCatalogHandler(svc, logger, func(req *dto.MaterialTypeRequest, id int64) *domain.MaterialType {
		return &domain.MaterialType{
			ID:   id,
			Name: strings.TrimSpace(req.Name),
			Type: req.Type,
			Unit: req.Unit,
		}
	})
}

// NewSupplierHandler создаёт обработчик поставщиков
func NewSupplierHandler(svc service.Catalog[domain.Supplier], logger *slog.Logger) *CatalogHandler[domain.Supplier, dto.SupplierRequest] {
	return NewCatalogHandler(svc, logger, func(req *dto.SupplierRequest, id int64) *domain.Supplier {
		return &domain.Supplier{
			ID:            id,
			Name:          strings.TrimSpace(req.Name),
			ContactPerson: strings.TrimSpace(req.ContactPerson),
			Phone:         strings.TrimSpace(req.Phone),
			ProductType:   strings.TrimSpace(req.ProductType),
		}
	})
}

// NewWorkTypeHandler создаёт обработчик видов работ
func NewWorkTypeHandler(svc service.Catalog[domain.WorkType], logger *slog.Logger) *CatalogHandler[domain.WorkType, dto.WorkTypeRequest] {
	return NewCatalogHandler(svc, logger, func(req *dto.WorkTypeRequest, id int64) *domain.WorkType {
		return &domain.WorkType{
			ID:   id,
			Name: strings.TrimSpace(req.Name),
		}
	})
}
