package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/dto"
)

const dateLayout = "2006-01-02"

var notFoundErrors = []error{
	domain.ErrFieldNotFound,
	domain.ErrCultureNotFound,
	domain.ErrPlantingNotFound,
	domain.ErrHarvestNotFound,
	domain.ErrClientNotFound,
	domain.ErrSaleNotFound,
	domain.ErrEmployeeNotFound,
	domain.ErrTechniqueNotFound,
	domain.ErrMaterialTypeNotFound,
	domain.ErrSupplierNotFound,
	domain.ErrPurchaseNotFound,
	domain.ErrWorkTypeNotFound,
	domain.ErrWorkNotFound,
	domain.ErrMaterialUsageNotFound,
	domain.ErrExpenseNotFound,
}

// handleServiceError переводит бизнес-ошибки в HTTP статусы
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	for _, notFound := range notFoundErrors {
		if errors.Is(err, notFound) {
			respondError(w, logger, http.StatusNotFound, notFound.Error(), "")
			return
		}
	}

	if errors.Is(err, domain.ErrInsufficientQuantity) || errors.Is(err, domain.ErrVolumeBelowSold) {
		respondError(w, logger, http.StatusUnprocessableEntity, err.Error(), "")
		return
	}

	logger.Error("internal error", slog.Any("error", err))
	respondError(w, logger, http.StatusInternalServerError, "internal server error", "")
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(value time.Time) string {
	return value.Format(dateLayout)
}

func formatDatePtr(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
