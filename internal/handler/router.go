package handler

import (
	"log/slog"
	"net/http"

	"github.com/farm-management-api/internal/middleware"
)

// Handlers собирает все обработчики API
type Handlers struct {
	fields        resource
	cultures      resource
	employees     resource
	techniques    resource
	materialTypes resource
	suppliers     resource
	workTypes     resource
	plantings     resource
	harvests      *HarvestHandler
	clients       *ClientHandler
	sales         *SaleHandler
	purchases     *PurchaseHandler
	works         *WorkHandler
	usages        *MaterialUsageHandler
	expenses      *ExpenseHandler
}

// resource - стандартный набор HTTP-операций сущности
type resource interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Router настраивает маршруты API
type Router struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	handlers *Handlers
}

// NewHandlers собирает обработчики для роутера
func NewHandlers(
	fields, cultures, employees, techniques, materialTypes, suppliers, workTypes, plantings resource,
	harvests *HarvestHandler,
	clients *ClientHandler,
	sales *SaleHandler,
	purchases *PurchaseHandler,
	works *WorkHandler,
	usages *MaterialUsageHandler,
	expenses *ExpenseHandler,
) *Handlers {
	return &Handlers{
		fields:        fields,
		cultures:      cultures,
		employees:     employees,
		techniques:    techniques,
		materialTypes: materialTypes,
		suppliers:     suppliers,
		workTypes:     workTypes,
		plantings:     plantings,
		harvests:      harvests,
		clients:       clients,
		sales:         sales,
		purchases:     purchases,
		works:         works,
		usages:        usages,
		expenses:      expenses,
	}
}

// NewRouter создаёт новый роутер
func NewRouter(handlers *Handlers, logger *slog.Logger) *Router {
	return &Router{
		mux:      http.NewServeMux(),
		logger:   logger,
		handlers: handlers,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.registerResource("/fields", r.handlers.fields)
	r.registerResource("/cultures", r.handlers.cultures)
	r.registerResource("/employees", r.handlers.employees)
	r.registerResource("/techniques", r.handlers.techniques)
	r.registerResource("/material-types", r.handlers.materialTypes)
	r.registerResource("/suppliers", r.handlers.suppliers)
	r.registerResource("/work-types", r.handlers.workTypes)
	r.registerResource("/plantings", r.handlers.plantings)
	r.registerResource("/harvests", r.handlers.harvests)
	r.registerResource("/clients", r.handlers.clients)
	r.registerResource("/sales", r.handlers.sales)
	r.registerResource("/purchases", r.handlers.purchases)
	r.registerResource("/works", r.handlers.works)
	r.registerResource("/material-usages", r.handlers.usages)
	r.registerResource("/expenses", r.handlers.expenses)

	// Производные чтения
	r.mux.HandleFunc("GET /harvests/available", r.handlers.harvests.ListAvailable)
	r.mux.HandleFunc("GET /harvests/{id}/available", r.handlers.harvests.AvailableQuantity)
	r.mux.HandleFunc("GET /harvests/{id}/sales", r.handlers.harvests.ListSales)
	r.mux.HandleFunc("GET /clients/{id}/sales", r.handlers.clients.ListSales)
	r.mux.HandleFunc("GET /works/{id}/usages", r.handlers.works.ListUsages)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func (r *Router) registerResource(path string, h resource) {
	r.mux.HandleFunc("GET "+path, h.List)
	r.mux.HandleFunc("POST "+path, h.Create)
	r.mux.HandleFunc("GET "+path+"/{id}", h.GetByID)
	r.mux.HandleFunc("PUT "+path+"/{id}", h.Update)
	r.mux.HandleFunc("DELETE "+path+"/{id}", h.Delete)
}
