package dto

import (
	"time"

	"github.com/farm-management-api/internal/domain"
)

// Запросы создания и полного обновления сущностей. Один и тот же тип
// используется для POST и PUT. Даты передаются строками в формате
// 2006-01-02.

// FieldRequest - данные поля
type FieldRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Area     int64  `json:"area" validate:"required,gt=0"`
	SoilType string `json:"soil_type" validate:"required,min=1,max=100"`
}

// CultureRequest - данные культуры
type CultureRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Seasonality  string `json:"seasonality" validate:"required,min=1,max=100"`
	AverageYield int64  `json:"average_yield" validate:"required,gt=0"`
}

// PlantingRequest - данные посева
type PlantingRequest struct {
	FieldID    int64  `json:"field_id" validate:"required,min=1"`
	CultureID  int64  `json:"culture_id" validate:"required,min=1"`
	SowingDate string `json:"sowing_date" validate:"required,datetime=2006-01-02"`
}

// HarvestRequest - данные урожая
type HarvestRequest struct {
	FieldID     int64  `json:"field_id" validate:"required,min=1"`
	CultureID   int64  `json:"culture_id" validate:"required,min=1"`
	HarvestDate string `json:"harvest_date" validate:"required,datetime=2006-01-02"`
	Volume      int64  `json:"volume" validate:"required,gt=0"`
	PricePerKg  int64  `json:"price_per_kg" validate:"required,gt=0"`
}

// ClientRequest - данные клиента. Телефон хранится строкой:
// числовое хранение теряет ведущие нули и формат "+380...".
type ClientRequest struct {
	CompanyName   string  `json:"company_name" validate:"required,min=1,max=200"`
	ContactPerson string  `json:"contact_person" validate:"required,min=1,max=200"`
	Phone         string  `json:"phone" validate:"required,min=3,max=30"`
	Email         *string `json:"email" validate:"omitempty,email"`
}

// SaleRequest - данные продажи. Наличие даты контракта делает запись
// контрактом.
type SaleRequest struct {
	ClientID     int64   `json:"client_id" validate:"required,min=1"`
	HarvestID    int64   `json:"harvest_id" validate:"required,min=1"`
	Quantity     int64   `json:"quantity" validate:"required,gt=0"`
	UnitPrice    int64   `json:"unit_price" validate:"required,gt=0"`
	ContractDate *string `json:"contract_date" validate:"omitempty,datetime=2006-01-02"`
	DeliveryDate *string `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
	Status       string  `json:"status" validate:"omitempty,max=50"`
	Notes        string  `json:"notes" validate:"max=2000"`
}

// EmployeeRequest - данные работника
type EmployeeRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"required,min=3,max=30"`
	Position string `json:"position" validate:"required,min=1,max=200"`
}

// TechniqueRequest - данные техники
type TechniqueRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Type      string `json:"type" validate:"required,min=1,max=100"`
	UsageCost int64  `json:"usage_cost" validate:"required,gt=0"`
	Condition string `json:"condition" validate:"required,oneof=New Used InRepair"`
}

// MaterialTypeRequest - данные вида материала
type MaterialTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Type string `json:"type" validate:"required,oneof=Seed Fertilizer PlantProtection Fuel Other"`
	Unit string `json:"unit" validate:"required,oneof=kg l t pc pack m3 m2 g"`
}

// SupplierRequest - данные поставщика
type SupplierRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" validate:"required,min=1,max=200"`
	Phone         string `json:"phone" validate:"required,min=3,max=30"`
	ProductType   string `json:"product_type" validate:"required,min=1,max=200"`
}

// PurchaseRequest - данные закупки
type PurchaseRequest struct {
	MaterialID   int64   `json:"material_id" validate:"required,min=1"`
	SupplierID   int64   `json:"supplier_id" validate:"required,min=1"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity     int64   `json:"quantity" validate:"required,gt=0"`
	UnitPrice    int64   `json:"unit_price" validate:"required,gt=0"`
	ContractDate *string `json:"contract_date" validate:"omitempty,datetime=2006-01-02"`
	DeliveryDate *string `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
	Status       string  `json:"status" validate:"omitempty,max=50"`
	Notes        string  `json:"notes" validate:"max=2000"`
}

// WorkTypeRequest - данные вида работ
type WorkTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// WorkRequest - данные работы. Техника и работник опциональны.
type WorkRequest struct {
	WorkTypeID  int64  `json:"work_type_id" validate:"required,min=1"`
	FieldID     int64  `json:"field_id" validate:"required,min=1"`
	TechniqueID *int64 `json:"technique_id" validate:"omitempty,min=1"`
	EmployeeID  *int64 `json:"employee_id" validate:"omitempty,min=1"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Duration    int64  `json:"duration" validate:"required,gt=0"`
}

// MaterialUsageRequest - данные расхода материала
type MaterialUsageRequest struct {
	MaterialTypeID int64 `json:"material_type_id" validate:"required,min=1"`
	Quantity       int64 `json:"quantity" validate:"required,gt=0"`
	WorkID         int64 `json:"work_id" validate:"required,min=1"`
}

// ExpenseRequest - данные затраты
type ExpenseRequest struct {
	ExpenseType string `json:"expense_type" validate:"required,min=1,max=200"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	WorkID      *int64 `json:"work_id" validate:"omitempty,min=1"`
}

// Ответы для сущностей с производными значениями. Справочные сущности
// отдаются доменными моделями напрямую.

// HarvestResponse - урожай с полной стоимостью и доступным остатком
type HarvestResponse struct {
	ID                int64           `json:"id"`
	FieldID           int64           `json:"field_id"`
	CultureID         int64           `json:"culture_id"`
	HarvestDate       string          `json:"harvest_date"`
	Volume            int64           `json:"volume"`
	PricePerKg        int64           `json:"price_per_kg"`
	TotalValue        int64           `json:"total_value"`
	AvailableQuantity int64           `json:"available_quantity"`
	Field             *domain.Field   `json:"field,omitempty"`
	Culture           *domain.Culture `json:"culture,omitempty"`
}

// SaleResponse - продажа с суммой и признаком контракта
type SaleResponse struct {
	ID           int64           `json:"id"`
	ClientID     int64           `json:"client_id"`
	HarvestID    int64           `json:"harvest_id"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    int64           `json:"unit_price"`
	TotalAmount  int64           `json:"total_amount"`
	IsContract   bool            `json:"is_contract"`
	ContractDate *string         `json:"contract_date,omitempty"`
	DeliveryDate *string         `json:"delivery_date,omitempty"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	CreatedDate  time.Time       `json:"created_date"`
	Client       *domain.Client  `json:"client,omitempty"`
	Harvest      *domain.Harvest `json:"harvest,omitempty"`
}

// PurchaseResponse - закупка со стоимостью и признаком контракта
type PurchaseResponse struct {
	ID           int64                `json:"id"`
	MaterialID   int64                `json:"material_id"`
	SupplierID   int64                `json:"supplier_id"`
	Date         string               `json:"date"`
	Quantity     int64                `json:"quantity"`
	UnitPrice    int64                `json:"unit_price"`
	TotalCost    int64                `json:"total_cost"`
	IsContract   bool                 `json:"is_contract"`
	ContractDate *string              `json:"contract_date,omitempty"`
	DeliveryDate *string              `json:"delivery_date,omitempty"`
	Status       string               `json:"status"`
	Notes        string               `json:"notes,omitempty"`
	Material     *domain.MaterialType `json:"material,omitempty"`
	Supplier     *domain.Supplier     `json:"supplier,omitempty"`
}

// WorkResponse - работа с рассчитанной стоимостью
type WorkResponse struct {
	ID          int64             `json:"id"`
	WorkTypeID  int64             `json:"work_type_id"`
	FieldID     int64             `json:"field_id"`
	TechniqueID *int64            `json:"technique_id,omitempty"`
	EmployeeID  *int64            `json:"employee_id,omitempty"`
	Date        string            `json:"date"`
	Duration    int64             `json:"duration"`
	Cost        int64             `json:"cost"`
	WorkType    *domain.WorkType  `json:"work_type,omitempty"`
	Field       *domain.Field     `json:"field,omitempty"`
	Technique   *domain.Technique `json:"technique,omitempty"`
	Employee    *domain.Employee  `json:"employee,omitempty"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
