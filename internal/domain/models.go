package domain

import (
	"time"
)

// Field представляет поле (земельный участок)
type Field struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"type:varchar(200);not null"`
	Area     int64  `json:"area" gorm:"not null"`
	SoilType string `json:"soil_type" gorm:"type:varchar(100);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Field) TableName() string {
	return "fields"
}

// Culture представляет сельскохозяйственную культуру
type Culture struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"type:varchar(200);not null"`
	Seasonality  string `json:"seasonality" gorm:"type:varchar(100);not null"`
	AverageYield int64  `json:"average_yield" gorm:"not null"`
}

// TableName задаёт имя таблицы для GORM
func (Culture) TableName() string {
	return "cultures"
}

// Planting представляет посев культуры на поле
type Planting struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FieldID    int64     `json:"field_id" gorm:"not null;index"`
	CultureID  int64     `json:"culture_id" gorm:"not null;index"`
	SowingDate time.Time `json:"sowing_date" gorm:"type:date;not null"`

	Field   *Field   `json:"field,omitempty" gorm:"foreignKey:FieldID"`
	Culture *Culture `json:"culture,omitempty" gorm:"foreignKey:CultureID"`
}

// TableName задаёт имя таблицы для GORM
func (Planting) TableName() string {
	return "plantings"
}

// Harvest представляет собранный урожай одной культуры с одного поля.
// AvailableQuantity - вычисляемое значение (объём минус проданное),
// заполняется агрегирующим запросом и в таблице не хранится.
type Harvest struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FieldID     int64     `json:"field_id" gorm:"not null;index"`
	CultureID   int64     `json:"culture_id" gorm:"not null;index"`
	HarvestDate time.Time `json:"harvest_date" gorm:"type:date;not null"`
	Volume      int64     `json:"volume" gorm:"not null"`
	PricePerKg  int64     `json:"price_per_kg" gorm:"not null"`

	AvailableQuantity int64 `json:"available_quantity" gorm:"->;-:migration"`

	Field   *Field   `json:"field,omitempty" gorm:"foreignKey:FieldID"`
	Culture *Culture `json:"culture,omitempty" gorm:"foreignKey:CultureID"`
}

// TableName задаёт имя таблицы для GORM
func (Harvest) TableName() string {
	return "harvests"
}

// Client представляет покупателя (компанию)
type Client struct {
	ID            int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyName   string  `json:"company_name" gorm:"type:varchar(200);not null"`
	ContactPerson string  `json:"contact_person" gorm:"type:varchar(200);not null"`
	Phone         string  `json:"phone" gorm:"type:varchar(30);not null"`
	Email         *string `json:"email,omitempty" gorm:"type:varchar(200)"`

	Sales []Sale `json:"sales,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName задаёт имя таблицы для GORM
func (Client) TableName() string {
	return "clients"
}

// Статусы продаж и закупок. Хранятся как текст, перечень не закрыт.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Sale представляет продажу (или контракт) части урожая клиенту.
// Контрактом считается запись с заполненной датой контракта.
type Sale struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID     int64      `json:"client_id" gorm:"not null;index"`
	HarvestID    int64      `json:"harvest_id" gorm:"not null;index"`
	Quantity     int64      `json:"quantity" gorm:"not null"`
	UnitPrice    int64      `json:"unit_price" gorm:"not null"`
	ContractDate *time.Time `json:"contract_date,omitempty" gorm:"type:date"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty" gorm:"type:date"`
	Status       string     `json:"status" gorm:"type:varchar(50);not null;default:Active"`
	Notes        string     `json:"notes" gorm:"type:text"`
	CreatedDate  time.Time  `json:"created_date" gorm:"autoCreateTime"`

	Client  *Client  `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Harvest *Harvest `json:"harvest,omitempty" gorm:"foreignKey:HarvestID"`
}

// TableName задаёт имя таблицы для GORM
func (Sale) TableName() string {
	return "sales"
}

// Employee представляет работника хозяйства
type Employee struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName string `json:"full_name" gorm:"type:varchar(200);not null"`
	Phone    string `json:"phone" gorm:"type:varchar(30);not null"`
	Position string `json:"position" gorm:"type:varchar(200);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Technique представляет единицу техники с почасовой стоимостью использования
type Technique struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:varchar(200);not null"`
	Type      string `json:"type" gorm:"type:varchar(100);not null"`
	UsageCost int64  `json:"usage_cost" gorm:"not null"`
	Condition string `json:"condition" gorm:"type:varchar(50);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Technique) TableName() string {
	return "techniques"
}

// MaterialType представляет вид материала (семена, удобрения, топливо и т.д.)
type MaterialType struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(200);not null"`
	Type string `json:"type" gorm:"type:varchar(100);not null"`
	Unit string `json:"unit" gorm:"type:varchar(20);not null"`
}

// TableName задаёт имя таблицы для GORM
func (MaterialType) TableName() string {
	return "material_types"
}

// Supplier представляет поставщика материалов
type Supplier struct {
	ID            int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string `json:"name" gorm:"type:varchar(200);not null"`
	ContactPerson string `json:"contact_person" gorm:"type:varchar(200);not null"`
	Phone         string `json:"phone" gorm:"type:varchar(30);not null"`
	ProductType   string `json:"product_type" gorm:"type:varchar(200);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// Purchase представляет закупку материала у поставщика
type Purchase struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	MaterialID   int64      `json:"material_id" gorm:"not null;index"`
	SupplierID   int64      `json:"supplier_id" gorm:"not null;index"`
	Date         time.Time  `json:"date" gorm:"type:date;not null"`
	Quantity     int64      `json:"quantity" gorm:"not null"`
	UnitPrice    int64      `json:"unit_price" gorm:"not null"`
	ContractDate *time.Time `json:"contract_date,omitempty" gorm:"type:date"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty" gorm:"type:date"`
	Status       string     `json:"status" gorm:"type:varchar(50);not null;default:Active"`
	Notes        string     `json:"notes" gorm:"type:text"`

	Material *MaterialType `json:"material,omitempty" gorm:"foreignKey:MaterialID"`
	Supplier *Supplier     `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

// TableName задаёт имя таблицы для GORM
func (Purchase) TableName() string {
	return "purchases"
}

// WorkType - справочник видов работ
type WorkType struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(200);not null"`
}

// TableName задаёт имя таблицы для GORM
func (WorkType) TableName() string {
	return "work_types"
}

// Work представляет выполненную работу на поле.
// Техника и работник могут быть не назначены.
type Work struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WorkTypeID  int64     `json:"work_type_id" gorm:"not null;index"`
	FieldID     int64     `json:"field_id" gorm:"not null;index"`
	TechniqueID *int64    `json:"technique_id,omitempty" gorm:"index"`
	EmployeeID  *int64    `json:"employee_id,omitempty" gorm:"index"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Duration    int64     `json:"duration" gorm:"not null"`

	WorkType  *WorkType  `json:"work_type,omitempty" gorm:"foreignKey:WorkTypeID"`
	Field     *Field     `json:"field,omitempty" gorm:"foreignKey:FieldID"`
	Technique *Technique `json:"technique,omitempty" gorm:"foreignKey:TechniqueID"`
	Employee  *Employee  `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Work) TableName() string {
	return "works"
}

// MaterialUsage представляет расход материала на работу
type MaterialUsage struct {
	ID             int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	MaterialTypeID int64 `json:"material_type_id" gorm:"not null;index"`
	Quantity       int64 `json:"quantity" gorm:"not null"`
	WorkID         int64 `json:"work_id" gorm:"not null;index"`

	MaterialType *MaterialType `json:"material_type,omitempty" gorm:"foreignKey:MaterialTypeID"`
	Work         *Work         `json:"work,omitempty" gorm:"foreignKey:WorkID"`
}

// TableName задаёт имя таблицы для GORM
func (MaterialUsage) TableName() string {
	return "material_usages"
}

// Expense представляет денежную затрату, опционально привязанную к работе
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ExpenseType string    `json:"expense_type" gorm:"type:varchar(200);not null"`
	Amount      int64     `json:"amount" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	WorkID      *int64    `json:"work_id,omitempty" gorm:"index"`

	Work *Work `json:"work,omitempty" gorm:"foreignKey:WorkID"`
}

// TableName задаёт имя таблицы для GORM
func (Expense) TableName() string {
	return "expenses"
}
