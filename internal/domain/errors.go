package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrFieldNotFound         = errors.New("field not found")
	ErrCultureNotFound       = errors.New("culture not found")
	ErrPlantingNotFound      = errors.New("planting not found")
	ErrHarvestNotFound       = errors.New("harvest not found")
	ErrClientNotFound        = errors.New("client not found")
	ErrSaleNotFound          = errors.New("sale not found")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrTechniqueNotFound     = errors.New("technique not found")
	ErrMaterialTypeNotFound  = errors.New("material type not found")
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrPurchaseNotFound      = errors.New("purchase not found")
	ErrWorkTypeNotFound      = errors.New("work type not found")
	ErrWorkNotFound          = errors.New("work not found")
	ErrMaterialUsageNotFound = errors.New("material usage not found")
	ErrExpenseNotFound       = errors.New("expense not found")

	ErrInsufficientQuantity = errors.New("requested quantity exceeds available harvest quantity")
	ErrVolumeBelowSold      = errors.New("harvest volume is below quantity already sold")
)
