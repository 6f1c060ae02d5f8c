package domain

// Производные значения. Чистые функции без побочных эффектов и I/O,
// все суммы считаются в int64.

// TotalAmount возвращает сумму продажи (количество * цена за единицу)
func (s *Sale) TotalAmount() int64 {
	return s.Quantity * s.UnitPrice
}

// IsContract сообщает, является ли продажа контрактом.
// Признак контракта - только наличие даты контракта.
func (s *Sale) IsContract() bool {
	return s.ContractDate != nil
}

// TotalCost возвращает стоимость закупки (количество * цена за единицу)
func (p *Purchase) TotalCost() int64 {
	return p.Quantity * p.UnitPrice
}

// IsContract сообщает, является ли закупка контрактом
func (p *Purchase) IsContract() bool {
	return p.ContractDate != nil
}

// TotalValue возвращает полную стоимость урожая (объём * цена за кг)
func (h *Harvest) TotalValue() int64 {
	return h.Volume * h.PricePerKg
}

// Cost возвращает стоимость работы: почасовая стоимость техники,
// умноженная на длительность. Без назначенной техники работа бесплатна.
func (w *Work) Cost() int64 {
	if w.Technique == nil {
		return 0
	}
	return w.Technique.UsageCost * w.Duration
}
