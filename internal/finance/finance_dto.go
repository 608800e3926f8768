package finance

import "go-garment-store/internal/backend"

type ReportRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Type      string `json:"type,omitempty" validate:"omitempty,oneof=pemasukan pengeluaran"`
}

// ReportView merangkum entri keuangan backend: total pemasukan,
// pengeluaran, dan saldo dihitung di sini dengan decimal.
type ReportView struct {
	Entries      []backend.FinanceEntry `json:"entries"`
	TotalIncome  string                 `json:"totalIncome"`
	TotalExpense string                 `json:"totalExpense"`
	Balance      string                 `json:"balance"`
}

type UsersCountResponse struct {
	Count int64 `json:"count"`
}

// CustomerLocation: titik peta sebaran customer di dashboard admin.
type CustomerLocation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
