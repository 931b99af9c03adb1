package dto

import (
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// SummaryParams are the query parameters of the range summary endpoint.
type SummaryParams struct {
	StartDate      string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string `form:"end_date" binding:"required,datetime=2006-01-02"`
	OutletID       string `form:"outlet_id"`
	DailyBreakdown bool   `form:"daily_breakdown"`
}

// PaymentMethodTotalsResponse is one group of the per-payment-method
// breakdown. QRISFees is non-zero only for the qris group.
type PaymentMethodTotalsResponse struct {
	PaymentMethod string `json:"payment_method"`
	Count         int64  `json:"count"`
	Total         int64  `json:"total"`
	QRISFees      int64  `json:"qris_fees"`
}

// DailyBreakdownResponse is one calendar day of a range summary.
type DailyBreakdownResponse struct {
	Date           string `json:"date"`
	OpeningBalance int64  `json:"opening_balance"`
	Expenses       int64  `json:"expenses"`
	CashSales      int64  `json:"cash_sales"`
	QRISSales      int64  `json:"qris_sales"`
	QRISFee        int64  `json:"qris_fee"`
	TotalSales     int64  `json:"total_sales"`
	ClosingBalance int64  `json:"closing_balance"`
}

// SummaryResponse is the range reconciliation report.
type SummaryResponse struct {
	StartDate          string                        `json:"start_date"`
	EndDate            string                        `json:"end_date"`
	TotalRevenue       int64                         `json:"total_revenue"`
	TotalDiscount      int64                         `json:"total_discount"`
	TotalTax           int64                         `json:"total_tax"`
	TotalServiceCharge int64                         `json:"total_service_charge"`
	TotalSubTotal      int64                         `json:"total_subtotal"`
	OpeningBalance     int64                         `json:"opening_balance"`
	Expenses           int64                         `json:"expenses"`
	CashSales          int64                         `json:"cash_sales"`
	QRISSales          int64                         `json:"qris_sales"`
	QRISFee            int64                         `json:"qris_fee"`
	BeverageSales      int64                         `json:"beverage_sales"`
	ClosingBalance     int64                         `json:"closing_balance"`
	PaymentMethods     []PaymentMethodTotalsResponse `json:"payment_methods"`
	DailyBreakdown     []DailyBreakdownResponse      `json:"daily_breakdown,omitempty"`
}

// ToSummaryResponse converts a domain.RangeSummary to its API shape.
func ToSummaryResponse(summary *domain.RangeSummary) SummaryResponse {
	methods := make([]PaymentMethodTotalsResponse, len(summary.PaymentMethods))
	for i, m := range summary.PaymentMethods {
		methods[i] = PaymentMethodTotalsResponse{
			PaymentMethod: string(m.PaymentMethod),
			Count:         m.Count,
			Total:         m.Total,
			QRISFees:      m.QRISFees,
		}
	}

	resp := SummaryResponse{
		StartDate:          summary.StartDate.Format(domain.DateFormat),
		EndDate:            summary.EndDate.Format(domain.DateFormat),
		TotalRevenue:       summary.Sales.TotalRevenue,
		TotalDiscount:      summary.Sales.TotalDiscount,
		TotalTax:           summary.Sales.TotalTax,
		TotalServiceCharge: summary.Sales.TotalServiceCharge,
		TotalSubTotal:      summary.Sales.TotalSubTotal,
		OpeningBalance:     summary.OpeningBalance,
		Expenses:           summary.Expenses,
		CashSales:          summary.Sales.CashSales,
		QRISSales:          summary.Sales.QRISSales,
		QRISFee:            summary.Sales.QRISFee,
		BeverageSales:      summary.BeverageSales,
		ClosingBalance:     summary.ClosingBalance,
		PaymentMethods:     methods,
	}

	if summary.DailyBreakdown != nil {
		resp.DailyBreakdown = ToDailyBreakdownResponse(summary.DailyBreakdown)
	}
	return resp
}

// ToDailyBreakdownResponse converts breakdown entries to their API shape.
func ToDailyBreakdownResponse(entries []domain.DailyBreakdownEntry) []DailyBreakdownResponse {
	res := make([]DailyBreakdownResponse, len(entries))
	for i, e := range entries {
		res[i] = DailyBreakdownResponse{
			Date:           e.Date.Format(domain.DateFormat),
			OpeningBalance: e.OpeningBalance,
			Expenses:       e.Expenses,
			CashSales:      e.CashSales,
			QRISSales:      e.QRISSales,
			QRISFee:        e.QRISFee,
			TotalSales:     e.TotalSales,
			ClosingBalance: e.ClosingBalance,
		}
	}
	return res
}
