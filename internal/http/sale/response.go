package sale

import (
	"time"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/notify"
	"github.com/waserda/kasir/internal/sale"
)

type saleResponse struct {
	ID          uuid.UUID      `json:"id"`
	Date        string         `json:"sale_date"`
	BuyerID     *uuid.UUID     `json:"buyer_id,omitempty"`
	BuyerName   string         `json:"buyer_name"`
	TotalAmount int64          `json:"total_amount"`
	TotalCost   int64          `json:"total_cost"`
	TotalProfit int64          `json:"total_profit"`
	Paid        int64          `json:"paid_amount"`
	Change      int64          `json:"change_amount"`
	Status      sale.Status    `json:"wa_status"`
	SentAt      *time.Time     `json:"wa_sent_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	Items       []lineResponse `json:"items,omitempty"`
}

type lineResponse struct {
	Name      string `json:"item_name"`
	CostPrice int64  `json:"cost_price"`
	SalePrice int64  `json:"sale_price"`
	Qty       int64  `json:"qty"`
	Total     int64  `json:"line_total"`
	Profit    int64  `json:"line_profit"`
}

type notificationResponse struct {
	Outcome notify.Outcome `json:"outcome"`
	Status  sale.Status    `json:"status"`
	Error   string         `json:"error,omitempty"`
}

type createSaleResponse struct {
	SaleID       uuid.UUID            `json:"sale_id"`
	TotalAmount  int64                `json:"total_amount"`
	TotalCost    int64                `json:"total_cost"`
	TotalProfit  int64                `json:"total_profit"`
	Paid         int64                `json:"paid_amount"`
	Change       int64                `json:"change_amount"`
	Notification notificationResponse `json:"notification"`
}

type resendResponse struct {
	OK     bool        `json:"ok"`
	Status sale.Status `json:"status"`
	Error  string      `json:"error,omitempty"`
}

func toResponse(s *sale.Sale) saleResponse {
	resp := saleResponse{
		ID:          s.ID,
		Date:        s.Date.Format(time.DateOnly),
		BuyerID:     s.BuyerID,
		BuyerName:   s.BuyerName,
		TotalAmount: s.TotalAmount,
		TotalCost:   s.TotalCost,
		TotalProfit: s.TotalProfit,
		Paid:        s.Paid,
		Change:      s.Change,
		Status:      s.Status,
		SentAt:      s.SentAt,
		CreatedAt:   s.CreatedAt,
	}

	for _, l := range s.Lines {
		resp.Items = append(resp.Items, lineResponse{
			Name:      l.Name,
			CostPrice: l.CostPrice,
			SalePrice: l.SalePrice,
			Qty:       l.Qty,
			Total:     l.Total,
			Profit:    l.Profit,
		})
	}

	return resp
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, 0, len(sales))
	for _, s := range sales {
		resp = append(resp, toResponse(s))
	}

	return resp
}

func toNotification(res notify.Result) notificationResponse {
	n := notificationResponse{Outcome: res.Outcome, Status: res.Status}
	if res.Err != nil {
		n.Error = res.Err.Error()
	}

	return n
}
