package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// LineStats is the delivery progress of one order line.
type LineStats struct {
	LineID          string `json:"lineID"`
	Description     string `json:"description"`
	Requested       int64  `json:"requested"`
	Received        int64  `json:"received"`
	Remaining       int64  `json:"remaining"`
	PercentReceived int64  `json:"percentReceived"`
}

// FulfillmentStats is the read-only progress view of an order. It is never stored.
type FulfillmentStats struct {
	OrderID        string      `json:"orderID"`
	Lines          []LineStats `json:"lines"`
	TotalRequested int64       `json:"totalRequested"`
	TotalReceived  int64       `json:"totalReceived"`
	PercentGlobal  int64       `json:"percentGlobal"`
	ReceptionCount int         `json:"receptionCount"`
	Status         OrderStatus `json:"status"`
}

// Percent rounds received/requested*100 half away from zero. It is 0 when requested is 0.
// Unlike a plain round, a partial quantity is clamped into 1..99: 1/1000 reads 1 rather than 0
// and 999/1000 reads 99 rather than 100, so the status derived from the percentage never says
// Pending or Delivered while the quantities say otherwise.
func Percent(received, requested int64) int64 {
	if requested <= 0 || received <= 0 {
		return 0
	}
	if received >= requested {
		return 100
	}
	p := decimal.NewFromInt(received).Mul(hundred).Div(decimal.NewFromInt(requested)).Round(0).IntPart()
	switch {
	case p >= 100:
		return 99
	case p <= 0:
		return 1
	}
	return p
}

// SaturatingAdd adds two non-negative quantities, clamping at math.MaxInt64 instead of wrapping.
func SaturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// StatusForPercent maps a global percentage to the quantity-derived status.
func StatusForPercent(percentGlobal int64) OrderStatus {
	switch {
	case percentGlobal <= 0:
		return OrderPending
	case percentGlobal >= 100:
		return OrderDelivered
	default:
		return OrderPartiallyDelivered
	}
}

// DeriveOrderStatus is the quantity-derived status of a set of lines.
func DeriveOrderStatus(lines []OrderLine) OrderStatus {
	var requested, received int64
	for _, l := range lines {
		requested = SaturatingAdd(requested, l.Quantity)
		received = SaturatingAdd(received, l.ReceivedQuantity)
	}
	return StatusForPercent(Percent(received, requested))
}

// ComputeFulfillment is the single place percentages and the derived status are computed.
func ComputeFulfillment(order PurchaseOrder, receptionCount int) FulfillmentStats {
	stats := FulfillmentStats{
		OrderID:        order.OrderID,
		Lines:          make([]LineStats, 0, len(order.Lines)),
		ReceptionCount: receptionCount,
	}
	for _, l := range order.Lines {
		stats.Lines = append(stats.Lines, LineStats{
			LineID:          l.LineID,
			Description:     l.Description,
			Requested:       l.Quantity,
			Received:        l.ReceivedQuantity,
			Remaining:       l.Remaining(),
			PercentReceived: Percent(l.ReceivedQuantity, l.Quantity),
		})
		stats.TotalRequested = SaturatingAdd(stats.TotalRequested, l.Quantity)
		stats.TotalReceived = SaturatingAdd(stats.TotalReceived, l.ReceivedQuantity)
	}
	stats.PercentGlobal = Percent(stats.TotalReceived, stats.TotalRequested)
	stats.Status = StatusForPercent(stats.PercentGlobal)
	if order.IsCancelled() {
		stats.Status = OrderCancelled
	}
	return stats
}
