package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/SscSPs/procurement_tracker/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Inspect and manage purchase orders",
}

var orderShowCmd = &cobra.Command{
	Use:   "show [order-id]",
	Short: "Show an order with its totals and delivery progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		actor, err := operator(cmd)
		if err != nil {
			return err
		}
		return withServices(ctx, func(svc *portssvc.ServiceContainer) error {
			order, err := svc.PurchaseOrder.GetPurchaseOrder(ctx, actor, args[0])
			if err != nil {
				return fmt.Errorf("order not found: %w", err)
			}
			stats, err := svc.PurchaseOrder.GetFulfillmentStats(ctx, actor, args[0])
			if err != nil {
				return fmt.Errorf("failed to compute progress: %w", err)
			}
			renderOrder(cmd.OutOrStdout(), order, stats, svc.PurchaseOrder.CurrencyPlaces())
			return nil
		})
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		actor, err := operator(cmd)
		if err != nil {
			return err
		}
		status, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")

		params := dto.ListPurchaseOrdersParams{ListParams: dto.ListParams{Limit: limit}}
		if status != "" {
			params.Status = &status
		}
		return withServices(ctx, func(svc *portssvc.ServiceContainer) error {
			resp, err := svc.PurchaseOrder.ListPurchaseOrders(ctx, actor, params)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}
			renderOrderList(cmd.OutOrStdout(), resp.Orders, svc.PurchaseOrder.CurrencyPlaces())
			return nil
		})
	},
}

var orderCancelCmd = &cobra.Command{
	Use:   "cancel [order-id]",
	Short: "Cancel an order so no further receptions are accepted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		actor, err := operator(cmd)
		if err != nil {
			return err
		}
		return withServices(ctx, func(svc *portssvc.ServiceContainer) error {
			order, err := svc.PurchaseOrder.CancelPurchaseOrder(ctx, actor, args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel order: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Cancelled %s\n",
				color.New(color.FgGreen).Sprint("✓"), dto.FormatNumber(dto.OrderNumberPrefix, order.Number))
			return nil
		})
	},
}

func statusColor(s domain.OrderStatus) *color.Color {
	switch s {
	case domain.OrderDelivered:
		return color.New(color.FgGreen)
	case domain.OrderPartiallyDelivered:
		return color.New(color.FgYellow)
	case domain.OrderCancelled:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}

func renderOrder(w io.Writer, order *domain.PurchaseOrder, stats *domain.FulfillmentStats, places int32) {
	totals := dto.ToTotalsResponse(order.Totals(), places)

	fmt.Fprintf(w, "Order: %s (%s)\n", dto.FormatNumber(dto.OrderNumberPrefix, order.Number), order.OrderID)
	fmt.Fprintf(w, "Expression: %s\n", order.ExpressionID)
	if order.SupplierName != nil {
		fmt.Fprintf(w, "Supplier: %s\n", *order.SupplierName)
	}
	fmt.Fprintf(w, "Status: %s\n", statusColor(order.Status).Sprint(order.Status))
	fmt.Fprintf(w, "Progress: %d%% (%d/%d) over %d reception(s)\n",
		stats.PercentGlobal, stats.TotalReceived, stats.TotalRequested, stats.ReceptionCount)
	fmt.Fprintf(w, "Subtotal: %s  Discount: %s  Tax: %s  Total: %s\n",
		totals.Subtotal, totals.DiscountAmount, totals.TaxAmount, utils.FormatWithPrecision(totals.Total, places))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tDESCRIPTION\tQTY\tRECEIVED\tREMAINING\t%")
	fmt.Fprintln(tw, "----\t-----------\t---\t--------\t---------\t-")
	for _, l := range stats.Lines {
		desc := l.Description
		if len(desc) > 40 {
			desc = desc[:37] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", l.LineID, desc, l.Requested, l.Received, l.Remaining, l.PercentReceived)
	}
	tw.Flush()
}

func renderOrderList(w io.Writer, orders []dto.PurchaseOrderResponse, places int32) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tID\tEXPRESSION\tSTATUS\tTOTAL")
	fmt.Fprintln(tw, "------\t--\t----------\t------\t-----")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", o.DisplayNumber, o.OrderID, o.ExpressionID, o.Status, utils.FormatWithPrecision(o.Totals.Total, places))
	}
	tw.Flush()
}

func init() {
	for _, c := range []*cobra.Command{orderShowCmd, orderListCmd, orderCancelCmd} {
		c.Flags().String(actorFlag, "", "Administrator ID the action is recorded under")
	}
	orderListCmd.Flags().String("status", "", "Filter by status")
	orderListCmd.Flags().Int("limit", 20, "Maximum number of orders")

	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderCancelCmd)
}

// OrderCmd returns the order command
func OrderCmd() *cobra.Command {
	return orderCmd
}
