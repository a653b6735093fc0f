package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var receptionCmd = &cobra.Command{
	Use:   "reception",
	Short: "Inspect receptions and mark confirmations",
}

var receptionListCmd = &cobra.Command{
	Use:   "list [order-id]",
	Short: "List the receptions of an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		actor, err := operator(cmd)
		if err != nil {
			return err
		}
		return withServices(ctx, func(svc *portssvc.ServiceContainer) error {
			receptions, err := svc.Reception.ListReceptionsByOrder(ctx, actor, args[0])
			if err != nil {
				return fmt.Errorf("failed to list receptions: %w", err)
			}
			renderReceptions(cmd.OutOrStdout(), receptions)
			return nil
		})
	},
}

var receptionConfirmCmd = &cobra.Command{
	Use:   "confirm [reception-id]",
	Short: "Record that the confirmation document was generated",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		actor, err := operator(cmd)
		if err != nil {
			return err
		}
		return withServices(ctx, func(svc *portssvc.ServiceContainer) error {
			reception, err := svc.Reception.MarkConfirmationGenerated(ctx, actor, args[0])
			if err != nil {
				return fmt.Errorf("failed to confirm reception: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Confirmation generated for %s\n",
				color.New(color.FgGreen).Sprint("✓"), dto.FormatNumber(dto.ReceptionNumberPrefix, reception.Number))
			return nil
		})
	},
}

func renderReceptions(w io.Writer, receptions []domain.Reception) {
	if len(receptions) == 0 {
		fmt.Fprintln(w, "No receptions found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tID\tRECEIVED AT\tRECEIVED\tACCEPTED\tCONFIRMED")
	fmt.Fprintln(tw, "------\t--\t-----------\t--------\t--------\t---------")
	for _, r := range receptions {
		var received, accepted int64
		for _, l := range r.Lines {
			received += l.QuantityReceived
			accepted += l.QuantityAccepted
		}
		confirmed := color.New(color.FgYellow).Sprint("no")
		if r.ConfirmationGenerated {
			confirmed = color.New(color.FgGreen).Sprint("yes")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			dto.FormatNumber(dto.ReceptionNumberPrefix, r.Number), r.ReceptionID,
			r.ReceivedAt.Format("2006-01-02 15:04"), received, accepted, confirmed)
	}
	tw.Flush()
}

func init() {
	for _, c := range []*cobra.Command{receptionListCmd, receptionConfirmCmd} {
		c.Flags().String(actorFlag, "", "Administrator ID the action is recorded under")
	}
	receptionCmd.AddCommand(receptionListCmd)
	receptionCmd.AddCommand(receptionConfirmCmd)
}

// ReceptionCmd returns the reception command
func ReceptionCmd() *cobra.Command {
	return receptionCmd
}
