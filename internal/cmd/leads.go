package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/flexxoo/website/domain/email"
	"github.com/flexxoo/website/domain/leads"
	"github.com/flexxoo/website/internal/config"
	"github.com/flexxoo/website/pkg/logger"
)

const timestampLayout = "2006-01-02 15:04"

var leadsKind string

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect locally retained leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List retained demo requests or contact messages",
	Long: `List the leads kept in the local store, oldest first.

The badger store allows a single process at a time, so stop the server
before listing its data directory.`,
	Args: cobra.NoArgs,
	RunE: runLeadsList,
}

func runLeadsList(cmd *cobra.Command, args []string) error {
	var svc *leads.Service
	app := fx.New(
		fx.NopLogger,
		fx.Supply(logger.Discard()),
		fx.Provide(func() prometheus.Registerer { return prometheus.NewRegistry() }),
		config.Module,
		email.Module,
		leads.Module,
		fx.Populate(&svc),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return listLeads(ctx, cmd.OutOrStdout(), svc, leadsKind)
}

func listLeads(ctx context.Context, w io.Writer, svc *leads.Service, kind string) error {
	switch kind {
	case "demo":
		rows, err := svc.DemoRequests(ctx)
		if err != nil {
			return err
		}
		return renderDemoRequests(w, rows)
	case "contact":
		rows, err := svc.ContactMessages(ctx)
		if err != nil {
			return err
		}
		return renderContactMessages(w, rows)
	default:
		return fmt.Errorf("unknown kind %q (want demo or contact)", kind)
	}
}

func renderDemoRequests(w io.Writer, rows []leads.StoredDemoRequest) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Received", "Name", "Email", "Phone", "Clinic", "Time Slot")
	for _, r := range rows {
		table.Append(
			r.ID,
			r.Timestamp.Format(timestampLayout),
			r.Name,
			r.Email,
			lo.CoalesceOrEmpty(r.Phone, "-"),
			lo.CoalesceOrEmpty(r.ClinicName, "-"),
			lo.CoalesceOrEmpty(r.TimeSlot, "-"),
		)
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d demo request(s)\n", len(rows))
	return err
}

func renderContactMessages(w io.Writer, rows []leads.StoredContactMessage) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Received", "Name", "Email", "Phone", "Subject")
	for _, r := range rows {
		table.Append(
			r.ID,
			r.Timestamp.Format(timestampLayout),
			r.Name,
			r.Email,
			lo.CoalesceOrEmpty(r.Phone, "-"),
			r.Subject,
		)
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d contact message(s)\n", len(rows))
	return err
}

func init() {
	leadsListCmd.Flags().StringVar(&leadsKind, "kind", "demo", "lead kind to list: demo or contact")
	leadsCmd.AddCommand(leadsListCmd)
	rootCmd.AddCommand(leadsCmd)
}
