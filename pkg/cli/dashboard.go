package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/cli/config"
	controller "github.com/secmon-lab/surveyor/pkg/controller/http"
	"github.com/secmon-lab/surveyor/pkg/controller/terminal"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/service/chart"
	"github.com/secmon-lab/surveyor/pkg/usecase"
	"github.com/secmon-lab/surveyor/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdDashboard(stateCfg *config.State, out io.Writer) *cli.Command {
	var (
		endpointCfg  config.Endpoint
		dashboardCfg config.Dashboard
		slackCfg     config.Slack
	)

	flags := joinFlags(
		endpointCfg.Flags(),
		dashboardCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "dashboard",
		Usage: "Show the aggregated survey results",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Info("Rendering dashboard",
				slog.Any("state", *stateCfg),
				slog.Any("endpoint", endpointCfg),
				slog.Any("dashboard", dashboardCfg),
				slog.Any("slack", slackCfg),
			)

			store, tracker, err := openState(ctx, stateCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := endpointCfg.Configure(store)
			if err != nil {
				return err
			}

			return renderDashboard(ctx, tracker, client, &dashboardCfg, &slackCfg, out)
		},
	}
}

// renderDashboard draws the aggregate charts to every configured sink and,
// with a preview address, serves them until interrupted
func renderDashboard(
	ctx context.Context,
	tracker *usecase.Tracker,
	api interfaces.SurveyAPI,
	dashboardCfg *config.Dashboard,
	slackCfg *config.Slack,
	out io.Writer,
) error {
	logger := ctxlog.From(ctx)

	sinks := chart.MultiSink{terminal.NewTextSink(out)}

	if dashboardCfg.ChartDir != "" {
		fileSink, err := chart.NewFileSink(dashboardCfg.ChartDir)
		if err != nil {
			return err
		}
		sinks = append(sinks, fileSink)
	}

	var gallery *chart.Gallery
	if dashboardCfg.PreviewAddr != "" {
		gallery = chart.NewGallery()
		sinks = append(sinks, gallery)
	}

	slackSink, err := slackCfg.ConfigureOptional(logger)
	if err != nil {
		return err
	}
	var background *chart.BackgroundSink
	if slackSink != nil {
		background = chart.NewBackgroundSink(slackSink)
		sinks = append(sinks, background)
	}

	report, err := usecase.NewAggregateRenderer(tracker, api, sinks).Render(ctx)
	if background != nil {
		if waitErr := background.Wait(); waitErr != nil {
			// Slack is a side channel; the dashboard itself was drawn
			apperr.Handle(ctx, goerr.Wrap(waitErr, "failed to post results to Slack"))
		}
	}
	if err != nil {
		writeln(out, apperr.Notice(err))
		if errors.Is(err, model.ErrAggregateFetchFailed) {
			apperr.Handle(ctx, err)
			return nil
		}
		return err
	}

	if report.Status == model.DashboardSkipped {
		return nil
	}

	if dashboardCfg.ChartDir != "" {
		writeln(out, "Charts written to", dashboardCfg.ChartDir)
	}

	if gallery == nil {
		return nil
	}

	server, err := controller.NewServer(ctx, dashboardCfg.PreviewAddr, gallery)
	if err != nil {
		return goerr.Wrap(err, "failed to create preview server")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	writeln(out, "Dashboard preview at http://"+dashboardCfg.PreviewAddr+"/dashboard (Ctrl+C to stop)")
	return server.Serve(ctx)
}
