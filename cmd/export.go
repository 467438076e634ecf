package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"synaudit/internal/config"
	"synaudit/internal/exporter"
	"synaudit/internal/log"
	"synaudit/internal/source/live"
)

var (
	exportInterface string
	exportListen    string
	exportBPF       string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Capture live traffic and expose handshake metrics for Prometheus",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInterface, "interface", "i", "",
		"network interface to capture from")
	exportCmd.Flags().StringVar(&exportListen, "listen", "",
		"metrics listen address (default from config, :9469)")
	exportCmd.Flags().StringVar(&exportBPF, "bpf", "",
		"bpf capture filter (default from config, \"tcp\")")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Log); err != nil {
		return err
	}

	capture := cfg.Export.Capture
	if cmd.Flags().Changed("interface") {
		capture.Interface = exportInterface
	}
	if cmd.Flags().Changed("bpf") {
		capture.BPF = exportBPF
	}
	listen := cfg.Export.Listen
	if cmd.Flags().Changed("listen") {
		listen = exportListen
	}

	var timeout time.Duration
	if capture.Timeout != "" {
		timeout, err = time.ParseDuration(capture.Timeout)
		if err != nil {
			return fmt.Errorf("invalid capture timeout: %w", err)
		}
	}

	src, err := live.NewSource(live.Config{
		Interface:   capture.Interface,
		Snaplen:     capture.Snaplen,
		Promiscuous: capture.Promiscuous,
		Timeout:     timeout,
		BPF:         capture.BPF,
	})
	if err != nil {
		return err
	}

	// Stop on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := src.Start(ctx); err != nil {
		return err
	}
	defer src.Stop()

	state := exporter.NewLive()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	exporter.NewCollector(state).MustRegister(reg)

	srv := exporter.NewServer(listen, cfg.Export.Path, reg)
	if err := srv.Start(ctx); err != nil {
		return err
	}
	// The signal context is already cancelled by the time we shut down, so
	// give the server a fresh one for the graceful drain.
	defer srv.Stop(context.Background())

	slog.Info("export started", "interface", capture.Interface, "bpf", capture.BPF)

	packets := src.Packets()
	for {
		select {
		case <-ctx.Done():
			slog.Info("export stopping")
			return nil
		case pkt, ok := <-packets:
			if !ok {
				slog.Info("capture source closed")
				return nil
			}
			state.Consume(pkt)
		}
	}
}
