package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"synaudit/internal/analyzer"
	"synaudit/internal/config"
	"synaudit/internal/log"
	"synaudit/internal/report"
	"synaudit/internal/source/file"
)

var (
	analyzeFormat  string
	analyzeOutput  string
	analyzeBrokers []string
	analyzeTopic   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <capture-file>",
	Short: "Analyze a pcap file and classify TCP connections by handshake completeness",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "",
		"report format: text, json, yaml or kafka")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "",
		"write the report to a file instead of stdout")
	analyzeCmd.Flags().StringSliceVar(&analyzeBrokers, "kafka-brokers", nil,
		"kafka brokers for --format kafka")
	analyzeCmd.Flags().StringVar(&analyzeTopic, "kafka-topic", "",
		"kafka topic for --format kafka")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Log); err != nil {
		return err
	}

	format := cfg.Analyze.Format
	if cmd.Flags().Changed("format") {
		format = analyzeFormat
	}
	output := cfg.Analyze.Output
	if cmd.Flags().Changed("output") {
		output = analyzeOutput
	}

	src, err := file.NewSource(args[0])
	if err != nil {
		return err
	}
	if err := src.Start(cmd.Context()); err != nil {
		return err
	}
	defer src.Stop()

	a := analyzer.New()
	rep := a.Run(cmd.Context(), src.Packets())

	stats := a.Stats()
	slog.Debug("analysis finished",
		"frames", stats.Frames,
		"skipped", stats.Skipped,
		"connections", rep.Summary.Total)

	sink, cleanup, err := newAnalyzeSink(cfg, format, output)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := sink.Write(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// newAnalyzeSink builds the report sink for the chosen format. The returned
// cleanup closes whatever the sink holds open and is safe to call always.
func newAnalyzeSink(cfg *config.Config, format, output string) (report.Sink, func(), error) {
	if format == "kafka" {
		kafkaCfg := report.KafkaConfig{
			Brokers:     cfg.Kafka.Brokers,
			Topic:       cfg.Kafka.Topic,
			Compression: cfg.Kafka.Compression,
			BatchSize:   cfg.Kafka.BatchSize,
		}
		if len(analyzeBrokers) > 0 {
			kafkaCfg.Brokers = analyzeBrokers
		}
		if analyzeTopic != "" {
			kafkaCfg.Topic = analyzeTopic
		}
		if cfg.Kafka.BatchTimeout != "" {
			timeout, err := time.ParseDuration(cfg.Kafka.BatchTimeout)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid kafka batch_timeout: %w", err)
			}
			kafkaCfg.BatchTimeout = timeout
		}
		sink, err := report.NewKafkaSink(kafkaCfg)
		if err != nil {
			return nil, nil, err
		}
		return sink, func() { sink.Close() }, nil
	}

	var w io.Writer = os.Stdout
	cleanup := func() {}
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return nil, nil, fmt.Errorf("create output file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	}
	sink, err := report.NewSink(format, w)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return sink, cleanup, nil
}
