// prisched simulates non-preemptive priority scheduling with aging over
// a batch of processes read from a file, printing the timestamped event
// journal to stdout and a per-process summary at the end.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/korhansevinc/process-scheduler/internal/log"
	"github.com/korhansevinc/process-scheduler/internal/procfile"
	"github.com/korhansevinc/process-scheduler/internal/sched"
	"github.com/korhansevinc/process-scheduler/internal/tracing"
)

const version = "0.1.0"

func main() {
	var (
		input   = flag.String("input", "", "process file (path or URL): pid arrival total interval io priority")
		cfgPath = flag.String("config", "", "optional YAML config file")
		csvPath = flag.String("csv", "", "mirror events to this CSV file (overrides config)")
		doTrace = flag.Bool("trace", false, "emit per-process OpenTelemetry spans (overrides config)")
		quiet   = flag.Bool("quiet", false, "suppress the event journal, keep the summary")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := sched.Load(*cfgPath)
	if *csvPath != "" {
		cfg.CSVPath = *csvPath
	}
	if *doTrace {
		cfg.Trace = true
	}

	logger := log.BuildLogger(os.Stderr, cfg.LogLevel)
	runID := uuid.New().String()
	logger.Info("starting simulation",
		slog.String("run_id", runID),
		slog.String("input", *input),
		slog.Int("tick_ms", cfg.TickMS),
	)

	ctx := context.Background()
	specs, err := procfile.Load(ctx, *input)
	if err != nil {
		logger.Error("loading process file failed", log.ErrAttr(err))
		os.Exit(2)
	}

	var out io.Writer = os.Stdout
	if *quiet {
		out = io.Discard
	}
	journal := sched.NewJournal(out)
	if cfg.CSVPath != "" {
		if err := journal.EnableCSV(cfg.CSVPath); err != nil {
			logger.Error("opening csv sink failed", log.ErrAttr(err))
			os.Exit(2)
		}
	}
	if cfg.Trace {
		if err := tracing.Init("prisched", version, ""); err != nil {
			logger.Error("tracing setup failed", log.ErrAttr(err))
			os.Exit(2)
		}
		var span trace.Span
		ctx, span = tracing.StartSpan(ctx, "simulation")
		span.SetAttributes(
			attribute.String("run_id", runID),
			attribute.Int("processes", len(specs)),
		)
		defer span.End()
		journal.EnableTracing(ctx)
	}

	s := sched.New(cfg, specs, journal, sched.WithLogger(logger))
	if err := s.Run(ctx); err != nil {
		logger.Error("simulation aborted", log.ErrAttr(err))
		os.Exit(1)
	}

	printSummary(os.Stdout, s.Stats())
	if err := journal.Close(); err != nil {
		logger.Error("closing journal failed", log.ErrAttr(err))
	}
	logger.Info("simulation finished", slog.String("run_id", runID))
}

func printSummary(w io.Writer, st sched.Stats) {
	fmt.Fprintf(w, "\n%d processes, %d bursts, %d ms CPU consumed, finished at clock %d\n",
		len(st.Processes), st.TotalBursts, st.TotalConsumed, st.FinalClock)
	fmt.Fprintf(w, "%-6s %-9s %-9s %-7s %-11s %-11s\n",
		"PID", "ARRIVAL", "CPU(ms)", "BURSTS", "COMPLETED", "TURNAROUND")
	for _, p := range st.Processes {
		fmt.Fprintf(w, "%-6d %-9d %-9d %-7d %-11d %-11d\n",
			p.PID, p.Arrival, p.TotalCPU, p.Bursts, p.CompletedAt, p.Turnaround())
	}
}
