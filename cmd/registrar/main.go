package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"registrar/internal/appointment"
	appointmentService "registrar/internal/appointment/service"
	"registrar/internal/contact"
	contactService "registrar/internal/contact/service"
	"registrar/internal/platform/config"
	"registrar/internal/platform/logger"
	"registrar/internal/platform/metrics"
	"registrar/internal/seed"
	"registrar/internal/task"
	taskService "registrar/internal/task/service"
)

// main wires config, logging, metrics and tracing around the three
// registries, applies the seed fixture if one is configured, and reports
// what was registered.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, cfg, log, prometheus.NewRegistry(), time.Now())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Warn("tracer shutdown failed", "error", shutdownErr)
	}
	if err != nil {
		log.Error("registrar failed", "error", err)
		os.Exit(1)
	}
}

type registries struct {
	appointments *appointment.Service
	contacts     *contact.Service
	tasks        *task.Service
}

func newRegistries(log *slog.Logger, m *metrics.Metrics) registries {
	return registries{
		appointments: appointment.NewService(appointmentService.WithLogger(log), appointmentService.WithMetrics(m)),
		contacts:     contact.NewService(contactService.WithLogger(log), contactService.WithMetrics(m)),
		tasks:        task.NewService(taskService.WithLogger(log), taskService.WithMetrics(m)),
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger, reg prometheus.Registerer, now time.Time) error {
	m := metrics.New(reg, cfg.MetricsNamespace)
	regs := newRegistries(log, m)

	if cfg.SeedFile != "" {
		fx, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		sum, err := seed.Apply(ctx, fx, now, seed.Registries{
			Appointments: regs.appointments,
			Contacts:     regs.contacts,
			Tasks:        regs.tasks,
		})
		if err != nil {
			return err
		}
		log.Info("seed applied",
			"file", cfg.SeedFile,
			"appointments", sum.Appointments,
			"contacts", sum.Contacts,
			"tasks", sum.Tasks,
		)
	}

	appointments, err := regs.appointments.Count(ctx)
	if err != nil {
		return err
	}
	contacts, err := regs.contacts.Count(ctx)
	if err != nil {
		return err
	}
	tasks, err := regs.tasks.Count(ctx)
	if err != nil {
		return err
	}
	log.Info("registries ready",
		"appointments", appointments,
		"contacts", contacts,
		"tasks", tasks,
	)
	return nil
}
