// Package app wires the configuration, network model, search strategies,
// event bus, metrics sinks and renderer into one service used by the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/evrouter/config"
	"github.com/kilianp07/evrouter/core/events"
	coremetrics "github.com/kilianp07/evrouter/core/metrics"
	"github.com/kilianp07/evrouter/core/model"
	"github.com/kilianp07/evrouter/core/network"
	"github.com/kilianp07/evrouter/core/search"
	"github.com/kilianp07/evrouter/infra/logger"
	"github.com/kilianp07/evrouter/infra/metrics"
	"github.com/kilianp07/evrouter/infra/render"
	"github.com/kilianp07/evrouter/internal/eventbus"
)

// Service answers routing queries over one immutable network instance. The
// network is shared by every query; each query owns its frontier and visited
// set, so concurrent RunQuery calls are safe.
type Service struct {
	cfg      *config.Config
	net      *network.Network
	sink     coremetrics.Sink
	bus      *eventbus.Bus[events.Event]
	renderer *render.Renderer
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetGlobalLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	logg := logger.New("service")

	net, err := network.New(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("build network: %w", err)
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	return &Service{
		cfg:      cfg,
		net:      net,
		sink:     sink,
		bus:      eventbus.New[events.Event](),
		renderer: render.New(cfg.Render),
		log:      logg,
	}, nil
}

// Start launches the background consumers: the metrics collector and, when
// enabled, the Prometheus endpoint. It returns immediately; both stop when
// ctx is canceled.
func (s *Service) Start(ctx context.Context) {
	metrics.StartEventCollector(ctx, s.bus, s.sink)
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
}

// Network exposes the immutable network model, e.g. for rendering.
func (s *Service) Network() *network.Network { return s.net }

// RunQuery answers one nearest-charging-station query with a fresh strategy
// instance of the given kind and publishes the outcome on the bus.
func (s *Service) RunQuery(kind string, start model.Location, capacity float64) (model.SearchResult, error) {
	strat, err := search.New(kind, s.net, start, capacity, search.WithLogger(s.log))
	if err != nil {
		return model.SearchResult{}, err
	}
	res, err := strat.Search()
	if err != nil {
		return model.SearchResult{}, fmt.Errorf("%s search: %w", kind, err)
	}

	s.bus.Publish(events.SearchCompletedEvent{
		QueryID:  uuid.NewString(),
		Strategy: kind,
		Start:    start,
		Capacity: capacity,
		Result:   res,
		Time:     time.Now(),
	})
	s.log.Debugw("query answered", map[string]any{
		"strategy": kind,
		"start":    string(start),
		"capacity": capacity,
		"cost":     res.Cost,
		"expanded": res.NodesExpanded,
	})
	return res, nil
}

// Renderer exposes the configured renderer.
func (s *Service) Renderer() *render.Renderer { return s.renderer }

// RenderEnabled reports whether chart output is configured.
func (s *Service) RenderEnabled() bool { return s.cfg.Render.Enabled }

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if closer, ok := s.sink.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}
