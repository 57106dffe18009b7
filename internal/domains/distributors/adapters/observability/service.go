package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	distributordomain "github.com/Apurer/wastewise-api/internal/domains/distributors/domain"
	distributorports "github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

const tracerName = "github.com/Apurer/wastewise-api/internal/domains/distributors/adapters/observability/service"

// Service decorates the distributor directory with tracing, logging, and metrics.
type Service struct {
	inner   distributorports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core distributor service.
func New(inner distributorports.Service, opts ...Option) distributorports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) Register(ctx context.Context, input distributorports.RegisterInput) (*distributordomain.Distributor, error) {
	ctx, span := s.tracer.Start(ctx, "DistributorService.Register")
	defer span.End()

	result, err := s.inner.Register(ctx, input)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to register distributor")
	}
	span.SetAttributes(attribute.String("distributor.id", result.ID))
	s.metrics.add(ctx, s.metrics.registrations)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "distributor registered", slog.String("distributor.id", result.ID))
	return result, nil
}

// Login never logs the email or password; failed attempts are counted instead.
func (s *Service) Login(ctx context.Context, email, password string) (*distributorports.LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "DistributorService.Login")
	defer span.End()

	result, err := s.inner.Login(ctx, email, password)
	if err != nil {
		s.metrics.add(ctx, s.metrics.loginFailures)
		return nil, s.fail(ctx, span, err, "distributor login failed")
	}
	s.metrics.add(ctx, s.metrics.logins)
	span.SetAttributes(attribute.String("distributor.id", result.Distributor.ID))
	s.logger.LogAttrs(ctx, slog.LevelInfo, "distributor logged in", slog.String("distributor.id", result.Distributor.ID))
	return result, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "DistributorService.Logout")
	defer span.End()

	if err := s.inner.Logout(ctx, token); err != nil {
		return s.fail(ctx, span, err, "distributor logout failed")
	}
	return nil
}

func (s *Service) Authenticate(ctx context.Context, token string) (*distributorports.Session, error) {
	ctx, span := s.tracer.Start(ctx, "DistributorService.Authenticate")
	defer span.End()

	session, err := s.inner.Authenticate(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return session, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*distributordomain.Distributor, error) {
	ctx, span := s.tracer.Start(ctx, "DistributorService.GetAll")
	defer span.End()

	result, err := s.inner.GetAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to list distributors")
	}
	span.SetAttributes(attribute.Int("distributors.count", len(result)))
	return result, nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("error", err.Error()))
	return err
}

type serviceMetrics struct {
	registrations metric.Int64Counter
	logins        metric.Int64Counter
	loginFailures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registrations, _ := m.Int64Counter("distributors.service.registrations", metric.WithDescription("Number of distributors registered"))
	logins, _ := m.Int64Counter("distributors.service.logins", metric.WithDescription("Number of successful logins"))
	failures, _ := m.Int64Counter("distributors.service.login_failures", metric.WithDescription("Number of rejected logins"))
	return serviceMetrics{registrations: registrations, logins: logins, loginFailures: failures}
}

func (serviceMetrics) add(ctx context.Context, counter metric.Int64Counter) {
	if counter != nil {
		counter.Add(ctx, 1)
	}
}

var _ distributorports.Service = (*Service)(nil)
