// Package server exposes projections over HTTP with fasthttp.
package server

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/output"
)

// Routes served by Handler.
const (
	RouteProjection = "/api/projection"
	RouteGridCSV    = "/api/grid.csv"
	RouteCoastAge   = "/api/coast-age"
	RouteMetrics    = "/metrics"
)

// GridFilename is the attachment name of the grid CSV download.
const GridFilename = "coastfire-grid.csv"

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// CoastAgeResponse is the body of the coast-age route; CoastAge is null when not in range.
type CoastAgeResponse struct {
	CoastAge  *int     `json:"coast_age"`
	CoastYear *int     `json:"coast_year,omitempty"`
	Warnings  []string `json:"warnings"`
}

// Server answers projection requests using one engine.
type Server struct {
	cfg     Config
	engine  *calculation.CalculationEngine
	logger  calculation.Logger
	metrics *Metrics
}

// New creates a server. A nil logger discards output.
func New(cfg Config, engine *calculation.CalculationEngine, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	if cfg.Workers > 0 {
		engine.Workers = cfg.Workers
	}
	return &Server{cfg: cfg, engine: engine, logger: logger, metrics: NewMetrics()}
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Handler routes requests to the API handlers.
func (s *Server) Handler() fasthttp.RequestHandler {
	metrics := s.metrics.Handler()
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		route := string(ctx.Path())
		switch route {
		case RouteProjection, RouteGridCSV, RouteCoastAge, RouteMetrics:
		default:
			s.writeError(ctx, fasthttp.StatusNotFound, "not found: "+route)
			s.observe("other", ctx, start)
			return
		}
		if !ctx.IsGet() && !ctx.IsHead() {
			ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodGet)
			s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
			s.observe(route, ctx, start)
			return
		}

		switch route {
		case RouteProjection:
			s.handleProjection(ctx)
		case RouteGridCSV:
			s.handleGridCSV(ctx)
		case RouteCoastAge:
			s.handleCoastAge(ctx)
		case RouteMetrics:
			metrics(ctx)
		}
		s.observe(route, ctx, start)
	}
}

func (s *Server) observe(route string, ctx *fasthttp.RequestCtx, start time.Time) {
	s.metrics.requests.WithLabelValues(route, strconv.Itoa(ctx.Response.StatusCode())).Inc()
	s.metrics.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// rawInputs reads the input fields from the query string, falling back to
// the default inputs for any field the caller omits.
func rawInputs(args *fasthttp.Args) map[string]string {
	d := config.DefaultInputs()
	raw := map[string]string{
		config.FieldCurrentAssets: strconv.FormatFloat(d.CurrentAssets, 'f', -1, 64),
		config.FieldCurrentAge:    strconv.Itoa(d.CurrentAge),
		config.FieldSWR:           strconv.FormatFloat(d.SWR, 'f', -1, 64),
		config.FieldReturnRate:    strconv.FormatFloat(d.ReturnRate, 'f', -1, 64),
		config.FieldInflation:     strconv.FormatFloat(d.Inflation, 'f', -1, 64),
		config.FieldSpending:      strconv.FormatFloat(d.Spending, 'f', -1, 64),
	}
	for field := range raw {
		if args.Has(field) {
			raw[field] = string(args.Peek(field))
		}
	}
	if args.Has(config.FieldBirthDate) {
		raw[config.FieldBirthDate] = string(args.Peek(config.FieldBirthDate))
	}
	return raw
}

func (s *Server) project(ctx *fasthttp.RequestCtx) (*domain.Report, bool) {
	in, err := config.ParseRawInputs(rawInputs(ctx.QueryArgs()), s.engine.Settings)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return nil, false
	}
	report, err := s.engine.RunProjection(ctx, in)
	if err != nil {
		s.logger.Errorf("server: projection failed: %v", err)
		status := fasthttp.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = fasthttp.StatusServiceUnavailable
		}
		s.writeError(ctx, status, err.Error())
		return nil, false
	}
	s.metrics.ObserveReport(report)
	return report, true
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	report, ok := s.project(ctx)
	if !ok {
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, report)
}

func (s *Server) handleGridCSV(ctx *fasthttp.RequestCtx) {
	report, ok := s.project(ctx)
	if !ok {
		return
	}
	body, err := output.CSVGridExporter{}.Format(report)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("text/csv; charset=utf-8")
	ctx.Response.Header.Set(fasthttp.HeaderContentDisposition, `attachment; filename="`+GridFilename+`"`)
	ctx.SetBody(body)
}

func (s *Server) handleCoastAge(ctx *fasthttp.RequestCtx) {
	report, ok := s.project(ctx)
	if !ok {
		return
	}
	warnings := report.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	s.writeJSON(ctx, fasthttp.StatusOK, CoastAgeResponse{CoastAge: report.CoastAge, CoastYear: report.CoastYear, Warnings: warnings})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Errorf("server: encode response: %v", err)
		status = fasthttp.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Status: status, Message: "failed to encode response"})
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.logger.Debugf("server: %d %s %s: %s", status, ctx.Method(), ctx.Path(), message)
	s.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

// httpLogger adapts calculation.Logger to fasthttp's Printf logger.
type httpLogger struct{ l calculation.Logger }

func (h httpLogger) Printf(format string, args ...interface{}) { h.l.Warnf(format, args...) }

func (s *Server) httpServer() *fasthttp.Server {
	return &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "coastfire",
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		Logger:       httpLogger{s.logger},
	}
}

// Serve answers requests on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := s.httpServer()
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Infof("server: shutting down")
		if err := srv.Shutdown(); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

// ListenAndServe listens on the configured address and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.logger.Infof("server: listening on %s", ln.Addr())
	return s.Serve(ctx, ln)
}
