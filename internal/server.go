package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fitstack/fitstack/internal/auth"
	"github.com/fitstack/fitstack/internal/catalog"
	"github.com/fitstack/fitstack/internal/config"
	"github.com/fitstack/fitstack/internal/db"
	"github.com/fitstack/fitstack/internal/middleware"
	"github.com/fitstack/fitstack/internal/telemetry/metrics"
	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/internal/workouts/history"
	"github.com/fitstack/fitstack/internal/workouts/plans"
	"github.com/fitstack/fitstack/internal/workouts/sessions"
	"github.com/fitstack/fitstack/internal/workouts/templates"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	catalogClient *catalog.Client

	redisClient    *redis.Client
	sessionChecker *auth.SessionChecker

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	ExerciseAPIKey          string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.PoolParams{
		Host:    params.Config.PostgresHost,
		Port:    params.Config.PostgresPort,
		Name:    params.Config.PostgresDBName,
		Tracing: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitstack", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitstack-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	s := &Server{
		config: params.Config,
		dbPool: dbPool,
		catalogClient: catalog.NewClient(
			params.Config.ExerciseCatalogURL,
			params.ExerciseAPIKey,
			tracedHttpClient,
			time.Duration(params.Config.ExerciseCatalogTimeoutMs)*time.Millisecond,
			metricsManager,
		),
		versionInfo: params.VersionInfo,

		redisClient:    rdb,
		sessionChecker: auth.NewSessionChecker(rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitstack-router"))

	templatesRepo := templates.NewRepo(s.dbPool)
	plansRepo := plans.NewRepo(s.dbPool)
	sessionsRepo := sessions.NewRepo(s.dbPool)
	historyRepo := history.NewRepo(s.dbPool)

	templatesHandler := templates.NewHandler(templatesRepo)
	r.HandleFunc("/workouts", templatesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-templates")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	plansHandler := plans.NewHandler(
		plans.NewService(plansRepo, templatesRepo),
		plansRepo,
		s.metricsManager,
	)
	activateWithLimit := middleware.RateLimit(
		reqRateLimiter,
		s.metricsManager,
		"activate-plan",
		s.config.PlanActivationRateLimitPerMin,
	)(http.HandlerFunc(plansHandler.HandleActivate))
	r.Handle("/user-workouts", activateWithLimit).Methods("POST", "OPTIONS").Name("activate-plan")
	r.HandleFunc("/user-workouts", plansHandler.HandleGetActive).Methods("GET", "OPTIONS").Name("get-active-plan")
	r.HandleFunc("/user-workouts/cancel", plansHandler.HandleCancel).Methods("DELETE", "OPTIONS").Name("cancel-plan")
	r.HandleFunc("/workouts/exercise", plansHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-plan-exercise")
	r.HandleFunc("/workouts/exercise/{id}", plansHandler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-plan-exercise")
	r.HandleFunc("/workouts/exercise/{id}", plansHandler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-plan-exercise")

	sessionsHandler := sessions.NewHandler(
		sessions.NewService(plansRepo, templatesRepo, sessionsRepo, s.catalogClient),
		s.metricsManager,
	)
	r.HandleFunc("/workouts/today", sessionsHandler.HandleToday).Methods("GET", "OPTIONS").Name("today")
	r.HandleFunc("/workouts/schedule", sessionsHandler.HandleSchedule).Methods("GET", "OPTIONS").Name("week-schedule")
	r.HandleFunc("/workouts/detail", sessionsHandler.HandleDayDetail).Methods("GET", "OPTIONS").Name("day-detail")
	r.HandleFunc("/workouts/save-log", sessionsHandler.HandleSaveLog).Methods("POST", "OPTIONS").Name("save-log")

	historyHandler := history.NewHandler(
		history.NewService(historyRepo, s.catalogClient),
	)
	r.HandleFunc("/workouts/history", historyHandler.HandleMonth).Methods("GET", "OPTIONS").Name("history-month")
	r.HandleFunc("/workouts/history/{date}", historyHandler.HandleDayDetail).Methods("GET", "OPTIONS").Name("history-day")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(s.versionInfo)); err != nil {
			log.Errorf("write version response: %s", err)
		}
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessionChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("fitstack service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
