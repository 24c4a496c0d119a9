package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/casbin/casbin"
	"github.com/go-redis/redis"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/natefinch/lumberjack.v2"

	"eventsphere_backend/cache"
	"eventsphere_backend/casbinAuthorization"
	"eventsphere_backend/domain"
	"eventsphere_backend/gateway"
	"eventsphere_backend/handlers"
	application "eventsphere_backend/service"
	"eventsphere_backend/startup/config"
	"eventsphere_backend/storage"
	store2 "eventsphere_backend/store"
)

type Server struct {
	config *config.Config
}

var Logger = logrus.New()

const LogFilePath = "/app/logs/eventsphere.log"

func initLogger() {
	Logger.SetOutput(&lumberjack.Logger{
		Filename:   LogFilePath,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     28,
	})
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func (server *Server) Start() {

	initLogger()

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
		},
	}

	mongoClient := server.initMongoClient(httpClient)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	ctx := context.Background()
	exp, err := newExporter(server.config.JaegerAddress)
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	defer func() { _ = tp.Shutdown(ctx) }()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("eventsphere_backend")
	otel.SetTextMapPropagator(propagation.TraceContext{})

	redisClient := server.initRedisClient()
	mediaCache := server.initMediaCache(redisClient, tracer)
	mediaCache.Ping()
	mediaStorage := server.initMediaStorage()
	paymentGateway := server.initPaymentGateway()

	userStore := server.initUserStore(mongoClient)
	venueStore := server.initVenueStore(mongoClient)
	eventStore := server.initEventStore(mongoClient)
	paymentStore := server.initPaymentStore(mongoClient, tracer)
	detailsStore := server.initDetailsStore(mongoClient)

	authService := application.NewAuthService(userStore)
	venueService := application.NewVenueService(venueStore, mediaStorage, mediaCache)
	eventService := application.NewEventService(eventStore, mediaStorage)
	paymentService := application.NewPaymentService(paymentStore, venueStore, eventStore, userStore, paymentGateway, tracer)
	adminService := application.NewAdminService(userStore, venueStore, eventStore, paymentStore, detailsStore)
	detailsService := application.NewDetailsService(detailsStore, mediaStorage)

	authHandler := handlers.NewAuthHandler(authService)
	venueHandler := handlers.NewVenueHandler(venueService)
	eventHandler := handlers.NewEventHandler(eventService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	adminHandler := handlers.NewAdminHandler(adminService)
	detailsHandler := handlers.NewDetailsHandler(detailsService)

	server.start(authHandler, venueHandler, eventHandler, paymentHandler, adminHandler, detailsHandler)
}

func (server *Server) initMongoClient(httpClient *http.Client) *mongo.Client {
	client, err := store2.GetClientWithHTTPConfig(server.config.DBHost, server.config.DBPort, httpClient)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initRedisClient() *redis.Client {
	client, err := store2.GetRedisClient(server.config.CacheHost, server.config.CachePort)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initUserStore(client *mongo.Client) domain.UserStore {
	return store2.NewUserMongoDBStore(client)
}

func (server *Server) initVenueStore(client *mongo.Client) domain.VenueStore {
	return store2.NewVenueMongoDBStore(client)
}

func (server *Server) initEventStore(client *mongo.Client) domain.EventStore {
	return store2.NewEventMongoDBStore(client)
}

func (server *Server) initPaymentStore(client *mongo.Client, tracer trace.Tracer) domain.PaymentStore {
	return store2.NewPaymentMongoDBStore(client, tracer)
}

func (server *Server) initDetailsStore(client *mongo.Client) domain.DetailsStore {
	return store2.NewDetailsMongoDBStore(client)
}

func (server *Server) initMediaCache(client *redis.Client, tracer trace.Tracer) *cache.MediaRedisCache {
	return cache.NewMediaRedisCache(client, tracer)
}

func (server *Server) initMediaStorage() domain.MediaStore {
	return storage.New(server.config.CloudinaryCloudName, server.config.CloudinaryAPIKey,
		server.config.CloudinaryAPISecret, Logger)
}

func (server *Server) initPaymentGateway() domain.PaymentGateway {
	return gateway.NewStripeGateway(server.config.StripeSecretKey, server.config.ClientURL)
}

func (server *Server) start(authHandler *handlers.AuthHandler, venueHandler *handlers.VenueHandler,
	eventHandler *handlers.EventHandler, paymentHandler *handlers.PaymentHandler,
	adminHandler *handlers.AdminHandler, detailsHandler *handlers.DetailsHandler) {

	enforcer, err := casbin.NewEnforcerSafe("./rbac_model.conf", "./policy.csv")
	if err != nil {
		log.Fatal(err)
	}

	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(casbinAuthorization.CasbinMiddleware(enforcer, Logger))

	authHandler.Init(router.PathPrefix("/api/users").Subrouter())
	venueHandler.Init(router.PathPrefix("/api/venues").Subrouter())
	eventHandler.Init(router.PathPrefix("/api/events").Subrouter())
	paymentHandler.Init(router.PathPrefix("/api/payment").Subrouter())
	adminHandler.Init(router.PathPrefix("/api/admin").Subrouter())
	detailsHandler.Init(router.PathPrefix("/api/additional-details").Subrouter())

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: cors(router),
	}

	wait := time.Second * 15
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func newExporter(address string) (*jaeger.Exporter, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("eventsphere_backend"),
		),
	)

	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
}
