package main

// POST /products – Create a new product in the catalog.
// GET /products/list - For listing all products
// POST /products/stock - To set the stock of a product
// GET /cart/list - For listing cart products
// POST /cart/add - To add product in cart
// POST /cart/remove - To remove product from cart
// POST /cart/clear - To empty a cart

// --- EMBED MIGRATIONS ---
import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"shopping-cart/config"
	"shopping-cart/handler"
	"shopping-cart/service"
	"shopping-cart/store"
)

//go:embed migrations.sql
var migrationSQL string

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	log.Level = lvl
	return log
}

func main() {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	// --- Store ---
	pg, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	// --- RUN MIGRATIONS ---
	if err := pg.Migrate(migrationSQL); err != nil {
		log.Fatalf("Failed running migrations: %v", err)
	}
	log.Info("database migrations executed successfully")

	st, err := store.NewCachedStore(pg, cfg.ProductCacheSize)
	if err != nil {
		log.Fatalf("product cache: %v", err)
	}
	defer st.Close()

	// --- Service ---
	svc := service.NewService(st)
	var serviceInterface service.ServiceInterface = svc

	// --- Handlers ---
	h := handler.NewHandler(serviceInterface)

	// --- Router ---
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	// --- Server ---
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.WithCORS(cfg.CORSOrigins, handler.WithLogging(log, r)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("server running on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
