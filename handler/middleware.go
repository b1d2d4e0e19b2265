package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type ctxKeyLog struct{}

type logHandler struct {
	log  *logrus.Logger
	next http.Handler
}

type responseRecorder struct {
	b      int
	status int
	w      http.ResponseWriter
}

func (r *responseRecorder) Header() http.Header { return r.w.Header() }

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.w.Write(p)
	r.b += n
	return n, err
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.w.WriteHeader(statusCode)
}

// WithLogging wraps next so that every request gets an id and a request-scoped
// log entry, and is logged on completion.
func WithLogging(log *logrus.Logger, next http.Handler) http.Handler {
	return &logHandler{log: log, next: next}
}

func (lh *logHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)

	start := time.Now()
	rr := &responseRecorder{w: w}
	log := lh.log.WithFields(logrus.Fields{
		"http.req.path":   r.URL.Path,
		"http.req.method": r.Method,
		"http.req.id":     requestID,
	})
	log.Debug("request started")
	defer func() {
		log.WithFields(logrus.Fields{
			"http.resp.took_ms": int64(time.Since(start) / time.Millisecond),
			"http.resp.status":  rr.status,
			"http.resp.bytes":   rr.b}).Info("request complete")
	}()

	ctx := context.WithValue(r.Context(), ctxKeyLog{}, log)
	lh.next.ServeHTTP(rr, r.WithContext(ctx))
}

// logFrom returns the request's log entry, or a standard-logger entry when
// the request did not pass through WithLogging.
func logFrom(r *http.Request) *logrus.Entry {
	if log, ok := r.Context().Value(ctxKeyLog{}).(*logrus.Entry); ok {
		return log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// WithCORS allows browser clients from origins to call the API.
func WithCORS(origins []string, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(next)
}
