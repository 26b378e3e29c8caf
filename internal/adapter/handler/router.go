package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Handlers struct {
	Inventory *InventoryHandler
	Bookings  *BookingHandler
	Stays     *StayHandler
}

func NewRouter(h Handlers, log *zap.Logger) *mux.Router {
	if log == nil {
		log = zap.NewNop()
	}

	r := mux.NewRouter()
	r.Use(recoverMiddleware(log), accessLogMiddleware(log))

	r.HandleFunc("/liveness", livenessHandler).Methods(http.MethodGet)

	r.HandleFunc("/room-types/{id}/availability", h.Inventory.CheckAvailability).Methods(http.MethodGet)
	r.HandleFunc("/room-types/{id}/calendar", h.Inventory.Calendar).Methods(http.MethodGet)
	r.HandleFunc("/room-types/{id}/inventory", h.Inventory.SetInventory).Methods(http.MethodPut)
	r.HandleFunc("/room-types/{id}/inventory/close", h.Inventory.CloseInventory).Methods(http.MethodPost)
	r.HandleFunc("/availability/search", h.Inventory.Search).Methods(http.MethodGet)

	r.HandleFunc("/bookings", h.Bookings.CreateBooking).Methods(http.MethodPost)
	r.HandleFunc("/bookings/locator/{locator}", h.Bookings.GetBookingByLocator).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{id}", h.Bookings.GetBooking).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{id}/cancel", h.Bookings.CancelBooking).Methods(http.MethodPost)
	r.HandleFunc("/bookings/{id}/check-in", h.Stays.CheckIn).Methods(http.MethodPost)
	r.HandleFunc("/bookings/{id}/stay", h.Stays.StayState).Methods(http.MethodGet)

	r.HandleFunc("/contracts", h.Stays.ListContracts).Methods(http.MethodGet)
	r.HandleFunc("/contracts/{id}/check-out", h.Stays.CheckOut).Methods(http.MethodPost)

	return r
}

func livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func accessLogMiddleware(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("latency", time.Since(start)),
				zap.String("user_agent", r.Header.Get("User-Agent")),
			}

			if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
				fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
			}

			log.Info("access", fields...)
		})
	}
}

func recoverMiddleware(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if re := recover(); re != nil {
					err, ok := re.(error)
					if !ok {
						err = fmt.Errorf("%v", re)
					}

					log.Error("panic while serving request",
						zap.String("path", r.URL.Path),
						zap.Error(err),
						zap.Stack("stack"))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
