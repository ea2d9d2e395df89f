// Package routes holds the API's route table. Each entry names its auth
// policy and whether it needs the database, so the middleware chain is built
// from data instead of per-route wiring.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chachabrian/profast-backend/internal/handlers"
	"github.com/chachabrian/profast-backend/internal/middleware"
	"github.com/chachabrian/profast-backend/internal/models"
)

type Policy int

const (
	Public Policy = iota
	Authenticated
)

func (p Policy) String() string {
	if p == Authenticated {
		return "authenticated"
	}
	return "public"
}

type Route struct {
	Method  string
	Path    string
	Policy  Policy
	NeedsDB bool
	Handler gin.HandlerFunc
}

// Deps are the collaborators the handlers are built from.
type Deps struct {
	DB       middleware.ReadinessProbe
	Verifier middleware.TokenVerifier

	Parcels  handlers.ParcelStore
	Users    handlers.UserStore
	Riders   handlers.RiderStore
	Payments handlers.PaymentStore
	Tracking handlers.TrackingStore

	Gateway  handlers.PaymentGateway
	Events   handlers.EventPublisher
	Notifier handlers.TrackingNotifier
	Stream   handlers.TrackingStream
}

func Table(d Deps) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: handlers.Root()},
		{Method: http.MethodGet, Path: "/healthz", Handler: handlers.Health(d.DB)},
		{Method: http.MethodGet, Path: "/metrics", Handler: gin.WrapH(promhttp.Handler())},

		{Method: http.MethodGet, Path: "/parcels", Policy: Authenticated, NeedsDB: true, Handler: handlers.ListParcels(d.Parcels)},
		{Method: http.MethodGet, Path: "/parcels/:id", NeedsDB: true, Handler: handlers.GetParcel(d.Parcels)},
		{Method: http.MethodPost, Path: "/parcels", NeedsDB: true, Handler: handlers.CreateParcel(d.Parcels)},
		{Method: http.MethodDelete, Path: "/parcels/:id", NeedsDB: true, Handler: handlers.DeleteParcel(d.Parcels)},

		{Method: http.MethodGet, Path: "/users/search", NeedsDB: true, Handler: handlers.SearchUsers(d.Users)},
		{Method: http.MethodGet, Path: "/users/:email/role", NeedsDB: true, Handler: handlers.GetUserRole(d.Users)},
		{Method: http.MethodPost, Path: "/users", NeedsDB: true, Handler: handlers.CreateUser(d.Users)},
		{Method: http.MethodPatch, Path: "/users/:id/role", Policy: Authenticated, NeedsDB: true, Handler: handlers.UpdateUserRole(d.Users)},

		{Method: http.MethodPost, Path: "/riders", NeedsDB: true, Handler: handlers.CreateRiderApplication(d.Riders)},
		{Method: http.MethodGet, Path: "/riders/pending", NeedsDB: true, Handler: handlers.ListRidersByStatus(d.Riders, models.RiderStatusPending)},
		{Method: http.MethodGet, Path: "/riders/active", NeedsDB: true, Handler: handlers.ListRidersByStatus(d.Riders, models.RiderStatusActive)},
		{Method: http.MethodPatch, Path: "/riders/:id/status", NeedsDB: true, Handler: handlers.UpdateRiderStatus(d.Riders, d.Users, d.Events)},

		{Method: http.MethodPost, Path: "/tracking", NeedsDB: true, Handler: handlers.AppendTrackingEvent(d.Tracking, d.Notifier)},
		{Method: http.MethodGet, Path: "/ws/tracking/:trackingId", Handler: handlers.StreamTracking(d.Stream)},

		{Method: http.MethodGet, Path: "/payments", Policy: Authenticated, NeedsDB: true, Handler: handlers.ListPayments(d.Payments)},
		{Method: http.MethodPost, Path: "/payments", NeedsDB: true, Handler: handlers.RecordPayment(d.Payments, d.Events)},
		{Method: http.MethodPost, Path: "/create-payment-intent", Handler: handlers.CreatePaymentIntent(d.Gateway)},
	}
}

// Register mounts every route of the table on r.
func Register(r gin.IRoutes, d Deps) {
	ready := middleware.RequireReady(d.DB)
	auth := middleware.RequireAuth(d.Verifier)

	for _, route := range Table(d) {
		chain := make([]gin.HandlerFunc, 0, 3)
		if route.NeedsDB {
			chain = append(chain, ready)
		}
		if route.Policy == Authenticated {
			chain = append(chain, auth)
		}
		chain = append(chain, route.Handler)

		r.Handle(route.Method, route.Path, chain...)
	}
}
