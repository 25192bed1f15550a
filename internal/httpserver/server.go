package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"woodcraft-market/internal/cart"
	categorysvc "woodcraft-market/internal/service/category"
	gallerysvc "woodcraft-market/internal/service/gallery"
	ordersvc "woodcraft-market/internal/service/order"
	productsvc "woodcraft-market/internal/service/product"
	profilesvc "woodcraft-market/internal/service/profile"
	reviewsvc "woodcraft-market/internal/service/review"
	servicesvc "woodcraft-market/internal/service/service"
	workersvc "woodcraft-market/internal/service/worker"
	requestsvc "woodcraft-market/internal/service/workrequest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps bundles the services the router needs.
type Deps struct {
	Carts       *cart.Manager
	ProductSvc  *productsvc.Service
	CategorySvc *categorysvc.Service
	WorkerSvc   *workersvc.Service
	ServiceSvc  *servicesvc.Service
	ReviewSvc   *reviewsvc.Service
	RequestSvc  *requestsvc.Service
	GallerySvc  *gallerysvc.Service
	OrderSvc    *ordersvc.Service
	ProfileSvc  *profilesvc.Service
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	db         *pgxpool.Pool
}

// New builds a Server with all storefront and admin routes.
func New(addr string, logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*Server, error) {
	router := buildRouter(logger, db, deps, corsOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		db:         db,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
