package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"woodcraft-market/internal/cart"
	"woodcraft-market/internal/config"
	"woodcraft-market/internal/db"
	"woodcraft-market/internal/httpserver"
	categoryrepo "woodcraft-market/internal/repository/category"
	galleryrepo "woodcraft-market/internal/repository/gallery"
	orderrepo "woodcraft-market/internal/repository/order"
	productrepo "woodcraft-market/internal/repository/product"
	profilerepo "woodcraft-market/internal/repository/profile"
	reviewrepo "woodcraft-market/internal/repository/review"
	servicerepo "woodcraft-market/internal/repository/service"
	tokenrepo "woodcraft-market/internal/repository/token"
	workerrepo "woodcraft-market/internal/repository/worker"
	requestrepo "woodcraft-market/internal/repository/workrequest"
	categorysvc "woodcraft-market/internal/service/category"
	gallerysvc "woodcraft-market/internal/service/gallery"
	ordersvc "woodcraft-market/internal/service/order"
	productsvc "woodcraft-market/internal/service/product"
	profilesvc "woodcraft-market/internal/service/profile"
	reviewsvc "woodcraft-market/internal/service/review"
	servicesvc "woodcraft-market/internal/service/service"
	workersvc "woodcraft-market/internal/service/worker"
	requestsvc "woodcraft-market/internal/service/workrequest"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	carts := cart.NewManager(cfg.CartSessionTTL)

	workerRepo := workerrepo.NewPostgres(dbpool, logger)
	workerService := workersvc.New(workerRepo)

	deps := httpserver.Deps{
		Carts:       carts,
		ProductSvc:  productsvc.New(productrepo.NewPostgres(dbpool, logger)),
		CategorySvc: categorysvc.New(categoryrepo.NewPostgres(dbpool)),
		WorkerSvc:   workerService,
		ServiceSvc:  servicesvc.New(servicerepo.NewPostgres(dbpool)),
		ReviewSvc:   reviewsvc.New(reviewrepo.NewPostgres(dbpool), workerRepo, logger),
		RequestSvc:  requestsvc.New(requestrepo.NewPostgres(dbpool)),
		GallerySvc:  gallerysvc.New(galleryrepo.NewPostgres(dbpool)),
		OrderSvc:    ordersvc.New(orderrepo.NewPostgres(dbpool, logger)),
		ProfileSvc:  profilesvc.New(profilerepo.NewPostgres(dbpool, logger), tokenrepo.NewPostgres(dbpool)),
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	purgeDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.CartSessionTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := carts.Purge(); n > 0 {
					logger.Printf("purged %d idle cart sessions", n)
				}
			case <-purgeDone:
				return
			}
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}
	close(purgeDone)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
