package app

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/o2scale/goodboyholidayhomesverce/internal/config"
	"github.com/o2scale/goodboyholidayhomesverce/internal/controllers"
	"github.com/o2scale/goodboyholidayhomesverce/internal/middleware"
	"github.com/o2scale/goodboyholidayhomesverce/internal/repositories"
	"github.com/o2scale/goodboyholidayhomesverce/internal/routes"
	"github.com/o2scale/goodboyholidayhomesverce/internal/services"
	"github.com/o2scale/goodboyholidayhomesverce/internal/store"
)

// App wires the record store, services and the HTTP router. main and
// the HTTP tests both build the server through here.
type App struct {
	Config *config.Config
	Store  *store.Store
	Router *mux.Router

	Digest *services.PendingDigestService
}

func NewApp(cfg *config.Config) (*App, error) {
	st := store.New(cfg.DataFile, cfg.StoreOpTimeout)
	if err := st.Init(context.Background()); err != nil {
		return nil, err
	}

	propRepo := repositories.NewPropertyRepository(st)
	bookingRepo := repositories.NewBookingRepository(st)
	userRepo := repositories.NewUserRepository(st)

	notifier := services.NewNotificationService(cfg)
	availability := services.NewAvailabilityService(bookingRepo)
	propertyService := services.NewPropertyService(propRepo, bookingRepo)
	bookingService := services.NewBookingService(cfg, bookingRepo, propRepo, availability, notifier)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(cfg, userRepo)
	digestService := services.NewPendingDigestService(bookingRepo, propRepo, notifier)

	healthController := controllers.NewHealthController(st)
	authController := controllers.NewAuthController(cfg, userService, authService)
	propertiesController := controllers.NewPropertiesController(propertyService)
	availabilityController := controllers.NewAvailabilityController(availability)
	bookingsController := controllers.NewBookingsController(bookingService)
	usersController := controllers.NewUsersController(userService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthRegister, authController.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogout, authController.LogoutHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Properties, propertiesController.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, propertiesController.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Availability, availabilityController.CheckHandler).Methods(http.MethodGet)

	// Booking submission stays open to anonymous guests; the optional
	// auth pass only tags admin callers so they can create 0-guest rows.
	public := router.NewRoute().Subrouter()
	public.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	public.HandleFunc(routes.Bookings, bookingsController.CreateHandler).Methods(http.MethodPost)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	secured.HandleFunc(routes.BookingsMy, bookingsController.ListMyHandler).Methods(http.MethodGet)

	admin := router.NewRoute().Subrouter()
	admin.Use(middleware.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc(routes.Properties, propertiesController.CreateHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.PropertyByID, propertiesController.UpdateHandler).Methods(http.MethodPut)
	admin.HandleFunc(routes.Bookings, bookingsController.ListHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.BookingStatusByID, bookingsController.SetStatusHandler).Methods(http.MethodPatch, http.MethodPut)
	admin.HandleFunc(routes.BookingsBlock, bookingsController.CreateBlockHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.Users, usersController.ListHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.Users, usersController.CreateHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.UserByID, usersController.UpdateHandler).Methods(http.MethodPatch, http.MethodPut)
	admin.HandleFunc(routes.UserByID, usersController.DeleteHandler).Methods(http.MethodDelete)

	return &App{
		Config: cfg,
		Store:  st,
		Router: router,
		Digest: digestService,
	}, nil
}
