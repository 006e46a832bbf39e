package main

import (
	"flag"
	"net"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"

	"github.com/zeonixpay/zeonix-dashboard/db"
	"github.com/zeonixpay/zeonix-dashboard/handlers"
	"github.com/zeonixpay/zeonix-dashboard/handlers/api"
	"github.com/zeonixpay/zeonix-dashboard/handlers/middleware"
	"github.com/zeonixpay/zeonix-dashboard/metrics"
	"github.com/zeonixpay/zeonix-dashboard/services"
	"github.com/zeonixpay/zeonix-dashboard/static"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file, if empty string defaults will be used")
	flag.Parse()

	cfg := &types.Config{}
	err := utils.ReadConfig(cfg, *configPath)
	if err != nil {
		logrus.Fatalf("error reading config file: %v", err)
	}
	utils.Config = cfg
	logWriter, logger := utils.InitLogger()
	defer logWriter.Dispose()

	logger.WithFields(logrus.Fields{
		"config":  *configPath,
		"version": utils.BuildVersion,
		"release": utils.BuildRelease,
	}).Printf("starting")

	db.MustInitDB()
	err = db.ApplyEmbeddedDbSchema(-2)
	if err != nil {
		logger.Fatalf("error initializing db schema: %v", err)
	}

	err = upstream.StartGlobalClient()
	if err != nil {
		logger.Fatalf("error starting upstream client: %v", err)
	}

	err = services.StartSessionService()
	if err != nil {
		logger.Fatalf("error starting session service: %v", err)
	}

	err = services.StartAuditService()
	if err != nil {
		logger.Fatalf("error starting audit service: %v", err)
	}

	if cfg.RateLimit.Enabled {
		err = services.StartCallRateLimiter(cfg.RateLimit.ProxyCount, cfg.RateLimit.Rate, cfg.RateLimit.Burst)
		if err != nil {
			logger.Fatalf("error starting call rate limiter: %v", err)
		}
	}

	if cfg.Metrics.Enabled && !cfg.Metrics.Public {
		err = metrics.StartMetricsServer(logger.WithField("module", "metrics"), cfg.Metrics.Host, cfg.Metrics.Port)
		if err != nil {
			logger.Fatalf("error starting metrics server: %v", err)
		}
	}

	if cfg.Frontend.Enabled {
		err = startWebserver(logger)
		if err != nil {
			logger.Fatalf("error starting webserver: %v", err)
		}
	}

	utils.WaitForCtrlC()
	logger.Println("exiting...")
	db.MustCloseDB()
}

func startWebserver(logger logrus.FieldLogger) error {
	router := mux.NewRouter()

	router.HandleFunc("/", handlers.Index).Methods("GET")
	router.HandleFunc("/deposits", handlers.Deposits).Methods("GET")
	router.HandleFunc("/payouts", handlers.Payouts).Methods("GET")
	router.HandleFunc("/withdrawals", handlers.Withdrawals).Methods("GET")
	router.HandleFunc("/ledger", handlers.Ledger).Methods("GET")
	router.HandleFunc("/users", handlers.Users).Methods("GET")
	router.HandleFunc("/devices", handlers.Devices).Methods("GET")
	router.HandleFunc("/profile", handlers.Profile).Methods("GET")
	router.HandleFunc("/login", handlers.Login).Methods("GET")
	router.HandleFunc("/login", handlers.LoginPost).Methods("POST")
	router.HandleFunc("/logout", handlers.Logout).Methods("GET", "POST")
	router.HandleFunc("/unavailable", handlers.Unavailable).Methods("GET")

	router.HandleFunc("/docs/swagger.json", handlers.SwaggerSpec).Methods("GET")
	router.PathPrefix("/docs/").Handler(handlers.SwaggerUI)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(middleware.CorsMiddleware)
	apiRouter.HandleFunc("/merchant/payment-methods", api.APIPaymentMethodCreate).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/merchant/payment-methods/{id}/set-primary", api.APIPaymentMethodSetPrimary).Methods("PATCH", "OPTIONS")
	apiRouter.HandleFunc("/merchant/payment-methods/{id}", api.APIPaymentMethodDelete).Methods("DELETE", "OPTIONS")
	apiRouter.HandleFunc("/merchant/withdraw-request", api.APIWithdrawRequestCreate).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/profile/update", api.APIProfileUpdate).Methods("PUT", "PATCH", "POST", "OPTIONS")
	apiRouter.HandleFunc("/admin/create-device", api.APIDeviceCreate).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/admin/device/{id}/update", api.APIDeviceUpdate).Methods("PATCH", "OPTIONS")
	apiRouter.HandleFunc("/admin/device/{id}/toggle", api.APIDeviceToggle).Methods("PATCH", "OPTIONS")
	apiRouter.HandleFunc("/admin/users", api.APIUserCreate).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/admin/users/{id}", api.APIUserUpdate).Methods("PATCH", "OPTIONS")
	apiRouter.HandleFunc("/admin/users/{id}", api.APIUserDelete).Methods("DELETE", "OPTIONS")
	apiRouter.HandleFunc("/admin/users/{id}/reset-password", api.APIUserResetPassword).Methods("POST", "OPTIONS")

	if utils.Config.RateLimit.Enabled {
		router.Use(middleware.RateLimitMiddleware)
	}

	if utils.Config.Frontend.Pprof {
		// add pprof handler
		router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
		router.Handle("/debug/metrics", metrics.GetMetricsHandler())
	}

	if utils.Config.Metrics.Enabled && utils.Config.Metrics.Public {
		router.Handle("/metrics", metrics.GetMetricsHandler())
	}

	if utils.Config.Frontend.Debug {
		// serve files from local directory when debugging, instead of from go embed file
		templatesHandler := http.FileServer(http.Dir("templates"))
		router.PathPrefix("/templates").Handler(http.StripPrefix("/templates/", templatesHandler))

		cssHandler := http.FileServer(http.Dir("static/css"))
		router.PathPrefix("/css").Handler(http.StripPrefix("/css/", cssHandler))

		jsHandler := http.FileServer(http.Dir("static/js"))
		router.PathPrefix("/js").Handler(http.StripPrefix("/js/", jsHandler))
	}

	// serve static files from go embed
	fileSys := http.FS(static.Files)
	router.PathPrefix("/").Handler(handlers.CustomFileServer(http.FileServer(fileSys), fileSys, handlers.NotFound))

	n := negroni.New()
	n.Use(negroni.NewRecovery())
	n.UseHandler(router)

	if utils.Config.Frontend.HttpWriteTimeout == 0 {
		utils.Config.Frontend.HttpWriteTimeout = time.Second * 15
	}
	if utils.Config.Frontend.HttpReadTimeout == 0 {
		utils.Config.Frontend.HttpReadTimeout = time.Second * 15
	}
	if utils.Config.Frontend.HttpIdleTimeout == 0 {
		utils.Config.Frontend.HttpIdleTimeout = time.Second * 60
	}
	srv := &http.Server{
		Addr:         utils.Config.Server.Host + ":" + utils.Config.Server.Port,
		WriteTimeout: utils.Config.Frontend.HttpWriteTimeout,
		ReadTimeout:  utils.Config.Frontend.HttpReadTimeout,
		IdleTimeout:  utils.Config.Frontend.HttpIdleTimeout,
		Handler:      n,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	logger.Printf("http server listening on %v", srv.Addr)
	go func() {
		if err := srv.Serve(listener); err != nil {
			logger.WithError(err).Fatal("Error serving frontend")
		}
	}()

	return nil
}
