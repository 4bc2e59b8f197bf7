// Package main movie rental API.
//
// @title           Movie Rental API
// @version         1.0
// @description     movie rental service (genres, movies, customers, rentals, returns).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey AuthToken
// @in header
// @name x-auth-token
package main

import (
	"context"
	"log/slog"
	"os"

	"movierental/app/echoServer"
	authctrl "movierental/app/echoServer/controller/auth"
	customerctrl "movierental/app/echoServer/controller/customer"
	genrectrl "movierental/app/echoServer/controller/genre"
	moviectrl "movierental/app/echoServer/controller/movie"
	rentalctrl "movierental/app/echoServer/controller/rental"
	returnsctrl "movierental/app/echoServer/controller/returns"
	"movierental/app/echoServer/validation"
	"movierental/config"
	"movierental/metrics"
	customerrepo "movierental/repository/customer"
	genrerepo "movierental/repository/genre"
	movierepo "movierental/repository/movie"
	rentalrepo "movierental/repository/rental"
	userrepo "movierental/repository/user"
	authsvc "movierental/service/auth"
	customersvc "movierental/service/customer"
	genresvc "movierental/service/genre"
	moviesvc "movierental/service/movie"
	rentalsvc "movierental/service/rental"
	"movierental/util/database"
	jwtutil "movierental/util/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB over pgx
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	verifier := jwtutil.NewVerifier(cfg.JWTSecret)
	m := metrics.New()

	// repos
	gr := genrerepo.New(db)
	mr := movierepo.New(db, cfg.StockCap)
	cr := customerrepo.New(db)
	rr := rentalrepo.New(db)
	ur := userrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	gs := genresvc.New(gr)
	ms := moviesvc.New(mr, gr)
	cs := customersvc.New(cr)
	rs := rentalsvc.New(db, rr, mr, cr, log, m)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, Log: log}
	genreC := &genrectrl.Controller{Svc: gs, V: v, Log: log}
	movieC := &moviectrl.Controller{Svc: ms, V: v, Log: log}
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	returnsC := &returnsctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Genre:    genreC,
		Movie:    movieC,
		Customer: customerC,
		Rental:   rentalC,
		Returns:  returnsC,

		Verifier: verifier,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
