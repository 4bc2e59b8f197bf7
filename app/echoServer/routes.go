package echoServer

import (
	"movierental/app/echoServer/controller/auth"
	"movierental/app/echoServer/controller/customer"
	"movierental/app/echoServer/controller/genre"
	"movierental/app/echoServer/controller/movie"
	"movierental/app/echoServer/controller/rental"
	"movierental/app/echoServer/controller/returns"
	jwtutil "movierental/util/jwt"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth     *auth.Controller
	Genre    *genre.Controller
	Movie    *movie.Controller
	Customer *customer.Controller
	Rental   *rental.Controller
	Returns  *returns.Controller

	Verifier *jwtutil.Verifier
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api")

	authed := RequireAuth(c.Verifier)
	admin := RequireAdmin()

	// users
	api.POST("/users", c.Auth.Register)
	api.POST("/auth", c.Auth.Login)

	// genres: reads are public, mutations authed, deletes admin-only
	api.GET("/genres", c.Genre.List)
	api.GET("/genres/:id", c.Genre.Detail)
	api.POST("/genres", c.Genre.Create, authed)
	api.PUT("/genres/:id", c.Genre.Update, authed)
	api.DELETE("/genres/:id", c.Genre.Delete, authed, admin)

	// movies
	api.GET("/movies", c.Movie.List)
	api.GET("/movies/:id", c.Movie.Detail)
	api.POST("/movies", c.Movie.Create, authed)
	api.PUT("/movies/:id", c.Movie.Update, authed)
	api.DELETE("/movies/:id", c.Movie.Delete, authed, admin)

	// customers
	api.GET("/customers", c.Customer.List)
	api.GET("/customers/:id", c.Customer.Detail)
	api.POST("/customers", c.Customer.Create, authed)
	api.PUT("/customers/:id", c.Customer.Update, authed)
	api.DELETE("/customers/:id", c.Customer.Delete, authed, admin)

	// rentals
	api.GET("/rentals", c.Rental.List, authed)
	api.POST("/rentals", c.Rental.Create, authed)

	// returns
	api.POST("/returns", c.Returns.Create, authed)
}
