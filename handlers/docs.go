package handlers

import (
	_ "embed"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed swagger.json
var swaggerSpec []byte

// SwaggerUI serves the interactive api documentation page
var SwaggerUI = httpSwagger.Handler(
	httpSwagger.URL("/docs/swagger.json"),
)

// SwaggerSpec serves the api definition consumed by the docs page
func SwaggerSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(swaggerSpec)
}
