package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ateet0254/mukesh-dairy-api/internal/utils"
)

// Logger logs each request with method, path and duration
func (app *application) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		app.infoLog.Printf("%s %s %s", r.Method, r.URL.RequestURI(), time.Since(start))
	})
}

// Authenticate requires a valid bearer token on protected routes
func (app *application) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			utils.Unauthorized(w, errors.New("missing or malformed authorization header"))
			return
		}

		if _, err := utils.ParseJWT(token, app.config.JWT); err != nil {
			app.errorLog.Println("ERROR_01_Authenticate:", err)
			utils.Unauthorized(w, errors.New("invalid or expired token"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
