package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps handlers that need an authenticated identity.
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	attendeeController *controllers.AttendeeController,
	userController *controllers.UserController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("GET /events/{eventID}/registrations", requireAuth(eventController.ListEventRegistrations))

	// Attendee
	mux.HandleFunc("POST /events/{eventID}/registrations", requireAuth(attendeeController.Register))
	mux.HandleFunc("GET /users/me/events", requireAuth(attendeeController.ListMyRegisteredEvents))

	// Users
	mux.HandleFunc("GET /users/me", requireAuth(userController.GetMe))

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
