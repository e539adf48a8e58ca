// Package httpapi exposes the REST surface: a gorilla/mux router, the
// bearer-token middleware, and one handler per resource. Handlers decode
// and delegate; all permission and workflow decisions live in the
// service layer.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

type RouterDependencies struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Admins        *AdminHandler
	Verifications *VerificationHandler
	Categories    *CategoryHandler
	Jobs          *JobHandler
	Applications  *ApplicationHandler
	Notifications *NotificationHandler
	AuthMW        *AuthMiddleware
}

func NewRouter(deps RouterDependencies) http.Handler {
	r := mux.NewRouter()
	r.Use(Recover, Logging)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public routes.
	api.HandleFunc("/users/register", deps.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", deps.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/users/refresh", deps.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/jobs", deps.Jobs.List).Methods(http.MethodGet)
	api.HandleFunc("/categories", deps.Categories.List).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", deps.Categories.Get).Methods(http.MethodGet)

	// Everything below requires a valid access token.
	auth := api.NewRoute().Subrouter()
	auth.Use(deps.AuthMW.Authenticate)

	auth.HandleFunc("/users", deps.Users.List).Methods(http.MethodGet)
	auth.HandleFunc("/users/{id}", deps.Users.Get).Methods(http.MethodGet)
	auth.HandleFunc("/users/{id}", deps.Users.Update).Methods(http.MethodPut)
	auth.HandleFunc("/users/{id}", deps.Users.Delete).Methods(http.MethodDelete)

	auth.HandleFunc("/admins", deps.Admins.Create).Methods(http.MethodPost)
	auth.HandleFunc("/admins", deps.Admins.List).Methods(http.MethodGet)
	auth.HandleFunc("/admins/{id}", deps.Admins.Get).Methods(http.MethodGet)
	auth.HandleFunc("/admins/{id}", deps.Admins.Update).Methods(http.MethodPut)
	auth.HandleFunc("/admins/{id}", deps.Admins.Delete).Methods(http.MethodDelete)
	auth.HandleFunc("/admin/users/{id}/verify", deps.Admins.ToggleCanPost).Methods(http.MethodPatch)

	auth.HandleFunc("/verification-requests", deps.Verifications.Submit).Methods(http.MethodPost)
	auth.HandleFunc("/verification-requests", deps.Verifications.List).Methods(http.MethodGet)
	auth.HandleFunc("/verification-requests/{id}", deps.Verifications.Get).Methods(http.MethodGet)
	auth.HandleFunc("/verification-requests/{id}", deps.Verifications.Decide).Methods(http.MethodPatch)

	auth.HandleFunc("/admin/categories", deps.Categories.Create).Methods(http.MethodPost)
	auth.HandleFunc("/admin/categories/{id}", deps.Categories.Update).Methods(http.MethodPut)
	auth.HandleFunc("/admin/categories/{id}", deps.Categories.Delete).Methods(http.MethodDelete)

	// my-jobs is registered before the public {id} lookup so the literal
	// segment is not swallowed by the id pattern.
	auth.HandleFunc("/jobs/my-jobs", deps.Jobs.Create).Methods(http.MethodPost)
	auth.HandleFunc("/jobs/my-jobs", deps.Jobs.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/jobs/my-jobs/{id}", deps.Jobs.Update).Methods(http.MethodPut)
	auth.HandleFunc("/jobs/my-jobs/{id}", deps.Jobs.Delete).Methods(http.MethodDelete)
	auth.HandleFunc("/admin/jobs/{id}", deps.Jobs.AdminDelete).Methods(http.MethodDelete)

	auth.HandleFunc("/jobs/{id}/apply", deps.Applications.Apply).Methods(http.MethodPost)
	auth.HandleFunc("/jobs/{id}/applications", deps.Applications.ListForJob).Methods(http.MethodGet)
	auth.HandleFunc("/applications", deps.Applications.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/applications/{id}", deps.Applications.Get).Methods(http.MethodGet)
	auth.HandleFunc("/applications/{id}", deps.Applications.Edit).Methods(http.MethodPut)
	auth.HandleFunc("/applications/{id}", deps.Applications.Withdraw).Methods(http.MethodDelete)
	auth.HandleFunc("/applications/{id}/status", deps.Applications.UpdateStatus).Methods(http.MethodPatch)

	auth.HandleFunc("/notifications", deps.Notifications.List).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id}", deps.Notifications.View).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id}", deps.Notifications.Delete).Methods(http.MethodDelete)

	// Public job detail goes last for the same reason.
	api.HandleFunc("/jobs/{id}", deps.Jobs.Get).Methods(http.MethodGet)

	return r
}
