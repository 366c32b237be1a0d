package routes

import (
	"github.com/go-chi/chi/v5"

	"newskoop/newsroom/internal/api"
	"newskoop/newsroom/internal/middleware"
)

// RegisterAPIRoutes attaches all /api/v1 routes. Authentication is global
// below /api/v1 except for login and token refresh; role gates nest inside.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {
		// Public
		v1.Post("/auth/login", api.LoginHandler(svcs.User, svcs.Tokens))
		v1.Post("/auth/refresh", api.TokenRefreshHandler(svcs.Tokens))

		// Authenticated
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(svcs.Tokens, deps.Repo.User))

			authed.Post("/auth/logout", api.LogoutHandler(svcs.Tokens))
			authed.Get("/auth/profile", api.GetProfileHandler())
			authed.Put("/auth/profile", api.UpdateProfileHandler(svcs.User))

			// Newsroom routes, staff only
			authed.Group(func(staff chi.Router) {
				staff.Use(middleware.RequireStaffMiddleware())

				staff.Get("/dashboard", api.DashboardHandler(svcs.Dashboard))
				staff.Get("/dashboard/translations", api.TranslationDashboardHandler(svcs.Dashboard))

				staff.Get("/categories", api.ListCategoriesHandler(svcs.Category))
				staff.Get("/categories/{id}", api.GetCategoryHandler(svcs.Category))
				staff.Post("/categories", api.CreateCategoryHandler(svcs.Category))
				staff.Put("/categories/{id}", api.UpdateCategoryHandler(svcs.Category))
				staff.Delete("/categories/{id}", api.DeleteCategoryHandler(svcs.Category))

				staff.Get("/stories", api.ListStoriesHandler(svcs.Story))
				staff.Get("/stories/{id}", api.GetStoryHandler(svcs.Story))
				staff.Post("/stories", api.CreateStoryHandler(svcs.Story))
				staff.Put("/stories/{id}", api.UpdateStoryHandler(svcs.Story))
				staff.Delete("/stories/{id}", api.DeleteStoryHandler(svcs.Story))
				staff.Post("/stories/{id}/publish", api.PublishStoryHandler(svcs.Story))
				staff.Post("/stories/{id}/translate", api.TranslateStoryHandler(svcs.Story))
				staff.Post("/stories/{id}/audio", api.AddAudioClipHandler(svcs.Story))
				staff.Delete("/stories/{id}/audio/{clip_id}", api.DeleteAudioClipHandler(svcs.Story))

				staff.Get("/bulletins", api.ListBulletinsHandler(svcs.Bulletin))
				staff.Get("/bulletins/{id}", api.GetBulletinHandler(svcs.Bulletin))
				staff.Post("/bulletins", api.CreateBulletinHandler(svcs.Bulletin))
				staff.Put("/bulletins/{id}", api.UpdateBulletinHandler(svcs.Bulletin))
				staff.Delete("/bulletins/{id}", api.DeleteBulletinHandler(svcs.Bulletin))
				staff.Post("/bulletins/{id}/publish", api.PublishBulletinHandler(svcs.Bulletin))
				staff.Post("/bulletins/{id}/translate", api.TranslateBulletinHandler(svcs.Bulletin))

				staff.Get("/shows", api.ListShowsHandler(svcs.Show))
				staff.Get("/shows/{id}", api.GetShowHandler(svcs.Show))
				staff.Post("/shows", api.CreateShowHandler(svcs.Show))
				staff.Put("/shows/{id}", api.UpdateShowHandler(svcs.Show))
				staff.Delete("/shows/{id}", api.DeleteShowHandler(svcs.Show))
				staff.Post("/shows/{id}/publish", api.PublishShowHandler(svcs.Show))
				staff.Post("/shows/{id}/translate", api.TranslateShowHandler(svcs.Show))

				staff.Get("/tasks", api.ListTasksHandler(svcs.Task))
				staff.Get("/tasks/mine", api.MyTasksHandler(svcs.Task))
				staff.Get("/tasks/{id}", api.GetTaskHandler(svcs.Task))
				staff.Post("/tasks", api.CreateTaskHandler(svcs.Task))
				staff.Post("/tasks/translations", api.CreateTranslationTaskHandler(svcs.Task))
				staff.Post("/tasks/{id}/status", api.UpdateTaskStatusHandler(svcs.Task))
				staff.Post("/tasks/{id}/notes", api.AddTaskNoteHandler(svcs.Task))
			})

			// User and station administration, admin only
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.RequireAdminMiddleware())

				admin.Get("/users", api.ListUsersHandler(svcs.User))
				admin.Get("/users/{id}", api.GetUserHandler(svcs.User))
				admin.Post("/users/staff", api.CreateStaffUserHandler(svcs.User))
				admin.Post("/users/radio", api.CreateRadioUserHandler(svcs.User))
				admin.Put("/users/staff/{id}", api.UpdateStaffUserHandler(svcs.User))
				admin.Put("/users/radio/{id}", api.UpdateRadioUserHandler(svcs.User))
				admin.Delete("/users/{id}", api.DeleteUserHandler(svcs.User))
				admin.Post("/users/{id}/reset-password", api.ResetPasswordHandler(svcs.User))
				admin.Post("/users/{id}/set-active", api.SetUserActiveHandler(svcs.User))

				admin.Get("/stations", api.ListStationsHandler(svcs.Station))
				admin.Get("/stations/{id}", api.GetStationHandler(svcs.Station))
				admin.Post("/stations", api.CreateStationHandler(svcs.Station))
				admin.Put("/stations/{id}", api.UpdateStationHandler(svcs.Station))
				admin.Delete("/stations/{id}", api.DeleteStationHandler(svcs.Station))
				admin.Get("/stations/{id}/users", api.ListStationUsersHandler(svcs.Station))
				admin.Post("/stations/{id}/users", api.AddStationUserHandler(svcs.Station))
				admin.Post("/stations/{id}/primary-contact", api.SetPrimaryContactHandler(svcs.Station))
			})
		})
	})
}
