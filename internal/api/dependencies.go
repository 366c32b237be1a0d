package api

import (
	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/config"
	"newskoop/newsroom/internal/db"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/services"
)

type Repositories struct {
	User     *repositories.UserRepository
	Station  *repositories.StationRepository
	Category *repositories.CategoryRepository
	Story    *repositories.StoryRepository
	Bulletin *repositories.BulletinRepository
	Show     *repositories.ShowRepository
	Task     *repositories.TaskRepository
	Stats    *repositories.StatsRepository
}

type Services struct {
	Cache     common.CacheInterface
	Tokens    *auth.TokenService
	User      *services.UserService
	Station   *services.StationService
	Category  *services.CategoryService
	Story     *services.StoryService
	Bulletin  *services.BulletinService
	Show      *services.ShowService
	Task      *services.TaskService
	Dashboard *services.DashboardService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services. The cache backs both the
// general-purpose cache and the refresh-token revocation list; in production
// it is Redis, in tests an in-memory store.
func InitDependencies(cfg *config.Config, cache common.CacheInterface) (*Dependencies, error) {
	repos := &Repositories{
		User:     repositories.NewUserRepository(db.PgDB),
		Station:  repositories.NewStationRepository(db.PgDB),
		Category: repositories.NewCategoryRepository(db.PgDB),
		Story:    repositories.NewStoryRepository(db.PgDB),
		Bulletin: repositories.NewBulletinRepository(db.PgDB),
		Show:     repositories.NewShowRepository(db.PgDB),
		Task:     repositories.NewTaskRepository(db.PgDB),
		Stats:    repositories.NewStatsRepository(db.DB),
	}

	tokenSvc := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cache)

	svcs := &Services{
		Cache:     cache,
		Tokens:    tokenSvc,
		User:      services.NewUserService(db.PgDB, repos.User),
		Station:   services.NewStationService(db.PgDB, repos.Station, repos.User),
		Category:  services.NewCategoryService(db.PgDB, repos.Category, cache),
		Story:     services.NewStoryService(db.PgDB, repos.Story, repos.Category),
		Bulletin:  services.NewBulletinService(db.PgDB, repos.Bulletin, repos.Story, repos.Category),
		Show:      services.NewShowService(db.PgDB, repos.Show, repos.Category),
		Task:      services.NewTaskService(db.PgDB, repos.Task, repos.User, repos.Story, repos.Bulletin),
		Dashboard: services.NewDashboardService(repos.Stats, repos.Story, repos.Bulletin, repos.Task),
	}

	return &Dependencies{Repo: repos, Services: svcs}, nil
}
