package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/models/dtos/responses"
	gormModels "newskoop/newsroom/internal/models/gorm"
	"newskoop/newsroom/internal/permissions"
)

// DashboardService aggregates the newsroom landing page counts and the
// translation worklist.
type DashboardService struct {
	statsRepo    *repositories.StatsRepository
	storyRepo    *repositories.StoryRepository
	bulletinRepo *repositories.BulletinRepository
	taskRepo     *repositories.TaskRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(statsRepo *repositories.StatsRepository, storyRepo *repositories.StoryRepository, bulletinRepo *repositories.BulletinRepository, taskRepo *repositories.TaskRepository) *DashboardService {
	return &DashboardService{statsRepo: statsRepo, storyRepo: storyRepo, bulletinRepo: bulletinRepo, taskRepo: taskRepo}
}

// Overview returns per-status content counts and the open task count.
func (svc *DashboardService) Overview(ctx context.Context, actor *gormModels.User) (*responses.DashboardResponse, error) {
	if !permissions.IsStaff(actor) {
		return nil, ErrPermissionDenied
	}

	resp := &responses.DashboardResponse{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := svc.statsRepo.CountByStatus(ctx, "stories")
		resp.Stories = counts
		return err
	})
	g.Go(func() error {
		counts, err := svc.statsRepo.CountByStatus(ctx, "bulletins")
		resp.Bulletins = counts
		return err
	})
	g.Go(func() error {
		counts, err := svc.statsRepo.CountByStatus(ctx, "shows")
		resp.Shows = counts
		return err
	})
	g.Go(func() error {
		count, err := svc.statsRepo.CountOpenTasks(ctx)
		resp.OpenTasks = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

// Translations returns published English content still missing an Afrikaans
// or Xhosa translation, plus the open translation tasks. The five queries
// are independent and fan out concurrently.
func (svc *DashboardService) Translations(ctx context.Context, actor *gormModels.User) (*responses.TranslationDashboardResponse, error) {
	if !permissions.IsStaff(actor) {
		return nil, ErrPermissionDenied
	}

	resp := &responses.TranslationDashboardResponse{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stories, err := svc.storyRepo.MissingTranslations(ctx, constants.LanguageEnglish, constants.LanguageAfrikaans)
		if err != nil {
			return err
		}
		resp.StoriesNeedingAfrikaans = responses.NewStoryResponses(stories)
		return nil
	})
	g.Go(func() error {
		stories, err := svc.storyRepo.MissingTranslations(ctx, constants.LanguageEnglish, constants.LanguageXhosa)
		if err != nil {
			return err
		}
		resp.StoriesNeedingXhosa = responses.NewStoryResponses(stories)
		return nil
	})
	g.Go(func() error {
		bulletins, err := svc.bulletinRepo.MissingTranslations(ctx, constants.LanguageEnglish, constants.LanguageAfrikaans)
		if err != nil {
			return err
		}
		resp.BulletinsNeedingAfrikaans = responses.NewBulletinResponses(bulletins)
		return nil
	})
	g.Go(func() error {
		bulletins, err := svc.bulletinRepo.MissingTranslations(ctx, constants.LanguageEnglish, constants.LanguageXhosa)
		if err != nil {
			return err
		}
		resp.BulletinsNeedingXhosa = responses.NewBulletinResponses(bulletins)
		return nil
	})
	g.Go(func() error {
		tasks, err := svc.taskRepo.ListActiveTranslationTasks(ctx)
		if err != nil {
			return err
		}
		resp.ActiveTasks = responses.NewTaskResponses(tasks)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
