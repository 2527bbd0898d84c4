package controllers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type AnnouncementController struct {
	deps *Dependens
}

func NewAnnouncementController(deps *Dependens) *AnnouncementController {
	return &AnnouncementController{
		deps: deps,
	}
}

func (c *AnnouncementController) GetAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	anns, err := c.deps.Store.Announcements.List(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing announcements", slog.String("error", err.Error()))
		return nil, err
	}

	return anns, nil
}

func (c *AnnouncementController) CreateAnnouncement(ctx context.Context, a entity.Announcement) (*entity.Announcement, error) {
	if a.Title == "" || a.Message == "" {
		c.deps.Logger.Warn("Required fields: title, message")
		return nil, fmt.Errorf("%w: title and message are required", ErrValidation)
	}

	if a.Date == "" {
		a.Date = store.Today()
	}
	if a.Priority == "" {
		a.Priority = entity.PriorityMedium
	}

	a.ID = store.NewID()

	if err := c.deps.Store.Announcements.Put(ctx, a.ID, a); err != nil {
		c.deps.Logger.Error("Error storing announcement", slog.String("error", err.Error()))
		return nil, err
	}

	return &a, nil
}

func (c *AnnouncementController) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := c.deps.Store.Announcements.Delete(ctx, id); err != nil {
		c.deps.Logger.Warn("Announcement not found", slog.String("id", id))
		return err
	}

	return nil
}
