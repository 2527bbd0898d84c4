package controllers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type FileController struct {
	deps *Dependens
}

func NewFileController(deps *Dependens) *FileController {
	return &FileController{
		deps: deps,
	}
}

func (c *FileController) GetFiles(ctx context.Context) ([]entity.UploadedFile, error) {
	files, err := c.deps.Store.Files.List(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing files", slog.String("error", err.Error()))
		return nil, err
	}

	return files, nil
}

func (c *FileController) GetFile(ctx context.Context, id string) (*entity.UploadedFile, error) {
	f, err := c.deps.Store.Files.Get(ctx, id)
	if err != nil {
		c.deps.Logger.Warn("File not found", slog.String("id", id))
		return nil, err
	}

	return &f, nil
}

func (c *FileController) CreateFile(ctx context.Context, f entity.UploadedFile) (*entity.UploadedFile, error) {
	if f.Name == "" {
		c.deps.Logger.Warn("Required field: name")
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if err := c.deps.checkEmployee(ctx, f.EmployeeID); err != nil {
		c.deps.Logger.Warn("File validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	if f.UploadedOn == "" {
		f.UploadedOn = store.Today()
	}
	if f.Category == "" {
		f.Category = entity.FileCategoryOther
	}

	f.ID = store.NewID()

	if err := c.deps.Store.Files.Put(ctx, f.ID, f); err != nil {
		c.deps.Logger.Error("Error storing file", slog.String("error", err.Error()))
		return nil, err
	}

	return &f, nil
}

func (c *FileController) DeleteFile(ctx context.Context, id string) error {
	if err := c.deps.Store.Files.Delete(ctx, id); err != nil {
		c.deps.Logger.Warn("File not found", slog.String("id", id))
		return err
	}

	return nil
}
