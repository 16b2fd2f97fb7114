package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/kv"
)

// ThemeService persists the color scheme under kv.ThemeKey, independently
// of the session.
type ThemeService interface {
	Current(ctx context.Context) (models.Theme, error)
	Toggle(ctx context.Context) (models.Theme, error)
}

type themeService struct {
	records kv.Repository
}

func NewThemeService(records kv.Repository) ThemeService {
	return &themeService{records: records}
}

func (s *themeService) Current(ctx context.Context) (models.Theme, error) {
	b, err := s.records.Get(ctx, kv.ThemeKey())
	if err != nil {
		return models.ThemeLight, fmt.Errorf("error loading theme: %w", err)
	}
	return models.ParseTheme(string(b)), nil
}

func (s *themeService) Toggle(ctx context.Context) (models.Theme, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return cur, err
	}
	next := cur.Toggle()
	if err := s.records.Set(ctx, kv.ThemeKey(), []byte(next)); err != nil {
		return cur, fmt.Errorf("error saving theme: %w", err)
	}
	return next, nil
}
