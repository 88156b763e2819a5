package service

import (
	"context"
	"time"

	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/repository"
	"github.com/alexanderramin/debtpad/internal/theme"
)

type themeService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	bus      *theme.Bus
	observer UseCaseObserver
}

// NewThemeService publishes every persisted change on bus. bus may be nil.
func NewThemeService(settings repository.SettingsRepo, uow db.UnitOfWork, bus *theme.Bus, observers ...UseCaseObserver) ThemeService {
	return &themeService{settings: settings, uow: uow, bus: bus, observer: combineObservers(observers)}
}

func (s *themeService) Current(ctx context.Context) (domain.Theme, error) {
	v, _, err := s.settings.Get(ctx, repository.ThemeKey)
	if err != nil {
		return domain.ThemeDark, err
	}
	return domain.ParseTheme(v), nil
}

// Set stores t and publishes a notification when the stored value changed.
func (s *themeService) Set(ctx context.Context, t domain.Theme) (err error) {
	_, err = s.write(ctx, "set-theme", func(domain.Theme) domain.Theme { return t })
	return err
}

// Toggle flips the stored theme and publishes exactly one notification.
func (s *themeService) Toggle(ctx context.Context) (domain.Theme, error) {
	return s.write(ctx, "toggle-theme", domain.Theme.Toggle)
}

func (s *themeService) write(ctx context.Context, name string, next func(domain.Theme) domain.Theme) (t domain.Theme, err error) {
	startedAt := time.Now()
	var prev domain.Theme
	defer func() {
		observeSince(ctx, s.observer, name, startedAt, map[string]any{"theme": string(t)}, err)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		settings := repository.NewSQLiteSettingsRepo(tx)
		v, _, err := settings.Get(ctx, repository.ThemeKey)
		if err != nil {
			return err
		}
		prev = domain.ParseTheme(v)
		t = next(prev)
		return settings.Set(ctx, repository.ThemeKey, string(t))
	})
	if err != nil {
		return prev, err
	}
	if t != prev && s.bus != nil {
		s.bus.Publish(theme.ChangeOf(t))
	}
	return t, nil
}
