package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrRecovered возвращается, если действие завершилось паникой
var ErrRecovered = errors.New("internal error")

// ActionFunc - один пункт меню
type ActionFunc func(ctx context.Context) error

// Middleware оборачивает действие с именем name
type Middleware func(name string, next ActionFunc) ActionFunc

// Chain применяет middleware в порядке перечисления: первый - самый внешний
func Chain(name string, action ActionFunc, mws ...Middleware) ActionFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		action = mws[i](name, action)
	}
	return action
}

// Logger middleware для логирования действий пользователя
func Logger(logger *slog.Logger) Middleware {
	return func(name string, next ActionFunc) ActionFunc {
		return func(ctx context.Context) error {
			start := time.Now()

			err := next(ctx)

			attrs := []any{
				slog.String("action", name),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Warn("action failed", append(attrs, slog.Any("error", err))...)
				return err
			}
			logger.Info("action completed", attrs...)
			return nil
		}
	}
}

// Recoverer middleware для обработки паник
func Recoverer(logger *slog.Logger) Middleware {
	return func(name string, next ActionFunc) ActionFunc {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						slog.Any("error", r),
						slog.String("action", name),
					)
					err = fmt.Errorf("%w: %v", ErrRecovered, r)
				}
			}()
			return next(ctx)
		}
	}
}
