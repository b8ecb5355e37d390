package app

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/metrics"
	"github.com/Spok95/lms-desktop/internal/models"
	"github.com/Spok95/lms-desktop/internal/observability"
)

// Session — авторизованный пользователь на время жизни одного дашборда.
// Выход из дашборда просто выбрасывает Session.
type Session struct {
	UserID   int64
	FullName string
	Role     models.Role
}

// observe закрывает операцию: метрики всегда, лог и Sentry — только для
// ошибок хранилища. Ошибки валидации и «ожидаемые» отказы наверх уходят
// как есть, без алертов.
func observe(log *zap.SugaredLogger, op string, err error) error {
	metrics.ObserveOp(op, err)
	if err == nil {
		return nil
	}
	var vErr *ValidationError
	var refErr *db.UserReferencedError
	switch {
	case errors.As(err, &vErr),
		errors.As(err, &refErr),
		errors.Is(err, db.ErrInvalidCredentials),
		errors.Is(err, db.ErrAlreadyEnrolled),
		errors.Is(err, db.ErrNotFound):
		log.Infow("операция отклонена", "op", op, "reason", err)
	default:
		log.Errorw("операция завершилась ошибкой", "op", op, "err", err)
		observability.CaptureErr(err)
	}
	return err
}
