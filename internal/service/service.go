// service содержит бизнес-логику бэк-офиса:
//   - жизненный цикл сессий (вход, ротация refresh, выход, проверка
//     bearer-токена с чёрным списком и скользящей сессией);
//   - онбординг клиентов и открытие счетов;
//   - закрытие счёта с выплатой остатка (CloseAccount), единственный
//     путь с денежными инвариантами.
//
// Service не хранит состояние запроса и безопасен для конкурентного
// использования при потокобезопасных storage.Storage и session.Store.
// Доменные ошибки, значения *apperr.Error из errors.go; транспорт
// маппит их по виду (apperr.Kind), всё прочее, внутренняя ошибка.
package service

import (
	"time"

	"github.com/pribylovaa/bank-backoffice/internal/config"
	"github.com/pribylovaa/bank-backoffice/internal/events"
	"github.com/pribylovaa/bank-backoffice/internal/session"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
	"github.com/pribylovaa/bank-backoffice/internal/token"
)

// Service описывает бизнес-логику сервиса.
type Service struct {
	storage   storage.Storage
	sessions  session.Store
	tokens    *token.Manager
	publisher events.Publisher
	cfg       config.AuthConfig
	now       func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithPublisher подключает издателя событий (по умолчанию events.Noop).
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, sessions session.Store, tokens *token.Manager, cfg config.AuthConfig, opts ...Option) *Service {
	s := &Service{
		storage:   st,
		sessions:  sessions,
		tokens:    tokens,
		publisher: events.Noop{},
		cfg:       cfg,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
