// metrics объявляет Prometheus-коллекторы сервиса. Регистрируются в
// глобальном реестре и отдаются через /metrics (promhttp).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bank"

// Значения метки result.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// AccountClosures: попытки закрытия счёта по способу выплаты и исходу
	// (ok или код доменной ошибки).
	AccountClosures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_closures_total",
		Help:      "Account closure attempts by payout method and result.",
	}, []string{"payout", "result"})

	// AccountsOpened: открытые счета по виду.
	AccountsOpened = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_opened_total",
		Help:      "Opened accounts by account type.",
	}, []string{"account_type"})

	// CustomersCreated: созданные клиенты.
	CustomersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_created_total",
		Help:      "Created customers.",
	})

	// AuthEvents: login/refresh/logout/guard по исходу.
	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Authentication events by kind and result.",
	}, []string{"event", "result"})

	// AssistantToolCalls: вызовы инструментов ассистента.
	AssistantToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_tool_calls_total",
		Help:      "Assistant tool invocations by tool and result.",
	}, []string{"tool", "result"})

	// HTTPDuration: длительность HTTP-запросов по шаблону маршрута.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
