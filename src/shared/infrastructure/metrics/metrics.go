package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores expostos em /metrics quando PROMETHEUS_ENABLED=true
var (
	// SalesCreated conta vendas persistidas com sucesso
	SalesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartagenda_sales_created_total",
		Help: "Total de vendas registradas",
	})

	// SalesRejected conta vendas recusadas pelo portão de conciliação
	SalesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartagenda_sales_rejected_total",
		Help: "Total de vendas recusadas na conciliação de pagamentos",
	})

	// AppointmentsCreated conta agendamentos criados
	AppointmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartagenda_appointments_created_total",
		Help: "Total de agendamentos criados",
	})
)
