package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logins_total",
		Help: "Total number of login attempts",
	}, []string{"result"})

	WizardsStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wizards_started_total",
		Help: "Total number of order wizard sessions started",
	})

	OrdersConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_confirmed_total",
		Help: "Total number of orders confirmed through the wizard",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_cancelled_total",
		Help: "Total number of wizard sessions cancelled",
	})

	StockConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_conflicts_total",
		Help: "Total number of commits rolled back due to a stock conflict",
	})

	CSVRowsImportedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "csv_rows_imported_total",
		Help: "Total number of rows imported via CSV, per entity",
	}, []string{"entity"})
)
