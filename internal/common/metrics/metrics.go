package metrics

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	PrometheusRegisterer() prometheus.Registerer
	GetKeeperPrometheus() *KeeperPrometheusMetrics
}

type metrics struct {
	reg           prometheus.Registerer
	keeperMetrics *KeeperPrometheusMetrics
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	return &metrics{
		reg:           reg,
		keeperMetrics: newKeeperPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetKeeperPrometheus() *KeeperPrometheusMetrics {
	return m.keeperMetrics
}

func FlattenName(name string) string {
	replacer := strings.NewReplacer(" ", "_", ".", "_", "-", "_", "=", "_", "/", "_")
	return replacer.Replace(name)
}
