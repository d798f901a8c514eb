/*
 * metrics.go, part of chemdex.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package profile

import "github.com/prometheus/client_golang/prometheus"

//Metrics are the prometheus collectors of a Service. The kind label is
//"descriptors", "depiction" or "layout".
type Metrics struct {
	Duration *prometheus.HistogramVec
	Hits     *prometheus.CounterVec
	Misses   *prometheus.CounterVec
	Failures *prometheus.CounterVec //labels: kind, reason (error, panic, timeout or canceled)
}

//NewMetrics creates the collectors and registers them with reg, if reg is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	M := &Metrics{
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chemdex",
			Name:      "computation_seconds",
			Help:      "Time spent computing descriptors, layouts and depictions.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"kind"}),
		Hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chemdex",
			Name:      "cache_hits_total",
			Help:      "Results served from the cache.",
		}, []string{"kind"}),
		Misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chemdex",
			Name:      "cache_misses_total",
			Help:      "Results not found in the cache.",
		}, []string{"kind"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chemdex",
			Name:      "computation_failures_total",
			Help:      "Computations that failed or timed out.",
		}, []string{"kind", "reason"}),
	}
	if reg == nil {
		return M, nil
	}
	for _, c := range []prometheus.Collector{M.Duration, M.Hits, M.Misses, M.Failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return M, nil
}
