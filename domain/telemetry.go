package domain

import "github.com/prometheus/client_golang/prometheus"

var (
	// swapquery_swap_simulations_total
	//
	// counter that measures the number of venue simulations
	//
	// Has the following labels:
	// * venue - the venue that was simulated
	SwapSimulationsMetricName = "swapquery_swap_simulations_total"

	// swapquery_swap_simulation_errors_total
	//
	// counter that measures the number of failed venue simulations
	//
	// Has the following labels:
	// * venue - the venue that was simulated
	SwapSimulationErrorsMetricName = "swapquery_swap_simulation_errors_total"

	// swapquery_swap_simulation_duration_seconds
	//
	// histogram that tracks the duration of a venue simulation
	//
	// Has the following labels:
	// * venue - the venue that was simulated
	SwapSimulationDurationMetricName = "swapquery_swap_simulation_duration_seconds"

	// swapquery_swap_stale_simulations_total
	//
	// counter that measures the number of simulation results discarded because a newer batch superseded them
	SwapStaleSimulationsMetricName = "swapquery_swap_stale_simulations_total"

	// swapquery_swap_sessions_evicted_total
	//
	// counter that measures the number of swap sessions evicted from the session cache
	SwapSessionsEvictedMetricName = "swapquery_swap_sessions_evicted_total"

	SwapSimulationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SwapSimulationsMetricName,
			Help: "Total number of venue simulations",
		},
		[]string{"venue"},
	)
	SwapSimulationErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SwapSimulationErrorsMetricName,
			Help: "Total number of failed venue simulations",
		},
		[]string{"venue"},
	)
	SwapSimulationDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    SwapSimulationDurationMetricName,
			Help:    "Duration of venue simulations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"venue"},
	)
	SwapStaleSimulationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: SwapStaleSimulationsMetricName,
			Help: "Total number of simulation results discarded as stale",
		},
	)
	SwapSessionsEvictedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: SwapSessionsEvictedMetricName,
			Help: "Total number of swap sessions evicted",
		},
	)
)

func init() {
	prometheus.MustRegister(SwapSimulationsCounter)
	prometheus.MustRegister(SwapSimulationErrorsCounter)
	prometheus.MustRegister(SwapSimulationDurationHistogram)
	prometheus.MustRegister(SwapStaleSimulationsCounter)
	prometheus.MustRegister(SwapSessionsEvictedCounter)
}
