// Package sim integrates transfer functions forward in time.
//
// Two invocation modes exist for open-loop systems. [SimulateInput] drives
// a proper transfer function with an explicit input function of time.
// [Simulate] takes a Laplace-domain output expression (the transfer
// function already multiplied by the input's transform) and inverts it
// numerically via the zero-input response of its canonical realization.
// [SimulateClosedLoop] handles feedback loops with dead time as delay
// differential equations.
//
// All runs are synchronous and single-threaded; the context only serves
// to abort long integrations.
package sim
