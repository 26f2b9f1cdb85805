// Package config defines Pulse's declarative configuration: buffer budgets,
// the ingestion severity threshold, and diagnostic logger settings. Values
// come from built-in defaults, optionally a JSON or YAML file, then PULSE_*
// environment variables, in that precedence order.
package config
