package app

import (
	"log/slog"

	"delaycast.arrivals.org/internal/appconf"
	"delaycast.arrivals.org/internal/classifier"
	"delaycast.arrivals.org/internal/reference"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: configuration, the logger, the load-once reference tables, and
// the pretrained classifier. Everything here is read-only after startup.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Refs   *reference.Manager
	Model  classifier.Classifier
}
