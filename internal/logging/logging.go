// Package logging builds the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New returns a production JSON logger, or a human-readable development
// logger when dev is set.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
