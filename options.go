package ceangal

import "go.uber.org/zap"

// Option is a function that configures a container.
type Option func(*Container) error

// WithLogger sets the logger used for container diagnostics. Binding
// commits, scope creation and disposal are logged at debug level. The
// default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
		return nil
	}
}
