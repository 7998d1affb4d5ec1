package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/auth/pkg/observability"
)

// NewTracking returns middleware that writes one structured log line per
// request, tagged with the correlation id assigned by the requestid
// middleware, and feeds the HTTP metrics. It must be registered after
// requestid so the id is already in the locals.
func NewTracking(log *logrus.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()
		path := c.Path()

		requestID, _ := c.Locals("requestid").(string)
		log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"client_ip":    c.IP(),
			"method":       method,
			"path":         path,
			"status_code":  status,
			"process_time": elapsed.Seconds(),
		}).Info("request handled")

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())

		return err
	}
}
