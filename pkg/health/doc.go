// Package health serves liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"catalogs": health.DirCheck(cfg.LocalePath),
//		"redis":    redis.Healthcheck(client),
//		"postgres": db.Healthcheck(pool),
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the
// client asks for JSON with ?format=json or an application/json Accept
// header.
package health
