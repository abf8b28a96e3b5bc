// Package session stores per-visitor values, most notably the chosen
// locale, behind an opaque cookie token.
//
// Three stores implement [Store]: [MemoryStore] for development and tests,
// [RedisStore] and [PostgresStore] for deployments. [Manager] loads the
// session named by the request cookie and writes the cookie back on save.
//
//	s, _ := mgr.Load(ctx, r)
//	if s == nil {
//		s, _ = mgr.Start()
//	}
//	s.SetValue("lang", "ca_ES")
//	err := mgr.Save(ctx, w, s)
package session
