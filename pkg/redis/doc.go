// Package redis opens go-redis clients from a Config and exposes a health
// check. The client backs the shared locale lookup cache and the Redis
// session store.
package redis
