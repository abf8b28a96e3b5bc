// Package server wires the localization packages into a small HTTP
// service: catalogs from disk or S3, a Redis or in-memory lookup cache,
// sessions in PostgreSQL, Redis or memory, and chi routes exercising
// locale resolution and the formatters.
//
// Routes:
//
//	GET  /             resolved locale as JSON
//	GET  /currency     ?amount= formatted for the request country
//	GET  /sentence     ?items=a,b,c joined with the localized connector
//	GET  /date         event[starts_at] selects, ?at= preselects a time
//	GET  /locales      locales with a catalog
//	POST /locale       persist a locale choice to cookie and session
//	GET  /health/live  liveness probe
//	GET  /health/ready readiness probe
package server
