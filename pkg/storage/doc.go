// Package storage reads gettext catalogs from S3-compatible object storage.
//
// Catalogs follow the usual gettext layout below a configurable prefix:
//
//	locale/ca_ES/LC_MESSAGES/app.mo
//	locale/en/LC_MESSAGES/app.mo
//
// [S3Storage.Exists] backs the locale registry, so a locale is accepted only
// when its catalog object exists. [S3Storage.Sync] mirrors catalogs into a
// local directory at startup for the file based gettext reader.
package storage
