// Package archive re-exports the audit batch store abstractions for stable
// internal imports and hosts the batch sink built on top of them.
package archive

import (
	"cordcore/internal/archive/core"
)

type (
	// Driver identifies an archive backend driver.
	Driver = core.Driver
	// PutOptions configures a batch write.
	PutOptions = core.PutOptions
	// Info describes stored batch metadata.
	Info = core.Info
	// Store is the interface for archive storage backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

// ErrExists indicates a batch key has already been written.
var ErrExists = core.ErrExists
