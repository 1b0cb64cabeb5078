// Package report writes the statistics and results files built from an
// elections.Dataset and publishes them on a filestorage.FileStorage.
package report
