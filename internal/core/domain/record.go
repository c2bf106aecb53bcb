package domain

import "time"

// PackageReport describes what one packaging run produced.
type PackageReport struct {
	OutputRoot  string
	Primary     EntryPointName
	Secondaries []EntryPointName
	// Written lists every destination path in write order.
	Written []string
}

// PackageRecord is the persisted summary of the last successful run for an output root.
type PackageRecord struct {
	OutputRoot           string    `json:"outputRoot"`
	PrimaryEntryPoint    string    `json:"primaryEntryPoint"`
	SecondaryEntryPoints []string  `json:"secondaryEntryPoints"`
	Files                []string  `json:"files"`
	Digest               string    `json:"digest"`
	Timestamp            time.Time `json:"timestamp"`
}
