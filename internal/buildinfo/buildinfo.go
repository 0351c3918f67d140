// Package buildinfo carries values stamped in at link time, e.g.
//
//	go build -ldflags "-X github.com/dmitrijs2005/vehiclehub/internal/buildinfo.Version=1.2.0 \
//	  -X github.com/dmitrijs2005/vehiclehub/internal/buildinfo.DefaultAPIBaseURL=https://fleet.example.com/api/v1"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version   string
	BuildDate string
	Commit    string

	// DefaultAPIBaseURL is the API origin plus the /api/v1 prefix. It is a
	// deploy-time setting; the -a flag and the JSON config may override it.
	DefaultAPIBaseURL = "http://localhost:8080/api/v1"
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes the build banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(Version))
	fmt.Fprintf(w, "Build date: %s\n", orNA(BuildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(Commit))
}
