package cmd

import (
	"log"
	"os"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/sitefile"
)

// loadSites opens and parses the site list at path. A missing or unreadable
// file, or one that fails to parse, is reported as a logged warning rather
// than a propagated error: the caller gets back an empty site list and
// keeps running, instead of the command aborting with a non-zero exit.
func loadSites(path string) []geom.Point {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("vorocell: %s: %v; continuing with an empty site list", path, err)
		return []geom.Point{}
	}
	defer f.Close()

	sites, err := sitefile.Load(f)
	if err != nil {
		log.Printf("vorocell: %s: %v; continuing with an empty site list", path, err)
		return []geom.Point{}
	}
	return sites
}
