// Command mockarchive serves fabricated NOAAPort tornado warning archives
// using the same URL layout as the IEM archive, so the overlay service can be
// exercised end to end without hitting the real mesonet.
//
// Usage:
//
//	go run ./cmd/mockarchive -addr :9090 -warnings 3
//	ARCHIVE_BASE_URL=http://localhost:9090/archive/data go run ./cmd/overlay
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var archivePathRe = regexp.MustCompile(`^/archive/data/(\d{4})/(\d{2})/(\d{2})/text/noaaport/TOR_(\d{8})\.txt$`)

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	warnings := flag.Int("warnings", 3, "warning products per daily archive")
	flag.Parse()

	http.HandleFunc("GET /archive/data/", func(w http.ResponseWriter, r *http.Request) {
		m := archivePathRe.FindStringSubmatch(r.URL.Path)
		if m == nil {
			http.NotFound(w, r)
			return
		}

		day, err := time.Parse("20060102", m[4])
		if err != nil || m[1]+m[2]+m[3] != m[4] {
			http.NotFound(w, r)
			return
		}

		doc := buildArchive(day, *warnings)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, doc)
		log.Printf("served %s (%d bytes)", r.URL.Path, len(doc))
	})

	log.Printf("mock archive listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// buildArchive fabricates a daily archive of n warning products separated by
// the NOAAPort record separator.
func buildArchive(day time.Time, n int) string {
	// Seed per day so repeated fetches of the same archive are identical.
	rng := rand.New(rand.NewSource(day.Unix()))

	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(buildWarning(day, i, rng))
		b.WriteString("$$")
	}
	return b.String()
}

func buildWarning(day time.Time, seq int, rng *rand.Rand) string {
	issued := day.Add(time.Duration(rng.Intn(24*60)) * time.Minute)
	expires := issued.Add(45 * time.Minute)

	severity := ""
	switch rng.Intn(4) {
	case 0:
		severity = "THIS IS A TORNADO EMERGENCY FOR THE AREA.\n\n"
	case 1:
		severity = "THIS IS A PARTICULARLY DANGEROUS SITUATION.\n\n"
	case 2:
		severity = "A tornado was reported near the area.\n\n"
	}

	// A small quadrilateral somewhere over the central US, in hundredths.
	lat := 3000 + rng.Intn(1500)
	lon := 8500 + rng.Intn(1500)
	path := fmt.Sprintf("LAT...LON 4 %d %d %d %d %d %d %d %d",
		lat, lon, lat, lon+20, lat+20, lon+20, lat+20, lon)

	return fmt.Sprintf(`000
WFUS53 KDMX %s
TORDMX

BULLETIN - EAS ACTIVATION REQUESTED
Tornado Warning
National Weather Service Des Moines IA
%s

IAC049-%s-
/O.NEW.KDMX.TO.W.%04d.%sZ-%sZ/

The National Weather Service in Des Moines has issued a

* Tornado Warning for...
  Central Iowa...

%s%s

TIME...MOT...LOC %sZ 245DEG 30KT %d %d

&&

`,
		issued.Format("021504"),
		issued.Format("304 PM CST Mon Jan 2 2006"),
		expires.Format("021504"),
		seq+1,
		issued.Format("060102T1504"),
		expires.Format("060102T1504"),
		severity,
		path,
		issued.Format("1504"),
		lat, lon,
	)
}
