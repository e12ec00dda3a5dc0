// Command kennelclub runs the creature kennel simulation as a terminal
// loop, grounded on original_source/src/main.rs.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/a1ts-a1t/kennelclub/kennel"
	"github.com/a1ts-a1t/kennelclub/kennelenv"
	"github.com/a1ts-a1t/kennelclub/logging"
	"github.com/a1ts-a1t/kennelclub/render"
	"golang.org/x/term"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	debug := flag.Bool("debug", false, "enable debug logging")
	tickInterval := flag.Duration("interval", time.Second, "time between ticks")
	flag.Parse()

	log := logging.NewDefaultLogger("kennelclub", *debug)
	rng := rand.New(rand.NewSource(*seed))

	dataDir := kennelenv.DataDir()
	k, err := kennel.Load(dataDir, rng, log)
	if err != nil {
		log.Errorf("loading kennel from %s: %v", dataDir, err)
		os.Exit(1)
	}

	ticker := time.NewTicker(*tickInterval)
	defer ticker.Stop()

	for range ticker.C {
		cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			cols, rows = 80, 24
		}
		render.PrettyPrint(os.Stdout, k.Snapshot(), cols, rows)

		next, err := k.Next(rng)
		if err != nil {
			log.Errorf("advancing tick: %v", err)
			os.Exit(1)
		}
		k = next
	}
}
