package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// defaultOutput is the file written by create when none is given.
const defaultOutput = "default_qr_code.png"

// config holds option defaults taken from the environment.
type config struct {
	level   string // HIDEQR_LEVEL
	tmpdir  string // HIDEQR_TMPDIR
	logfile string // HIDEQR_LOG
	output  string // HIDEQR_OUTPUT
}

// loadConfig loads files into the environment, if they exist, and
// returns the defaults set there.  Variables already set take
// precedence over files.  With no files, ".env" is loaded.
func loadConfig(files ...string) config {
	if err := godotenv.Load(files...); err != nil &&
		!errors.Is(err, fs.ErrNotExist) {
		log.Println(err)
	}
	return config{
		level:   getenv("HIDEQR_LEVEL", "h"),
		tmpdir:  os.Getenv("HIDEQR_TMPDIR"),
		logfile: os.Getenv("HIDEQR_LOG"),
		output:  getenv("HIDEQR_OUTPUT", defaultOutput),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
