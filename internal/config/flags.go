package config

import (
	"flag"
	"os"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   database engine, "sqlite" or "postgres" (default from Config)
//	-d string   database DSN, a file path for sqlite (default from Config)
//	-m string   model active at startup (default from Config)
//	-r int      recall limit for past conversations (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-d", "-m", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "e", cfg.DatabaseDriver, "database engine (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (file path for sqlite)")
	fs.StringVar(&cfg.DefaultModel, "m", cfg.DefaultModel, "model active at startup")
	fs.IntVar(&cfg.RecallLimit, "r", cfg.RecallLimit, "number of past conversations to recall")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
