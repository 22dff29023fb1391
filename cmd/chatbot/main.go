package main

import (
	"context"
	"log"
	"os"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/buildinfo"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/cli"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
