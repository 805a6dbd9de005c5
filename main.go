package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/haeun0228/powerBoost/app/config"
	"github.com/haeun0228/powerBoost/app/repositories"
	"github.com/haeun0228/powerBoost/app/routes"
	"github.com/haeun0228/powerBoost/app/seed"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("powerboost version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		runSeed()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: powerboost <command>
Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the article board HTTP server.
  seed      Reset the database and load mock posts.

Configuration comes from the environment (a local .env file is honored):
PORT, DB_PATH, JWT_SECRET, TOKEN_TTL_HOURS.
`
	fmt.Println(helpText)
}

func serve() {
	cfg := config.Load()
	log := logrus.New()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	router := routes.Setup(db, routes.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Log:       log,
	})

	log.WithField("port", cfg.Port).Info("server started")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

func runSeed() {
	cfg := config.Load()
	log := logrus.New()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := db.DropAll(); err != nil {
		log.WithError(err).Fatal("failed to reset database")
	}

	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)
	if err := seed.Load(postRepo, userRepo); err != nil {
		log.WithError(err).Fatal("failed to load seed data")
	}

	log.Info("seed data loaded")
}
