// Package config is responsible for the program's file locations and for
// loading settings from the config file and command-line arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

const Version = "v0.3.0"

var (
	configDir      = "podium"
	configFileName = "config.yml"
	dbFileName     = "podium.db"
	statusFileName = "status.json"
	logFileName    = "podium.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func FilePath() string {
	return configFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the config, database, status, and log file
// locations. A PODIUM_ENV value switches to environment-specific files so a
// development build cannot clobber real data.
func InitializePaths() {
	podiumEnv := strings.TrimSpace(os.Getenv("PODIUM_ENV"))
	if podiumEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", podiumEnv)
		dbFileName = fmt.Sprintf("podium_%s.db", podiumEnv)
		statusFileName = fmt.Sprintf("status_%s.json", podiumEnv)
		logFileName = fmt.Sprintf("podium_%s.log", podiumEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, logFileName)
}
