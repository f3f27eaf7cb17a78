package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "irrigodash",
	Short: "IrrigoDash - Irrigation Telemetry Dashboard",
	Long: `IrrigoDash serves a live dashboard over the telemetry file written by
the irrigation station, with a chart per sensor and pump and valve status.`,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Falling back to OS environment variables.")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
