package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	_ "weather-now/configs"
	"weather-now/internal/domain/usecase/weather"
	"weather-now/internal/infra/provider"
	"weather-now/pkg/log"
	"weather-now/pkg/resource"
)

// configureLogging keeps the report on stdout free of log lines.
// Only warnings and errors are logged unless LOG_LEVEL is set.
func configureLogging(out io.Writer) {
	log.SetOutput(out)
	if os.Getenv("LOG_LEVEL") == "" {
		log.SetLevel(zap.WarnLevel)
	}
}

func usage() {
	fmt.Println("Usage: weather <city> | weather --here")
	fmt.Println("Examples: weather London")
	fmt.Println("          weather \"New York\"")
	fmt.Println("          weather --here")
	fmt.Println("The OpenWeatherMap API key is read from OWM_API_KEY.")
}

func main() {
	configureLogging(os.Stderr)
	defer log.Sync()

	if len(os.Args) < 2 {
		usage()
		return
	}

	here := false
	var words []string
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--here", "-here":
			here = true
		case "-h", "--help":
			usage()
			return
		default:
			words = append(words, arg)
		}
	}

	weatherGateway, err := provider.NewWeatherGateway()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	location, _ := provider.Location(resource.GetString("app.weather.timezone"))

	geolocator, err := provider.NewGeolocationGateway(nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	useCase := weather.NewWeatherUseCase(weatherGateway, geolocator, weather.DefaultOptions())

	updates, unsubscribe := useCase.Subscribe()
	go func() {
		for state := range updates {
			if state.Loading {
				fmt.Fprintln(os.Stderr, "Loading...")
			}
		}
	}()

	ctx := context.Background()
	if here {
		useCase.LoadByLocation(ctx)
	} else {
		useCase.LoadByCity(ctx, strings.Join(words, " "))
	}
	unsubscribe()

	if failed := displayState(os.Stdout, useCase.State(), location); failed {
		os.Exit(1)
	}
}
