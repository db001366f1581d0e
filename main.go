package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/andig/ojmicroline/ojmicroline"
	"github.com/evcc-io/evcc/util"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

var modes = map[string]ojmicroline.RegulationMode{
	"schedule": ojmicroline.RegulationSchedule,
	"comfort":  ojmicroline.RegulationComfort,
	"manual":   ojmicroline.RegulationManual,
	"vacation": ojmicroline.RegulationVacation,
	"frost":    ojmicroline.RegulationFrostProtection,
	"boost":    ojmicroline.RegulationBoost,
	"eco":      ojmicroline.RegulationEco,
}

func readConfig() error {
	viper.SetConfigName("ojmicroline")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("OJMICROLINE")
	viper.AutomaticEnv()

	viper.SetDefault("family", "wd5")
	viper.SetDefault("host", "")
	viper.SetDefault("apikey", "")
	viper.SetDefault("customerid", 0)
	viper.SetDefault("user", "")
	viper.SetDefault("password", "")
	viper.SetDefault("clientswversion", ojmicroline.CLIENT_SW_VERSION)
	viper.SetDefault("timeout", ojmicroline.REQUEST_TIMEOUT)
	viper.SetDefault("loglevel", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

func temperature(v int) string {
	return fmt.Sprintf("%.1f°C", float64(v)/100)
}

func printThermostat(t ojmicroline.Thermostat) {
	fmt.Printf("%s %s (%s)\n", t.Model, t.Name, t.SerialNumber)
	fmt.Printf("  Zone: %s (%d)\n", t.ZoneName, t.ZoneID)
	fmt.Printf("  Online: %t Heating: %t\n", t.Online, t.Heating)
	fmt.Printf("  Regulation mode: %s\n", t.RegulationMode)
	fmt.Printf("  Current temperature: %s\n", temperature(t.CurrentTemperature()))
	fmt.Printf("  Target temperature: %s\n", temperature(t.TargetTemperature()))
	fmt.Printf("  Range: %s - %s\n", temperature(t.MinTemperature), temperature(t.MaxTemperature))
	fmt.Printf("  Comfort: %s until %s\n", temperature(t.ComfortTemperature), t.ComfortEndTime.Format(time.DateTime))
	fmt.Printf("  Manual: %s\n", temperature(t.ManualTemperature))

	if t.Sensor != nil {
		fmt.Printf("  Sensor: %s floor %s room %s\n", t.Sensor.Mode, temperature(t.Sensor.Floor), temperature(t.Sensor.Room))
	}
	if t.BoostEndTime != nil {
		fmt.Printf("  Boost until: %s\n", t.BoostEndTime.Format(time.DateTime))
	}
	if t.VacationBeginTime != nil && t.VacationEndTime != nil {
		fmt.Printf("  Vacation: %s - %s\n", t.VacationBeginTime.Format(time.DateTime), t.VacationEndTime.Format(time.DateTime))
	}
}

// usage: ojmicroline [serial mode [temperature]]
func main() {
	if err := readConfig(); err != nil {
		log.Fatal(err)
	}

	util.LogLevel(viper.GetString("loglevel"), nil)
	logger := util.NewLogger("ojmicroline")

	other := viper.AllSettings()
	delete(other, "loglevel")

	conn, err := ojmicroline.NewConnectionFromConfig(logger, other)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	if len(os.Args) > 2 {
		mode, ok := modes[os.Args[2]]
		if !ok {
			log.Fatalf("invalid regulation mode: %s", os.Args[2])
		}

		var temp int
		if len(os.Args) > 3 {
			f, err := strconv.ParseFloat(os.Args[3], 64)
			if err != nil {
				log.Fatal(err)
			}
			temp = int(f * 100)
		}

		t, err := conn.GetThermostat(ctx, os.Args[1])
		if err != nil {
			log.Fatal(err)
		}

		if err := conn.SetRegulationMode(ctx, t, mode, temp, 0); err != nil {
			log.Fatal(err)
		}
	}

	res, err := conn.GetThermostats(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, t := range res {
		printThermostat(t)
	}

	fmt.Printf("Session calls left: %d\n", conn.CallsLeft())
}
