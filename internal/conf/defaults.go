// conf/defaults.go default values for settings
package conf

import (
	"time"

	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "Atlas-Go")
	viper.SetDefault("main.loglevel", "info")

	viper.SetDefault("dataservice.baseurl", "https://atlas-dashboard-backend.onrender.com/api/")
	viper.SetDefault("dataservice.timeout", 10*time.Second)
	viper.SetDefault("dataservice.maxretries", 3)
	viper.SetDefault("dataservice.retrydelay", 2*time.Second)

	viper.SetDefault("unit.latitude", 0.000)
	viper.SetDefault("unit.longitude", 0.000)

	viper.SetDefault("forecast.horizon", 10)
	viper.SetDefault("forecast.growthrate", 1.02)
	viper.SetDefault("forecast.noiseamplitude", 0.03)
	viper.SetDefault("forecast.seed", 0)

	// The production dashboard used a hardcoded EC reading instead of the
	// live measurement feed. Default keeps that behavior, "live" switches
	// to the mean of the measurements dataset.
	viper.SetDefault("alerts.ecsource", ECSourceFixed)
	viper.SetDefault("alerts.ecfixedvalue", 3.33)

	viper.SetDefault("webserver.enabled", true)
	viper.SetDefault("webserver.port", "8080")
}
