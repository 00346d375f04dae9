package conf

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError holds a list of validation errors
type ValidationError struct {
	Errors []string
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %s", strings.Join(ve.Errors, "; "))
}

// ValidateSettings validates the settings structure and returns an error if
// any settings are invalid
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateDataserviceSettings(&settings.Dataservice); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateUnitSettings(&settings.Unit); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateForecastSettings(&settings.Forecast); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateAlertsSettings(&settings.Alerts); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateWebServerSettings(&settings.WebServer); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateDataserviceSettings(settings *DataserviceSettings) error {
	if settings.BaseURL == "" {
		return fmt.Errorf("dataservice base URL must not be empty")
	}
	if settings.MaxRetries < 1 {
		return fmt.Errorf("dataservice max retries must be at least 1, got %d", settings.MaxRetries)
	}
	if settings.Timeout <= 0 {
		return fmt.Errorf("dataservice timeout must be positive, got %v", settings.Timeout)
	}
	return nil
}

func validateUnitSettings(settings *UnitSettings) error {
	if settings.Latitude < -90 || settings.Latitude > 90 {
		return fmt.Errorf("unit latitude must be between -90 and 90, got %f", settings.Latitude)
	}
	if settings.Longitude < -180 || settings.Longitude > 180 {
		return fmt.Errorf("unit longitude must be between -180 and 180, got %f", settings.Longitude)
	}
	return nil
}

func validateForecastSettings(settings *ForecastSettings) error {
	if settings.Horizon < 1 {
		return fmt.Errorf("forecast horizon must be at least 1, got %d", settings.Horizon)
	}
	if settings.GrowthRate <= 0 {
		return fmt.Errorf("forecast growth rate must be positive, got %f", settings.GrowthRate)
	}
	if settings.NoiseAmplitude < 0 {
		return fmt.Errorf("forecast noise amplitude must not be negative, got %f", settings.NoiseAmplitude)
	}
	return nil
}

func validateAlertsSettings(settings *AlertsSettings) error {
	switch settings.ECSource {
	case ECSourceFixed, ECSourceLive:
	default:
		return fmt.Errorf("alerts EC source must be %q or %q, got %q", ECSourceFixed, ECSourceLive, settings.ECSource)
	}
	if settings.ECFixedValue < 0 {
		return fmt.Errorf("alerts fixed EC value must not be negative, got %f", settings.ECFixedValue)
	}
	return nil
}

func validateWebServerSettings(settings *WebServerSettings) error {
	if !settings.Enabled {
		return nil
	}
	port, err := strconv.Atoi(settings.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid webserver port: %s", settings.Port)
	}
	return nil
}
