package domain

// Weather is the observed weather condition used as crowding evidence.
type Weather string

const (
	WeatherClear         Weather = "clear"
	WeatherRainy         Weather = "rainy"
	WeatherThunderstorms Weather = "thunderstorms"
)

// ValidWeather reports whether w names a supported weather state.
func ValidWeather(w Weather) bool {
	switch w {
	case WeatherClear, WeatherRainy, WeatherThunderstorms:
		return true
	}
	return false
}

// TimeOfDay is the coarse time band a journey falls in.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

// ValidTimeOfDay reports whether t names a supported time band.
func ValidTimeOfDay(t TimeOfDay) bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening:
		return true
	}
	return false
}

// DayType distinguishes weekday from weekend travel patterns.
type DayType string

const (
	DayWeekday DayType = "weekday"
	DayWeekend DayType = "weekend"
)

// ValidDayType reports whether d names a supported day type.
func ValidDayType(d DayType) bool {
	switch d {
	case DayWeekday, DayWeekend:
		return true
	}
	return false
}

// ServiceStatus is the level of service a line is running.
type ServiceStatus string

const (
	ServiceNormal    ServiceStatus = "normal"
	ServiceReduced   ServiceStatus = "reduced"
	ServiceDisrupted ServiceStatus = "disrupted"
)

// ValidServiceStatus reports whether s names a supported service level.
func ValidServiceStatus(s ServiceStatus) bool {
	switch s {
	case ServiceNormal, ServiceReduced, ServiceDisrupted:
		return true
	}
	return false
}

// RiskBand is a low, medium or high grading of crowding risk.
type RiskBand string

const (
	RiskLow    RiskBand = "low"
	RiskMedium RiskBand = "medium"
	RiskHigh   RiskBand = "high"
)

// CrowdingQuery carries the evidence for a crowding forecast. Every
// field is optional; absent evidence is marginalised out.
type CrowdingQuery struct {
	Weather       Weather       `json:"weather,omitempty"`
	TimeOfDay     TimeOfDay     `json:"time_of_day,omitempty"`
	DayType       DayType       `json:"day_type,omitempty"`
	Mode          Mode          `json:"mode,omitempty"`
	ServiceStatus ServiceStatus `json:"service_status,omitempty"`
}

// CrowdingForecast is the posterior crowding risk given the evidence,
// with the service status distribution inferred alongside it.
type CrowdingForecast struct {
	Risk          map[RiskBand]float64      `json:"risk"`
	Band          RiskBand                  `json:"band"`
	ServiceStatus map[ServiceStatus]float64 `json:"service_status"`
	Evidence      map[string]string         `json:"evidence,omitempty"`
}
