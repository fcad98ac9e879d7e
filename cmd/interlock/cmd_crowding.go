package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/service"
)

func runCrowding(cmd *cobra.Command, args []string) error {
	svc := service.NewCrowdingService(newLogger())
	forecast, err := svc.Predict(domain.CrowdingQuery{
		Weather:       domain.Weather(weatherFlag),
		TimeOfDay:     domain.TimeOfDay(timeFlag),
		DayType:       domain.DayType(dayFlag),
		Mode:          domain.Mode(cmodeFlag),
		ServiceStatus: domain.ServiceStatus(serviceFlag),
	})
	if err != nil {
		return err
	}

	if len(forecast.Evidence) == 0 {
		fmt.Println("Forecast with no evidence (prior):")
	} else {
		fmt.Println("Forecast given:")
		for k, v := range forecast.Evidence {
			fmt.Printf("  %s = %s\n", k, v)
		}
	}

	fmt.Println("Crowding risk:")
	for _, band := range []domain.RiskBand{domain.RiskLow, domain.RiskMedium, domain.RiskHigh} {
		marker := " "
		if band == forecast.Band {
			marker = "*"
		}
		fmt.Printf("  %s %-7s %5.1f%%\n", marker, band, forecast.Risk[band]*100)
	}

	fmt.Println("Service status:")
	for _, st := range []domain.ServiceStatus{domain.ServiceNormal, domain.ServiceReduced, domain.ServiceDisrupted} {
		fmt.Printf("    %-9s %5.1f%%\n", st, forecast.ServiceStatus[st]*100)
	}
	return nil
}
