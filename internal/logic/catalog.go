package logic

import "github.com/changilink/interlock/internal/domain"

// DefaultRules returns the operational rule catalog for the Changi
// extensions: transfer guarantees, integration work impacts, network
// transition constraints and service status rules. Closures and
// inactive lines are encoded as positive atoms (Station_Closed_Expo
// rather than a negated Station_Open_Expo) so rules stay definite
// clauses.
func DefaultRules() []domain.Rule {
	return []domain.Rule{
		// Transfers
		{
			ID:          "R1",
			English:     "If Tanah Merah station is open and the TEL is active, TEL-EWL transfer is available",
			Antecedents: []domain.Proposition{domain.Prop("Station_Open_TanahMerah"), domain.Prop("Line_Active_TEL")},
			Consequent:  domain.Prop("Transfer_Available_TEL_EWL"),
		},
		{
			ID:          "R9",
			English:     "If the TEL and the CRL are both active and T5 station is open, TEL-CRL transfer is available",
			Antecedents: []domain.Proposition{domain.Prop("Line_Active_TEL"), domain.Prop("Line_Active_CRL"), domain.Prop("Station_Open_T5")},
			Consequent:  domain.Prop("Transfer_Available_TEL_CRL"),
		},

		// Integration works
		{
			ID:          "R2",
			English:     "If Expo station is undergoing integration work, Expo station is closed",
			Antecedents: []domain.Proposition{domain.Prop("Integration_Work_Expo")},
			Consequent:  domain.Prop("Station_Closed_Expo"),
		},
		{
			ID:          "R10",
			English:     "If integration work is active while the network runs in today mode, service adjustments are required",
			Antecedents: []domain.Proposition{domain.Prop("Integration_Work_Active"), domain.Prop("Network_Mode_Today")},
			Consequent:  domain.Prop("Service_Adjustments_Required"),
			Modes:       []domain.Mode{domain.ModeToday},
		},

		// Network transition
		{
			ID:          "R3",
			English:     "In future mode the old EWL airport branch is no longer active",
			Antecedents: []domain.Proposition{domain.Prop("Network_Mode_Future")},
			Consequent:  domain.Prop("Line_Inactive_EWL_Airport"),
			Modes:       []domain.Mode{domain.ModeFuture},
		},
		{
			ID:          "R4",
			English:     "In future mode, if the network is operational the TEL extension to T5 is active",
			Antecedents: []domain.Proposition{domain.Prop("Network_Mode_Future"), domain.Prop("Network_Operational")},
			Consequent:  domain.Prop("Line_Active_TEL_T5"),
			Modes:       []domain.Mode{domain.ModeFuture},
		},
		{
			ID:          "R7",
			English:     "If the CRL extension to T5 is active, the network is in future mode",
			Antecedents: []domain.Proposition{domain.Prop("Line_Active_CRL_T5")},
			Consequent:  domain.Prop("Network_Mode_Future"),
			Modes:       []domain.Mode{domain.ModeFuture},
		},
		{
			ID:          "R11",
			English:     "In future mode, routes to Changi Airport use the TEL",
			Antecedents: []domain.Proposition{domain.Prop("Network_Mode_Future"), domain.Prop("Destination_Changi_Airport")},
			Consequent:  domain.Prop("Route_Uses_TEL"),
			Modes:       []domain.Mode{domain.ModeFuture},
		},
		{
			ID:          "R12",
			English:     "If a route uses T5 station, the network is in future mode",
			Antecedents: []domain.Proposition{domain.Prop("Route_Uses_T5")},
			Consequent:  domain.Prop("Network_Mode_Future"),
			Modes:       []domain.Mode{domain.ModeFuture},
		},

		// Service status
		{
			ID:          "R5",
			English:     "If TEL service is disrupted, TEL service is not normal",
			Antecedents: []domain.Proposition{domain.Prop("Service_Status_Disrupted_TEL")},
			Consequent:  domain.Prop("Service_Status_Not_Normal_TEL"),
		},
		{
			ID:          "R8",
			English:     "If TEL service is reduced during peak hour, crowding risk is high",
			Antecedents: []domain.Proposition{domain.Prop("Service_Status_Reduced_TEL"), domain.Prop("Time_Peak")},
			Consequent:  domain.Prop("Crowding_Risk_High"),
		},

		// Station closures
		{
			ID:          "R6",
			English:     "If Expo station is closed, no transfers are available at Expo",
			Antecedents: []domain.Proposition{domain.Prop("Station_Closed_Expo")},
			Consequent:  domain.Prop("Transfer_Unavailable_Expo"),
		},
	}
}

// DefaultKnowledgeBase returns the validated default catalog. The
// catalog is authored in this package, so a validation failure is a
// programming error and panics.
func DefaultKnowledgeBase() *KnowledgeBase {
	kb, err := NewKnowledgeBase(DefaultRules())
	if err != nil {
		panic(err)
	}
	return kb
}
