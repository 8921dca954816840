package models

import "scholar-duty-backend/src/reconcile"

// Trends week-over-week and month-over-month comparisons
type Trends struct {
	Week  PeriodTrend `json:"week"`
	Month PeriodTrend `json:"month"`
}

// PeriodTrend one current/prior pair and the difference between them
type PeriodTrend struct {
	Current    reconcile.RateResult `json:"current"`
	Prior      reconcile.RateResult `json:"prior"`
	Comparison reconcile.Comparison `json:"comparison"`
}

// DutyRow one of today's duties on the checker/facilitator tables
type DutyRow struct {
	ScholarID string               `json:"scholarId"`
	Name      string               `json:"name"`
	Duty      reconcile.Evaluation `json:"duty"`
}

// Summary everything the dashboards render on load
type Summary struct {
	GeneratedAt  string                  `json:"generatedAt"`
	Today        reconcile.RateResult    `json:"today"`
	Week         reconcile.RateResult    `json:"week"`
	Month        reconcile.RateResult    `json:"month"`
	Trends       Trends                  `json:"trends"`
	Checkers     []DutyRow               `json:"checkers"`
	Facilitators []DutyRow               `json:"facilitators"`
	Unevaluable  []reconcile.Unevaluable `json:"unevaluable,omitempty"`
}

// TodayStatus response of GET /dashboard/today/:scholarId
type TodayStatus struct {
	ScholarID   string                  `json:"scholarId"`
	Date        string                  `json:"date"`
	Duties      []reconcile.Evaluation  `json:"duties"`
	Unevaluable []reconcile.Unevaluable `json:"unevaluable,omitempty"`
}
