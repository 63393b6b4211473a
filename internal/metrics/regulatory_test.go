package metrics

import "testing"

func TestRegulatoryRisk(t *testing.T) {
	tests := []struct {
		name         string
		headlines    []string
		wantLit      int
		wantReg      int
		wantSeverity string
	}{
		{
			name:         "no news",
			headlines:    nil,
			wantSeverity: RegSeverityNone,
		},
		{
			name: "one regulatory item",
			headlines: []string{
				"Regulator opens probe into accounting practices",
			},
			wantReg:      1,
			wantSeverity: RegSeverityLow,
		},
		{
			name: "multiple keywords in one item count once per vocabulary",
			headlines: []string{
				"SEC investigation and DOJ probe result in record fine",
			},
			wantReg:      1,
			wantSeverity: RegSeverityLow,
		},
		{
			name: "litigation threshold forces critical",
			headlines: []string{
				"Shareholder lawsuit filed over disclosure",
				"Class action expands to new plaintiffs",
				"Court ruling goes against the company",
			},
			wantLit:      3,
			wantSeverity: RegSeverityCritical,
		},
		{
			name: "total threshold forces critical",
			headlines: []string{
				"Antitrust lawsuit filed",
				"Regulator issues penalty",
				"FTC opens investigation",
				"Settlement talks stall",
				"New compliance violation reported",
			},
			wantSeverity: RegSeverityCritical,
		},
		{
			name: "case insensitive matching",
			headlines: []string{
				"LAWSUIT THREATENED BY SUPPLIER",
				"Regulatory SCRUTINY intensifies",
				"Probe widens into pricing",
			},
			wantLit:      1,
			wantReg:      2,
			wantSeverity: RegSeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RegulatoryRisk(tt.headlines)
			if tt.wantLit != 0 && r.LitigationCount != tt.wantLit {
				t.Errorf("litigation count = %d, want %d", r.LitigationCount, tt.wantLit)
			}
			if tt.wantReg != 0 && r.RegulatoryCount != tt.wantReg {
				t.Errorf("regulatory count = %d, want %d", r.RegulatoryCount, tt.wantReg)
			}
			if r.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", r.Severity, tt.wantSeverity)
			}
		})
	}
}

func TestDisruptionVerdict(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{150, DisruptionThreat},
		{120, DisruptionThreat},
		{100, DisruptionMonitoring},
		{80, DisruptionSafe},
		{40, DisruptionSafe},
	}

	for _, tt := range tests {
		if got := DisruptionVerdict(tt.score); got != tt.want {
			t.Errorf("DisruptionVerdict(%f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestStatsHelpers(t *testing.T) {
	if got := Mean([]float64{1, 2, 3}); got != 2 {
		t.Errorf("Mean = %f, want 2", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %f, want 0", got)
	}
	if got := StdDev([]float64{5}); got != 0 {
		t.Errorf("StdDev single = %f, want 0", got)
	}
	if _, ok := SMA([]float64{1, 2}, 5); ok {
		t.Error("SMA should report insufficient data")
	}
	if got, ok := SMA([]float64{1, 2, 3, 4}, 2); !ok || got != 3.5 {
		t.Errorf("SMA last 2 = %f (%v), want 3.5", got, ok)
	}
	if got := Clamp(1.2, 0, 1); got != 1 {
		t.Errorf("Clamp = %f, want 1", got)
	}
	if got := Clamp(-0.2, 0.4, 0.95); got != 0.4 {
		t.Errorf("Clamp = %f, want 0.4", got)
	}
}
