package config

import "testing"

func TestConfig_Validate(t *testing.T) {
	validSolver := SolverConfig{
		LP:        LPConfig{Epsilon: 1e-9, MaxIterations: 1000, BigM: 1e6},
		Transport: TransportConfig{Epsilon: 1e-9, MaxIterations: 1000},
		Network:   NetworkConfig{Epsilon: 1e-9, MaxIterations: 1000},
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				App:    AppConfig{Name: "opticore"},
				Log:    LogConfig{Level: "info"},
				Solver: validSolver,
			},
			wantErr: false,
		},
		{
			name: "missing app name",
			cfg: Config{
				Log:    LogConfig{Level: "info"},
				Solver: validSolver,
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			cfg: Config{
				App:    AppConfig{Name: "opticore"},
				Log:    LogConfig{Level: "invalid"},
				Solver: validSolver,
			},
			wantErr: true,
		},
		{
			name: "valid debug level",
			cfg: Config{
				App:    AppConfig{Name: "opticore"},
				Log:    LogConfig{Level: "debug"},
				Solver: validSolver,
			},
			wantErr: false,
		},
		{
			name: "missing lp epsilon",
			cfg: Config{
				App: AppConfig{Name: "opticore"},
				Log: LogConfig{Level: "info"},
				Solver: SolverConfig{
					LP:        LPConfig{Epsilon: 0, MaxIterations: 1000},
					Transport: validSolver.Transport,
					Network:   validSolver.Network,
				},
			},
			wantErr: true,
		},
		{
			name: "metrics port out of range",
			cfg: Config{
				App:     AppConfig{Name: "opticore"},
				Log:     LogConfig{Level: "info"},
				Metrics: MetricsConfig{Port: 70000},
				Solver:  validSolver,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_DefaultsLogLevel(t *testing.T) {
	cfg := Config{
		App: AppConfig{Name: "opticore"},
		Solver: SolverConfig{
			LP:        LPConfig{Epsilon: 1e-9, MaxIterations: 1000},
			Transport: TransportConfig{Epsilon: 1e-9, MaxIterations: 1000},
			Network:   NetworkConfig{Epsilon: 1e-9, MaxIterations: 1000},
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level to default to info, got %s", cfg.Log.Level)
	}
}
