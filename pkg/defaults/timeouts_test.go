package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"K8sAPITimeout", K8sAPITimeout, 10 * time.Second, 60 * time.Second},
		{"RolloutTimeout", RolloutTimeout, 1 * time.Minute, 10 * time.Minute},
		{"RolloutPollInterval", RolloutPollInterval, 500 * time.Millisecond, 10 * time.Second},
		{"DeleteTimeout", DeleteTimeout, 10 * time.Second, 60 * time.Second},
		{"CLIDeployTimeout", CLIDeployTimeout, 5 * time.Minute, 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestRolloutBudgetOrdering(t *testing.T) {
	if RolloutPollInterval >= RolloutTimeout {
		t.Error("poll interval must be shorter than the rollout timeout")
	}
	if RolloutTimeout >= CLIDeployTimeout {
		t.Error("rollout timeout must fit within the CLI deploy budget")
	}
}
