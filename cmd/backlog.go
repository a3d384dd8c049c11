package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/plantops/maintcore/core/model"
)

// backlogFile is the on-disk input consumed by the planning commands.
type backlogFile struct {
	Items           []model.DemandItem     `json:"items"`
	Workers         []model.Worker         `json:"workers"`
	Capacities      []model.TradeCapacity  `json:"capacities"`
	ShutdownWindows []model.ShutdownWindow `json:"shutdown_windows"`
}

func readBacklog(path string) (*backlogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backlog: %w", err)
	}
	var b backlogFile
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse backlog: %w", err)
	}
	for i, it := range b.Items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("backlog item %d: %w", i, err)
		}
	}
	return &b, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
