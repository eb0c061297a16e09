package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/geo/r2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/mppi/costmap"
	"go.viam.com/mppi/logging"
	"go.viam.com/mppi/mppi"
	"go.viam.com/mppi/mppi/critics"
	"go.viam.com/mppi/spatialmath"
	"go.viam.com/mppi/utils"
)

// GridConfig describes the costmap of a scenario.
type GridConfig struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Resolution   float64 `json:"resolution"`
	OriginX      float64 `json:"origin_x"`
	OriginY      float64 `json:"origin_y"`
	DefaultCost  uint8   `json:"default_cost"`
	TrackUnknown bool    `json:"track_unknown"`
}

// CellCost sets the cost of the cell containing a world point.
type CellCost struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Cost uint8   `json:"cost"`
}

// Scenario is a single control cycle to score: a costmap, a robot, and a trajectory batch.
type Scenario struct {
	Grid GridConfig `json:"grid"`
	// Obstacles are world points marked lethal before inflation.
	Obstacles []r2.Point `json:"obstacles"`
	// Costs are applied after inflation.
	Costs           []CellCost                `json:"costs"`
	Footprint       []r2.Point                `json:"footprint"`
	InflationLayers []costmap.InflationConfig `json:"inflation_layers"`
	RobotPose       spatialmath.Pose2D        `json:"robot_pose"`
	Path            []spatialmath.Pose2D      `json:"path"`
	Trajectories    [][]spatialmath.Pose2D    `json:"trajectories"`
	Critic          map[string]interface{}    `json:"critic"`
}

// LoadScenario reads a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	//nolint:gosec
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario %q", path)
	}
	var scenario Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, errors.Wrapf(err, "failed to parse scenario %q", path)
	}
	return &scenario, nil
}

// Environment builds the inflated layered costmap described by the scenario.
func (s *Scenario) Environment() (*costmap.LayeredCostmap, error) {
	cm, err := costmap.NewCostmap2D(
		s.Grid.Width, s.Grid.Height, s.Grid.Resolution, s.Grid.OriginX, s.Grid.OriginY, s.Grid.DefaultCost)
	if err != nil {
		return nil, err
	}
	footprint, err := spatialmath.NewFootprint(s.Footprint)
	if err != nil {
		return nil, err
	}
	layered, err := costmap.NewLayeredCostmap(cm, footprint, s.Grid.TrackUnknown)
	if err != nil {
		return nil, err
	}
	for _, cfg := range s.InflationLayers {
		layer, err := costmap.NewInflationLayer(cfg, cm.Resolution())
		if err != nil {
			return nil, err
		}
		if err := layered.AddInflationLayer(layer); err != nil {
			return nil, err
		}
	}

	for _, obstacle := range s.Obstacles {
		if err := cm.SetCostAtWorld(obstacle.X, obstacle.Y, costmap.LethalObstacle); err != nil {
			return nil, errors.Wrap(err, "invalid obstacle")
		}
	}
	layered.UpdateMap()
	for _, cell := range s.Costs {
		if err := cm.SetCostAtWorld(cell.X, cell.Y, cell.Cost); err != nil {
			return nil, errors.Wrap(err, "invalid cell cost")
		}
	}
	return layered, nil
}

// CriticData packs the scenario's trajectories into a fresh critic input.
func (s *Scenario) CriticData() (*mppi.CriticData, error) {
	trajs, err := mppi.TrajectoriesFromPoses(s.Trajectories)
	if err != nil {
		return nil, err
	}
	return &mppi.CriticData{
		State:        mppi.State{Pose: s.RobotPose},
		Trajectories: trajs,
		Path:         mppi.Path(s.Path),
		Costs:        mppi.NewCosts(len(s.Trajectories)),
	}, nil
}

// scoreScenario scores the scenario with the cost critic and writes a result table to out.
func scoreScenario(scenario *Scenario, attributes map[string]interface{}, out io.Writer, logger logging.Logger) error {
	env, err := scenario.Environment()
	if err != nil {
		return err
	}
	critic, err := mppi.NewCritic(critics.CostCriticModel, "cost_critic", attributes, env, logger)
	if err != nil {
		return err
	}
	data, err := scenario.CriticData()
	if err != nil {
		return err
	}
	if err := critic.Score(data); err != nil {
		return err
	}

	costs, ok := data.Costs.(mppi.Costs)
	if !ok {
		return utils.NewUnexpectedTypeError(mppi.Costs{}, data.Costs)
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Start", "End", "Cost"})
	for i, cost := range costs {
		traj := data.Trajectories.Trajectory(i)
		start, end := lo.Must(lo.First(traj)), lo.Must(lo.Last(traj))
		t.AppendRow(table.Row{
			i,
			fmt.Sprintf("(%.2f, %.2f)", start.X, start.Y),
			fmt.Sprintf("(%.2f, %.2f)", end.X, end.Y),
			fmt.Sprintf("%.4f", cost),
		})
	}
	best, bestIdx := costs.Min()
	t.AppendFooter(table.Row{"", "", "best", fmt.Sprintf("#%d %.4f", bestIdx, best)})
	t.Render()

	mean, err := stats.Mean(stats.Float64Data(costs))
	median, err2 := stats.Median(stats.Float64Data(costs))
	if err := multierr.Combine(err, err2); err != nil {
		return errors.Wrap(err, "failed to summarize costs")
	}
	fmt.Fprintf(out, "mean cost: %.4f, median cost: %.4f\n", mean, median)
	fmt.Fprintf(out, "all trajectories collide: %t\n", data.FailFlag)
	return nil
}
