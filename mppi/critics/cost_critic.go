// Package critics contains the trajectory critics of the predictive controller.
package critics

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/atomic"

	"go.viam.com/mppi/costmap"
	"go.viam.com/mppi/logging"
	"go.viam.com/mppi/mppi"
	"go.viam.com/mppi/utils"
)

// CostCriticModel is the registry model name of the cost critic.
const CostCriticModel = "CostCritic"

func init() {
	mppi.RegisterCritic(CostCriticModel, func(
		name string,
		attributes map[string]interface{},
		env mppi.Environment,
		logger logging.Logger,
	) (mppi.Critic, error) {
		cfg, err := NewCostCriticConfig(attributes)
		if err != nil {
			return nil, err
		}
		return NewCostCritic(name, cfg, env, logger)
	})
}

// FootprintChecker returns the highest cost under a robot-frame footprint placed at a pose.
type FootprintChecker interface {
	FootprintCostAtPose(x, y, theta float64, footprint []r2.Point) float64
}

// ScoreStats counts the work done by a critic since it was created.
type ScoreStats struct {
	Calls           int64
	PointChecks     int64
	FootprintChecks int64
}

type scoreCounters struct {
	calls           atomic.Int64
	pointChecks     atomic.Int64
	footprintChecks atomic.Int64
}

// Option configures optional CostCritic collaborators.
type Option func(*CostCritic)

// WithFootprintChecker replaces the costmap footprint checker.
func WithFootprintChecker(checker FootprintChecker) Option {
	return func(c *CostCritic) {
		c.checker = checker
	}
}

// WithClock replaces the clock used to time scoring calls.
func WithClock(clk clock.Clock) Option {
	return func(c *CostCritic) {
		c.clock = clk
	}
}

// CostCritic penalizes trajectories for passing near obstacles and assigns a fixed collision
// cost to any trajectory that hits one.
type CostCritic struct {
	name   string
	cfg    CostCriticConfig
	weight float64
	env    mppi.Environment
	logger logging.Logger
	clock  clock.Clock

	checker               FootprintChecker
	estimator             *CircumscribedCostEstimator
	possibleCollisionCost float64

	counters scoreCounters
}

// NewCostCritic returns a cost critic reading from env.
func NewCostCritic(
	name string,
	cfg *CostCriticConfig,
	env mppi.Environment,
	logger logging.Logger,
	opts ...Option,
) (*CostCritic, error) {
	if cfg == nil {
		cfg = DefaultCostCriticConfig()
	}
	if err := cfg.Validate(name); err != nil {
		return nil, err
	}
	if env == nil {
		return nil, errors.Errorf("cost critic %q requires an environment", name)
	}

	c := &CostCritic{
		name:      name,
		cfg:       *cfg,
		weight:    cfg.NormalizedWeight(),
		env:       env,
		logger:    logger,
		clock:     clock.New(),
		checker:   costmap.NewFootprintCollisionChecker(env.Grid()),
		estimator: NewCircumscribedCostEstimator(cfg.InflationLayerName, logger),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.possibleCollisionCost = c.estimator.Estimate(env)
	if thresholdUnavailable(c.possibleCollisionCost) {
		logger.Warnw(
			"Inflation layer either not found or inflation is not set sufficiently for optimized "+
				"non-circular collision checking. Set the inflation radius to at least half of the robot's "+
				"largest cross-section; until then every non-free pose gets a full footprint check.",
			"circumscribed_cost", c.possibleCollisionCost)
	}

	mode := "circular"
	if c.cfg.ConsiderFootprint {
		mode = "footprint"
	}
	logger.Infof(
		"CostCritic instantiated with %d power and %f / %f weights. Critic will collision check based on %s cost.",
		c.cfg.CostPower, c.cfg.CriticalCost, c.weight, mode)
	return c, nil
}

// Name returns the critic's instance name.
func (c *CostCritic) Name() string {
	return c.name
}

// PossibleCollisionCost returns the circumscribed cost currently gating footprint checks.
func (c *CostCritic) PossibleCollisionCost() float64 {
	return c.possibleCollisionCost
}

// Stats returns a snapshot of the critic's work counters.
func (c *CostCritic) Stats() ScoreStats {
	return ScoreStats{
		Calls:           c.counters.calls.Load(),
		PointChecks:     c.counters.pointChecks.Load(),
		FootprintChecks: c.counters.footprintChecks.Load(),
	}
}

// Score adds this critic's cost to every trajectory and sets data.FailFlag when every
// trajectory collides. A malformed batch returns an error and leaves data untouched.
// Score must not be called concurrently.
func (c *CostCritic) Score(data *mppi.CriticData) error {
	if !c.cfg.Enabled {
		return nil
	}
	start := c.clock.Now()

	batchSize, timeSteps, err := data.Trajectories.Dims()
	if err != nil {
		return err
	}
	if data.Costs == nil {
		return mppi.NewCostsSizeError(0, batchSize)
	}
	if data.Costs.Len() != batchSize {
		return mppi.NewCostsSizeError(data.Costs.Len(), batchSize)
	}

	grid := c.env.Grid()
	if gridSetter, ok := c.checker.(interface{ SetGrid(costmap.Grid) }); ok {
		gridSetter.SetGrid(grid)
	}
	if c.cfg.ConsiderFootprint {
		// the footprint may have changed since construction
		c.possibleCollisionCost = c.estimator.Estimate(c.env)
	}

	// goals are often near obstacles, so proximity is not penalized close to them
	nearGoal := mppi.WithinPositionGoalTolerance(c.cfg.NearGoalDistance, data.State.Pose, data.Path)

	scorer := &trajectoryBatchScorer{
		grid:          grid,
		classifier:    c.newClassifier(),
		weight:        c.weight,
		power:         c.cfg.CostPower,
		criticalCost:  c.cfg.CriticalCost,
		collisionCost: c.cfg.CollisionCost,
		nearGoal:      nearGoal,
		counters:      &c.counters,
	}
	contributions, allCollide, err := scorer.score(data.Trajectories, batchSize, timeSteps, c.cfg.Workers)
	if err != nil {
		return errors.Wrapf(err, "cost critic %q failed to score trajectories", c.name)
	}

	if bulk, ok := data.Costs.(interface{ AddAll([]float64) }); ok {
		bulk.AddAll(contributions)
	} else {
		for i, contribution := range contributions {
			data.Costs.AddContribution(i, contribution)
		}
	}
	data.FailFlag = allCollide
	c.counters.calls.Inc()

	c.logger.Debugw("scored trajectory batch",
		"critic", c.name,
		"trajectories", batchSize,
		"timesteps", timeSteps,
		"near_goal", nearGoal,
		"all_collide", allCollide,
		"duration", c.clock.Since(start))
	return nil
}

func (c *CostCritic) newClassifier() collisionClassifier {
	trackingUnknown := c.env.IsTrackingUnknown()
	if !c.cfg.ConsiderFootprint {
		return &pointCostClassifier{trackingUnknown: trackingUnknown}
	}
	footprint := c.env.Footprint().Vertices()
	return &footprintGatedClassifier{
		threshold:       c.possibleCollisionCost,
		trackingUnknown: trackingUnknown,
		footprintCost: func(x, y, yaw float64) float64 {
			c.counters.footprintChecks.Inc()
			return c.checker.FootprintCostAtPose(x, y, yaw, footprint)
		},
	}
}

// trajectoryBatchScorer holds everything fixed for one scoring call.
type trajectoryBatchScorer struct {
	grid          costmap.Grid
	classifier    collisionClassifier
	weight        float64
	power         int
	criticalCost  float64
	collisionCost float64
	nearGoal      bool
	counters      *scoreCounters
}

// score returns one contribution per trajectory and whether every trajectory collides.
// Trajectories are independent, so each worker writes only its own indices.
func (s *trajectoryBatchScorer) score(
	trajs *mppi.Trajectories,
	batchSize, timeSteps, workers int,
) ([]float64, bool, error) {
	contributions := make([]float64, batchSize)
	collided := make([]bool, batchSize)
	scoreRange := func(_, from, to int) error {
		for i := from; i < to; i++ {
			contributions[i], collided[i] = s.scoreTrajectory(trajs, i, timeSteps)
		}
		return nil
	}

	if workers > 1 {
		if err := utils.GroupWorkParallel(context.Background(), workers, batchSize, scoreRange); err != nil {
			return nil, false, err
		}
	} else if err := scoreRange(0, 0, batchSize); err != nil {
		return nil, false, err
	}

	allCollide := lo.Reduce(collided, func(agg, trajectoryCollides bool, _ int) bool {
		return agg && trajectoryCollides
	}, true)
	return contributions, allCollide, nil
}

// scoreTrajectory returns the cost of trajectory i and whether it collides.
func (s *trajectoryBatchScorer) scoreTrajectory(trajs *mppi.Trajectories, i, timeSteps int) (float64, bool) {
	xs := trajs.X.RawRowView(i)
	ys := trajs.Y.RawRowView(i)
	yaws := trajs.Yaws.RawRowView(i)

	repulsiveCost := 0.
	for j := 0; j < timeSteps; j++ {
		// the center point cost is used even with a footprint: the footprint check only
		// reports inscribed over an obstacle, so the center carries more information
		var poseCost float64
		if mx, my, ok := s.grid.WorldToMap(xs[j], ys[j]); ok {
			poseCost = float64(s.grid.Cost(mx, my))
		} else {
			poseCost = float64(costmap.NoInformation)
		}
		if poseCost < 1.0 {
			continue
		}
		s.counters.pointChecks.Inc()

		if s.classifier.inCollision(poseCost, xs[j], ys[j], yaws[j]) {
			return s.collisionCost, true
		}

		if poseCost >= float64(costmap.InscribedInflatedObstacle) {
			repulsiveCost += s.criticalCost
		} else if !s.nearGoal {
			repulsiveCost += poseCost
		}
	}
	return utils.PowInt(s.weight*repulsiveCost/float64(timeSteps), s.power), false
}
