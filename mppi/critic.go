// Package mppi contains the data shared between a sampling-based predictive controller and the
// critics that score its trajectory batches.
package mppi

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/mppi/costmap"
	"go.viam.com/mppi/logging"
	"go.viam.com/mppi/spatialmath"
)

// Environment is the costmap view a critic reads each cycle.
type Environment interface {
	Grid() costmap.Grid
	Footprint() *spatialmath.Footprint
	IsTrackingUnknown() bool
	// InflationModel returns the named inflation model, or the first one when name is empty.
	InflationModel(name string) (costmap.InflationModel, bool)
}

// Critic scores a trajectory batch by adding to CriticData.Costs.
type Critic interface {
	Name() string
	Score(data *CriticData) error
}

// A CriticConstructor creates a critic from its name and raw attributes.
type CriticConstructor func(name string, attributes map[string]interface{}, env Environment, logger logging.Logger) (Critic, error)

var (
	registryMu     sync.RWMutex
	criticRegistry = map[string]CriticConstructor{}
)

// RegisterCritic registers a critic model to a constructor.
func RegisterCritic(model string, constructor CriticConstructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, old := criticRegistry[model]; old {
		panic(errors.Errorf("trying to register two critics with same model %s", model))
	}
	if constructor == nil {
		panic(errors.Errorf("cannot register a nil constructor for critic model %s", model))
	}
	criticRegistry[model] = constructor
}

// RegisteredCritics returns the registered critic models in sorted order.
func RegisteredCritics() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	models := lo.Keys(criticRegistry)
	sort.Strings(models)
	return models
}

// NewCritic creates a critic of the given model. name is the instance name used in logs.
func NewCritic(
	model, name string,
	attributes map[string]interface{},
	env Environment,
	logger logging.Logger,
) (Critic, error) {
	registryMu.RLock()
	constructor, ok := criticRegistry[model]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("no critic registered for model %q", model)
	}
	return constructor(name, attributes, env, logger.Sublogger(name))
}
