package mppi

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/mppi/logging"
)

type namedCritic struct {
	name string
}

func (nc *namedCritic) Name() string { return nc.name }

func (nc *namedCritic) Score(data *CriticData) error {
	for i := 0; i < data.Costs.Len(); i++ {
		data.Costs.AddContribution(i, 1)
	}
	return nil
}

func TestCriticRegistry(t *testing.T) {
	logger := logging.NewTestLogger(t)
	RegisterCritic("test_constant", func(name string, _ map[string]interface{}, _ Environment, _ logging.Logger) (Critic, error) {
		return &namedCritic{name: name}, nil
	})
	test.That(t, RegisteredCritics(), test.ShouldContain, "test_constant")

	critic, err := NewCritic("test_constant", "constant", nil, nil, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, critic.Name(), test.ShouldEqual, "constant")

	costs := NewCosts(2)
	test.That(t, critic.Score(&CriticData{Costs: costs}), test.ShouldBeNil)
	test.That(t, []float64(costs), test.ShouldResemble, []float64{1, 1})

	_, err = NewCritic("missing", "missing", nil, nil, logger)
	test.That(t, err, test.ShouldNotBeNil)

	test.That(t, func() {
		RegisterCritic("test_constant", func(string, map[string]interface{}, Environment, logging.Logger) (Critic, error) {
			return nil, nil
		})
	}, test.ShouldPanic)
}
