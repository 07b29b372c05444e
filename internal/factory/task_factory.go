package factory

import (
	"fmt"
	"log"

	"LogSpectra/internal/config"
	"LogSpectra/internal/model"
)

// TaskFactory defines a function that creates an analysis task from
// the loaded configuration.
type TaskFactory func(cfg *config.Config) (model.Task, error)

// registry holds the mapping of task types to their factory functions.
var registry = make(map[string]TaskFactory)

// RegisterTask registers a new task type with its factory function.
func RegisterTask(name string, factory TaskFactory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("task type '%s' already registered", name))
	}
	registry[name] = factory
}

// Create creates the list of tasks named by the config, in config order.
func Create(cfg *config.Config) ([]model.Task, error) {
	var tasks []model.Task

	for _, taskType := range cfg.Analyzer.Types {
		log.Printf("Creating task of type: '%s'\n", taskType)

		factory, ok := registry[taskType]
		if !ok {
			return nil, fmt.Errorf("unknown task type: '%s'", taskType)
		}

		task, err := factory(cfg)
		if err != nil {
			return nil, fmt.Errorf("error creating task type '%s': %w", taskType, err)
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}
