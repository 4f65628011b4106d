// Package config holds the engine's tunable parameters. There is no
// file-format loader: callers construct a Config from Default and
// override fields directly or through Set.
package config

import "encoding/json"

// MCTS holds search tuning parameters.
type MCTS struct {
	NumThreads int     `json:"num_threads"`
	MaxTimeMs  int     `json:"max_time_ms"`
	Discount   float64 `json:"discount"`
	UCTConst   float64 `json:"uct_const"`
}

// Neural holds oracle artefact locations and training parameters.
type Neural struct {
	Path         string  `json:"path"`
	Template     string  `json:"template"`
	Best         string  `json:"best"`
	UseBest      bool    `json:"use_best"`
	LearningRate float64 `json:"learning_rate"`
	Exp          float64 `json:"exp"`
	Epochs       int     `json:"epochs"`
}

// Config is the engine's full tunable surface.
type Config struct {
	MCTS   MCTS   `json:"mcts"`
	Neural Neural `json:"neural"`
}

// Default returns the engine's documented defaults.
func Default() Config {
	return Config{
		MCTS: MCTS{
			NumThreads: 2,
			MaxTimeMs:  5000,
			Discount:   0.99,
			UCTConst:   1.0,
		},
		Neural: Neural{
			LearningRate: 0.001,
			Exp:          1.0,
			Epochs:       1,
		},
	}
}

// Marshal serializes the configuration to JSON.
func (c Config) Marshal() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Parse deserializes a configuration from JSON, starting from
// Default so an input that omits a field keeps that field's default.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Set applies a single dotted configuration key (e.g.
// "mcts.num_threads") to a string value. Returns false if the key is
// unrecognized.
func (c *Config) Set(key, value string) (bool, error) {
	switch key {
	case "mcts.num_threads":
		return true, setInt(&c.MCTS.NumThreads, value)
	case "mcts.max_time_ms":
		return true, setInt(&c.MCTS.MaxTimeMs, value)
	case "mcts.discount":
		return true, setFloat(&c.MCTS.Discount, value)
	case "mcts.uct_const":
		return true, setFloat(&c.MCTS.UCTConst, value)
	case "neural.path":
		c.Neural.Path = value
		return true, nil
	case "neural.template":
		c.Neural.Template = value
		return true, nil
	case "neural.best":
		c.Neural.Best = value
		return true, nil
	case "neural.use_best":
		return true, setBool(&c.Neural.UseBest, value)
	case "neural.learning_rate":
		return true, setFloat(&c.Neural.LearningRate, value)
	case "neural.exp":
		return true, setFloat(&c.Neural.Exp, value)
	case "neural.epochs":
		return true, setInt(&c.Neural.Epochs, value)
	default:
		return false, nil
	}
}
