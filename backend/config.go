package main

import "sync"

type Config struct {
	AiDepth          int             `json:"ai_depth"`
	AiLogSearchStats bool            `json:"ai_log_search_stats"`
	HintEnabled      bool            `json:"hint_enabled"`
	Heuristics       HeuristicConfig `json:"heuristics"`
}

type HeuristicConfig struct {
	Corner   float64 `json:"corner"`
	XSquare  float64 `json:"x_square"`
	CSquare  float64 `json:"c_square"`
	Edge     float64 `json:"edge"`
	Mobility float64 `json:"mobility"`
	Disc     float64 `json:"disc"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		AiDepth:          6,
		AiLogSearchStats: false,
		HintEnabled:      true,

		// Relative ordering matters more than the raw numbers:
		// corner >> x_square > c_square > edge, mobility > disc.
		// The X/C penalties apply only while the adjacent corner is empty.
		Heuristics: HeuristicConfig{
			Corner:   120.0,
			XSquare:  40.0,
			CSquare:  12.0,
			Edge:     6.0,
			Mobility: 3.0,
			Disc:     1.0,
		},
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
