package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Cache struct {
		ReportTTL   time.Duration `yaml:"report_ttl"`
		ResponseTTL time.Duration `yaml:"response_ttl"`
		MemoryMax   int           `yaml:"memory_max"`
		Redis       struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Queue struct {
		Enabled    bool          `yaml:"enabled"`
		Workers    int           `yaml:"workers"`
		RetryLimit int           `yaml:"retry_limit"`
		RetryDelay time.Duration `yaml:"retry_delay"`
	} `yaml:"queue"`
	RateLimit struct {
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"ratelimit"`
	Engine struct {
		MaxFrontEndDTI   float64 `yaml:"max_front_end_dti"`
		MaxBackEndDTI    float64 `yaml:"max_back_end_dti"`
		PropertyTaxRate  float64 `yaml:"property_tax_rate"`
		AnnualInsurance  float64 `yaml:"annual_insurance"`
		PMIRate          float64 `yaml:"pmi_rate"`
		AppreciationRate float64 `yaml:"appreciation_rate"`
		RentGrowthRate   float64 `yaml:"rent_growth_rate"`
		MaintenanceRate  float64 `yaml:"maintenance_rate"`
		ClosingCostRate  float64 `yaml:"closing_cost_rate"`
		OpportunityRate  float64 `yaml:"opportunity_rate"`
		Investment       struct {
			ManagementRate float64 `yaml:"management_rate"`
			VacancyRate    float64 `yaml:"vacancy_rate"`
			CapExRate      float64 `yaml:"capex_rate"`
			Years          int     `yaml:"years"`
		} `yaml:"investment"`
	} `yaml:"engine"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("NESTWORTH_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Cache.ReportTTL == 0 {
		c.Cache.ReportTTL = 15 * time.Minute
	}
	if c.Cache.ResponseTTL == 0 {
		c.Cache.ResponseTTL = time.Minute
	}
	if c.Cache.MemoryMax == 0 {
		c.Cache.MemoryMax = 1000
	}
	if c.Queue.Workers == 0 {
		c.Queue.Workers = 2
	}
	if c.Queue.RetryLimit == 0 {
		c.Queue.RetryLimit = 3
	}
	if c.Queue.RetryDelay == 0 {
		c.Queue.RetryDelay = 10 * time.Second
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 5
	}
	if c.RateLimit.RefillPerSec == 0 {
		c.RateLimit.RefillPerSec = 2
	}

	e := &c.Engine
	if e.MaxFrontEndDTI == 0 {
		e.MaxFrontEndDTI = 0.28
	}
	if e.MaxBackEndDTI == 0 {
		e.MaxBackEndDTI = 0.36
	}
	if e.PropertyTaxRate == 0 {
		e.PropertyTaxRate = 0.012
	}
	if e.AnnualInsurance == 0 {
		e.AnnualInsurance = 1500
	}
	if e.PMIRate == 0 {
		e.PMIRate = 0.0085
	}
	if e.AppreciationRate == 0 {
		e.AppreciationRate = 0.03
	}
	if e.RentGrowthRate == 0 {
		e.RentGrowthRate = 0.035
	}
	if e.MaintenanceRate == 0 {
		e.MaintenanceRate = 0.01
	}
	if e.ClosingCostRate == 0 {
		e.ClosingCostRate = 0.03
	}
	if e.OpportunityRate == 0 {
		e.OpportunityRate = 0.06
	}
	if e.Investment.ManagementRate == 0 {
		e.Investment.ManagementRate = 0.08
	}
	if e.Investment.VacancyRate == 0 {
		e.Investment.VacancyRate = 0.05
	}
	if e.Investment.CapExRate == 0 {
		e.Investment.CapExRate = 0.05
	}
	if e.Investment.Years == 0 {
		e.Investment.Years = 5
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	e := c.Engine
	if e.MaxFrontEndDTI <= 0 || e.MaxFrontEndDTI >= 1 {
		return fmt.Errorf("engine.max_front_end_dti must be a fraction in (0, 1), got %v", e.MaxFrontEndDTI)
	}
	if e.MaxBackEndDTI <= 0 || e.MaxBackEndDTI >= 1 {
		return fmt.Errorf("engine.max_back_end_dti must be a fraction in (0, 1), got %v", e.MaxBackEndDTI)
	}
	if e.MaxBackEndDTI < e.MaxFrontEndDTI {
		return fmt.Errorf("engine.max_back_end_dti must be >= engine.max_front_end_dti")
	}
	if c.Queue.Enabled && !c.Cache.Redis.Enabled {
		return fmt.Errorf("queue requires cache.redis.enabled")
	}
	return nil
}
